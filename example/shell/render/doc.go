// Package render provides concrete renderers for the user directory feature.
// The feature defines the Renderer interface it consumes; this package
// implements it for plain text output plus a modal decorator.
package render
