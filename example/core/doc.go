// Package core contains the pure data contracts and mappings of the user
// directory example. It has no side effects and no dependencies on the
// fetch or rendering infrastructure.
package core
