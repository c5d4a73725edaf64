// Package shell contains the infrastructure concerns of the user directory
// example: observability helpers shared by the feature slices and the
// interface aliases that keep feature code free of direct library imports.
package shell
