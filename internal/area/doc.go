// Package area sums the areas of an ordered collection of shapes.
//
// The calculator only depends on the shape.Shape capability. Adding a
// variant never requires a change here.
package area
