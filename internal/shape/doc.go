// Package shape defines the Shape capability and its concrete variants.
//
// A Shape is anything that can report its own area. The capability is a
// compile-time interface: a type without an Area method is not a Shape.
// Types that want to declare themselves shapes before they know how to
// measure themselves can embed Unimplemented, which reports
// ErrNotImplemented until Area is overridden.
//
// Variants are immutable values. Constructors reject dimensions that are
// not finite numbers greater than zero, so a constructed variant always
// reports a finite, non-negative area.
//
// New variants live anywhere. Nothing in this package or in package area
// needs to change to add one.
package shape
