// Package ir provides the intermediate representation of shape documents.
//
// Parsers in compiler produce ir values; the harness and CLI consume them.
// Besides the types, ir owns the canonical encoding of a document and the
// content digest derived from it. ir imports nothing internal.
//
// Key design constraints:
//   - Dimensions are float64 keyed by name (width, height, radius, ...)
//   - Shape order in a Document is significant and preserved
//   - All JSON and YAML tags use snake_case
package ir
