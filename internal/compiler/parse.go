package compiler

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/roach88/solid/internal/ir"
)

//go:embed schema.cue
var schemaCUE string

// Input formats.
const (
	FormatYAML = "yaml"
	FormatCUE  = "cue"
)

// Parse decodes a shape document in the given format and validates it
// against the schema. Validation failures are returned as ValidationErrors.
func Parse(format string, data []byte) (*ir.Document, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatCUE:
		return ParseCUE(data)
	default:
		return nil, ValidationErrors{{
			Field:   "format",
			Message: fmt.Sprintf("unsupported input format %q: must be %s or %s", format, FormatYAML, FormatCUE),
			Code:    ErrUnsupportedFormat,
		}}
	}
}

// ParseCUE decodes a CUE shape document:
//
//	shapes: [
//		{kind: "rectangle", dims: {width: 2, height: 3}},
//		{name: "lid", kind: "circle", dims: radius: 1},
//	]
func ParseCUE(data []byte) (*ir.Document, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename("document.cue"))
	if err := v.Err(); err != nil {
		return nil, fromCUE(ErrSyntax, err)
	}
	return decode(ctx, v)
}

// ParseYAML decodes a YAML shape document:
//
//	shapes:
//	  - kind: rectangle
//	    dims: {width: 2, height: 3}
//	  - name: lid
//	    kind: circle
//	    dims: {radius: 1}
func ParseYAML(data []byte) (*ir.Document, error) {
	f, err := cueyaml.Extract("document.yaml", data)
	if err != nil {
		return nil, fromCUE(ErrSyntax, err)
	}
	ctx := cuecontext.New()
	v := ctx.BuildFile(f)
	if err := v.Err(); err != nil {
		return nil, fromCUE(ErrSyntax, err)
	}
	return decode(ctx, v)
}

// Check validates a document that was built in Go rather than parsed.
func Check(doc *ir.Document) error {
	ctx := cuecontext.New()
	v := ctx.Encode(doc)
	if err := v.Err(); err != nil {
		return fromCUE(ErrSchema, err)
	}
	_, err := decode(ctx, v)
	return err
}

// decode unifies v with #Document, requires a concrete result and
// decodes it into the IR.
func decode(ctx *cue.Context, v cue.Value) (*ir.Document, error) {
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Document")).Unify(v)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fromCUE(ErrSchema, err)
	}

	var doc ir.Document
	if err := unified.Decode(&doc); err != nil {
		return nil, fromCUE(ErrSchema, err)
	}
	if doc.Shapes == nil {
		doc.Shapes = []ir.ShapeSpec{}
	}
	return &doc, nil
}
