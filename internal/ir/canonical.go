package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces a canonical JSON encoding of doc for hashing.
//
// Differences from json.Marshal:
//  1. Object keys are sorted, including dimension names
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. Numbers use the shortest representation that round-trips
//  5. An empty version is written as DocumentVersion
//
// NaN and infinite dimensions are rejected.
func MarshalCanonical(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	var buf bytes.Buffer
	buf.WriteString(`{"shapes":[`)
	for i, s := range doc.Shapes {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeShape(&buf, s); err != nil {
			return nil, fmt.Errorf("shapes[%d]: %w", i, err)
		}
	}
	buf.WriteString(`],"version":`)
	version := doc.Version
	if version == "" {
		version = DocumentVersion
	}
	if err := writeString(&buf, version); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeShape writes keys in sorted order: dims, kind, name.
func writeShape(buf *bytes.Buffer, s ShapeSpec) error {
	buf.WriteString(`{"dims":{`)
	for i, name := range s.DimNames() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(buf, name); err != nil {
			return err
		}
		buf.WriteByte(':')
		v := s.Dims[name]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("dims.%s: %v is not representable in canonical JSON", name, v)
		}
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	buf.WriteString(`},"kind":`)
	if err := writeString(buf, s.Kind); err != nil {
		return err
	}
	if s.Name != "" {
		buf.WriteString(`,"name":`)
		if err := writeString(buf, s.Name); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}
