package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainDocument prefixes document digests.
// Version suffix enables future algorithm migration.
const DomainDocument = "solid/document/v1"

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
// The null byte (0x00) separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Digest computes a content-addressed identity for doc. Two documents
// that describe the same shapes in the same order have the same digest,
// whatever their source format, key order or number spelling.
func Digest(doc *Document) (string, error) {
	canonical, err := MarshalCanonical(doc)
	if err != nil {
		return "", fmt.Errorf("Digest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainDocument, canonical), nil
}

// MustDigest is like Digest but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustDigest(doc *Document) string {
	d, err := Digest(doc)
	if err != nil {
		panic(err)
	}
	return d
}
