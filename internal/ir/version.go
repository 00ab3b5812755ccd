package ir

// Version constants for the document schema and the tool.
const (
	// DocumentVersion is the shape document schema version.
	DocumentVersion = "1"

	// ToolVersion is the solid CLI version.
	ToolVersion = "0.1.0"
)
