package tree

// Charset provides the characters printed while traversing the directory
// structure.
type Charset struct {
	// Branch is repeated once per depth level before a line.
	Branch string
	// Connector is written immediately before each child entry.
	Connector string
}

// DefaultCharset returns the default traversal glyphs: plain two-space
// indentation and no connector.
func DefaultCharset() Charset {
	return Charset{Branch: "  ", Connector: ""}
}
