package rdf

import (
	"bytes"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Fingerprint returns the hex BLAKE3-256 digest of the graph's line notation.
// Equal graphs with equal prefix tables have equal fingerprints.
func (g *Graph) Fingerprint() string {
	var buf bytes.Buffer
	// writeTurtle only fails when the writer does; bytes.Buffer never does.
	_ = writeTurtle(&buf, g)
	sum := blake3.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
