// Command rdfmap converts, inspects and decodes RDF graphs written in line
// notation.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rdfmap: %v\n", err)
		os.Exit(1)
	}
}
