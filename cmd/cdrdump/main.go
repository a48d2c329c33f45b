// Command cdrdump decodes a CDR-encoded file and prints its fields.
//
// It exists to exercise lib/cdr end-to-end: read bytes, build a Codec,
// optionally consume an encapsulation header, then walk a caller-supplied
// schema of primitive tags, printing each decoded value as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/thebagchi/go-cdr/cmd/cdrdump/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
