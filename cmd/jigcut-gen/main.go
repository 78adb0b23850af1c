// jigcut-gen cuts a random-coverage jigsaw from an image without a GUI and
// writes printable piece sheets, answer labels, a workbook or cut lines.
//
// Build:
//   go build -o jigcut-gen ./cmd/jigcut-gen
package main

import (
	"os"

	"github.com/piwi3910/JigCut/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
