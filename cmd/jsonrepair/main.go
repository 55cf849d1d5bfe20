// Command jsonrepair repairs malformed JSON from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/lumiseven/jsonrepair-go/internal/cli"
)

func main() {
	root := cli.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCodeOf(err))
	}
}
