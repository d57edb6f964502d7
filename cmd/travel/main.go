// Command travel runs the sample travel booking scenario, or with the serve
// subcommand, the travel booking HTTP API.
package main

import (
	"os"

	"github.com/pkordes/travel-package/cmd/travel/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
