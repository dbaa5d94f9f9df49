// exitready is the command-line interface to the analysis engine.
package main

import (
	"os"

	"github.com/turtacn/ExitReady-Intelligence/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}
