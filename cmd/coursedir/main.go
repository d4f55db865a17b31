// Package main is the coursedir command line client.
package main

import (
	"os"

	"github.com/phrazzld/coursedir-api/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
