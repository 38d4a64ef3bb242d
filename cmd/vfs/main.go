package main

import (
	"os"

	"github.com/jmgilman/go/vfs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
