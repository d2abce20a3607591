package main

import (
	"os"

	"github.com/nimarahimi/zirnevis/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
