package main

import (
	"os"

	"github.com/kailas-cloud/harfsearch/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
