package main

import (
	"os"

	"github.com/sagemon/monitor-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
