package main

import (
	"os"

	"github.com/pihole2adguard/teleporter-importer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
