package main

import (
	"os"

	"github.com/nsomarouthu/rds.upgrade.tool/cmd/rdsops/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
