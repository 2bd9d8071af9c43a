package main

import (
	"os"

	"github.com/msto63/rbdb/cmd/rbdb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
