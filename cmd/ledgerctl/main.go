package main

import (
	"os"

	"salamatlab/cmd/ledgerctl/commands"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
