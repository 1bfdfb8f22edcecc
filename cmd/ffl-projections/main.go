package main

import (
	"os"

	"github.com/joho/godotenv"

	"ffl-projections/internal/cli"
)

func main() {
	// Session cookies usually live in a local .env; absence is fine.
	_ = godotenv.Load()

	os.Exit(cli.Execute())
}
