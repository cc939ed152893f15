package main

import (
	"github.com/joho/godotenv"

	"github.com/docpilot/docpilot/cmd"
)

func main() {
	// Optional .env for local model settings; absence is not an error.
	_ = godotenv.Load()

	cmd.Execute()
}
