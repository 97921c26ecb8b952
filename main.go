package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/srm221B/cmms/cmd"
)

func main() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute()
}
