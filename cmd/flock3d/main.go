package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/lao-tseu-is-alive/go-flock3d/cmd/flock3d/cmd"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
