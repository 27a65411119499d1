package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/wandermaxq-star/GeoblogRF-sub005/cmd"
)

func main() {
	_ = godotenv.Load(".env")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
