package main

import (
	"github.com/joho/godotenv"

	"github.com/khrees2412/cvexpress/cmd"
)

func main() {
	// A missing .env is fine; the config file and environment still apply.
	_ = godotenv.Load()

	cmd.Execute()
}
