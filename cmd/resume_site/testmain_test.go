package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain picks up RESUME_* settings from a local .env before the command tests run
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
