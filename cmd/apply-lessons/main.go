package main

import (
	"log"

	"oyan-content/internal/batch"
	"oyan-content/internal/config"
)

func main() {
	cfg := config.Load()

	if err := batch.NewRunner(cfg).Run(); err != nil {
		log.Fatalf("✗ Apply failed: %v", err)
	}
}
