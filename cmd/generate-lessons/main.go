package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"oyan-content/internal/config"
	"oyan-content/internal/generator"
)

func main() {
	key := flag.String("key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	flag.Parse()

	cfg := config.Load()
	if *key != "" {
		cfg.GeminiAPIKey = *key
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("✗ Set GEMINI_API_KEY or pass -key=YOUR_KEY. Get a key from https://aistudio.google.com/app/apikey")
	}

	ctx := context.Background()
	svc, err := generator.NewService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer svc.Close()

	if err := os.MkdirAll(cfg.GeneratedDir, 0755); err != nil {
		log.Fatalf("✗ Could not create %s: %v", cfg.GeneratedDir, err)
	}

	for id := cfg.FirstLessonID; id <= cfg.LastLessonID; id++ {
		log.Printf("Calling Gemini for cloud %d...", id)
		data, err := svc.GenerateLesson(ctx, id)
		if err != nil {
			log.Printf("ERROR: cloud %d: %v", id, err)
			continue
		}
		path := filepath.Join(cfg.GeneratedDir, fmt.Sprintf("cloud%d.json", id))
		if err := os.WriteFile(path, data, 0644); err != nil {
			log.Printf("ERROR: cloud %d: %v", id, err)
			continue
		}
		log.Printf("  Saved cloud%d.json", id)
	}
	log.Printf("Done. Check %s/", cfg.GeneratedDir)
}
