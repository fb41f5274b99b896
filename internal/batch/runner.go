// Package batch drives one apply run: generated lesson records in, a
// single rewrite of the course file out.
package batch

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"oyan-content/internal/config"
	"oyan-content/internal/swiftgen"
)

type Runner struct {
	cfg *config.Config
}

func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// Run processes the configured lesson id range in ascending order. Each
// lesson is fully canonicalized and spliced before the next id; the course
// file is held in memory and written exactly once at the end. A missing
// record or marker skips that id only; an unreadable course file is the
// one fatal condition.
func (r *Runner) Run() error {
	content, err := os.ReadFile(r.cfg.CourseFile)
	if err != nil {
		return fmt.Errorf("read course file: %w", err)
	}
	doc := swiftgen.ParseDocument(string(content))

	updated := 0
	for id := r.cfg.FirstLessonID; id <= r.cfg.LastLessonID; id++ {
		path := filepath.Join(r.cfg.GeneratedDir, fmt.Sprintf("cloud%d.json", id))
		lesson, err := LoadLesson(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Printf("WARN: %s not found, skipping", path)
			} else {
				log.Printf("WARN: skipping lesson %d: %v", id, err)
			}
			continue
		}

		block, dropped := swiftgen.Assemble(id, lesson)
		if dropped > 0 {
			log.Printf("INFO: lesson %d: dropped %d irreparable question(s)", id, dropped)
		}

		if err := doc.Replace(id, block); err != nil {
			if errors.Is(err, swiftgen.ErrMarkerNotFound) {
				log.Printf("WARN: could not find case %d in %s", id, r.cfg.CourseFile)
				continue
			}
			return err
		}
		log.Printf("Updated case %d", id)
		updated++
	}

	if err := os.WriteFile(r.cfg.CourseFile, []byte(doc.String()), 0644); err != nil {
		return fmt.Errorf("write course file: %w", err)
	}
	log.Printf("Done. %s updated (%d lessons)", r.cfg.CourseFile, updated)
	return nil
}
