package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/promptstage/scene-engine/pkg/scenescript"
	"github.com/promptstage/scene-engine/pkg/seed"
	"github.com/promptstage/scene-engine/pkg/world"
)

// validate checks seed cache files against the strict scene script
// rules and each world's rosters, so bad seed data is caught before it
// ships instead of at play time.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <seed.json> [<seed.json> ...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		if err := validateFile(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed = true
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}
	if failed {
		os.Exit(1)
	}
}

func validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	if !strings.HasSuffix(filename, ".json") {
		return fmt.Errorf("seed file must have .json extension: %s", filename)
	}

	data, err := seed.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var errs []string
	total := 0
	for worldID, entries := range data {
		zone, ok := world.Get(worldID)
		if !ok {
			errs = append(errs, fmt.Sprintf("unknown world %q", worldID))
			continue
		}
		vocab := zone.Vocabulary()
		for prompt, script := range entries {
			total++
			if strings.TrimSpace(prompt) == "" {
				errs = append(errs, fmt.Sprintf("world %q has an empty prompt key", worldID))
			}
			if err := scenescript.StrictValidate(script, vocab); err != nil {
				errs = append(errs, fmt.Sprintf("world %q prompt %q: %v", worldID, prompt, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(errs, "\n"))
	}
	fmt.Printf("Checked %d entries across %d worlds.\n", total, len(data))
	return nil
}
