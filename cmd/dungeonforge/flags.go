package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/dungeonforge/internal/config"
)

// parseSeed parses a comma-separated list of integers. Blank input yields an
// empty seed.
func parseSeed(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	seed := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("seed element %q: %w", p, err)
		}
		seed = append(seed, n)
	}
	return seed, nil
}

// applyFlags overlays non-zero command-line values onto cfg and revalidates.
func applyFlags(cfg *config.Config, seed string, rooms, tries int, mode string) error {
	if seed != "" {
		parsed, err := parseSeed(seed)
		if err != nil {
			return err
		}
		cfg.Generation.Seed = parsed
	}
	if rooms != 0 {
		cfg.Generation.RoomCount = rooms
	}
	if tries != 0 {
		cfg.Generation.MaxTries = tries
	}
	if mode != "" {
		cfg.Render.Mode = mode
	}
	return cfg.Validate()
}
