package crossword

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LoadCrossword reads a structure file and builds the grid it describes.
func LoadCrossword(path string) (*Crossword, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}
	text := strings.TrimRight(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	cw, err := MakeCrossword(lines)
	if err != nil {
		return nil, fmt.Errorf("structure %s: %w", path, err)
	}
	return cw, nil
}

// LoadWords reads a word list, one candidate per line. Words are
// uppercased and deduplicated so that the solver can rely on exact string
// comparisons, and returned sorted.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	defer f.Close()

	upper := cases.Upper(language.Und)
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		seen[upper.String(word)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words, nil
}
