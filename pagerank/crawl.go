package pagerank

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

var hrefRe = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl parses every .html file in dir and returns the link graph among
// them. Links to the page itself and to targets outside the corpus are
// dropped. Files are parsed concurrently; the first read error aborts
// the crawl.
func Crawl(dir string) (Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("crawl corpus: %w", err)
	}

	corpus := make(Corpus)
	var mu sync.Mutex
	g := errgroup.Group{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		name := entry.Name()
		g.Go(func() error {
			contents, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				return fmt.Errorf("crawl corpus: %w", err)
			}
			links := make(map[string]bool)
			for _, m := range hrefRe.FindAllStringSubmatch(string(contents), -1) {
				if m[1] != name {
					links[m[1]] = true
				}
			}
			mu.Lock()
			corpus[name] = links
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Only links that stay inside the corpus count.
	for page, links := range corpus {
		for link := range links {
			if _, ok := corpus[link]; !ok {
				delete(corpus[page], link)
			}
		}
	}
	return corpus, nil
}
