// Package site assembles documents into a static site and writes it to disk.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pagecraft-dev/pagecraft/pkg/el"
)

// Site is an ordered collection of pages keyed by output path.
type Site struct {
	pages  map[string]*el.Document
	logger *slog.Logger
}

// Option configures a Site.
type Option func(*Site)

// WithLogger sets the logger used during builds.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Site) {
		s.logger = logger
	}
}

// New creates an empty site.
func New(opts ...Option) *Site {
	s := &Site{
		pages:  make(map[string]*el.Document),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add registers a document under the given output path (relative, e.g.
// "index.html" or "reports/daily.html"). Adding the same path twice is an
// error.
func (s *Site) Add(path string, doc *el.Document) error {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return fmt.Errorf("site: empty page path")
	}
	if filepath.IsAbs(path) {
		return fmt.Errorf("site: page path %q escapes the output directory", path)
	}
	// Normalize before checking so interior segments such as
	// "pages/../../x.html" cannot climb out of the output directory.
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("site: page path %q escapes the output directory", path)
	}
	if _, exists := s.pages[clean]; exists {
		return fmt.Errorf("site: page %q already added", clean)
	}
	s.pages[clean] = doc
	return nil
}

// Pages returns the registered page paths in sorted order.
func (s *Site) Pages() []string {
	paths := make([]string, 0, len(s.pages))
	for p := range s.pages {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Build renders every page into dir, creating directories as needed. Pages
// are written in sorted path order so builds are deterministic.
func (s *Site) Build(dir string) error {
	if len(s.pages) == 0 {
		return fmt.Errorf("site: no pages to build")
	}

	for _, path := range s.Pages() {
		out := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("site: creating %s: %w", filepath.Dir(out), err)
		}

		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("site: creating %s: %w", out, err)
		}
		if err := s.pages[path].Render(f); err != nil {
			f.Close()
			return fmt.Errorf("site: rendering %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("site: writing %s: %w", out, err)
		}

		s.logger.Info("wrote page", "path", path, "file", out)
	}

	s.logger.Info("site built", "pages", len(s.pages), "dir", dir)
	return nil
}
