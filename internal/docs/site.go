// Package docs loads the documentation site described by a YAML navigation
// file and the markdown pages it references.
package docs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Page is a single navigable document.
type Page struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
	Badge string `yaml:"badge,omitempty"`
}

// Section groups pages under a collapsible heading.
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Expanded bool   `yaml:"expanded"`
	Pages    []Page `yaml:"pages"`
}

// Site is the parsed navigation file.
type Site struct {
	Name     string    `yaml:"name"`
	Root     string    `yaml:"root"`
	Pages    []Page    `yaml:"pages"`
	Sections []Section `yaml:"sections"`

	file string
}

var ErrPageNotFound = errors.New("page not found")

// LoadSite reads and validates the navigation file at path.
func LoadSite(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site file: %w", err)
	}
	site, err := ParseSite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	site.file = path
	return site, nil
}

// ParseSite decodes a navigation file. Page IDs default to the page path
// without its extension and must be unique across the site.
func ParseSite(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("parse site: %w", err)
	}
	seen := make(map[string]struct{})
	normalize := func(p *Page) error {
		if p.ID == "" {
			p.ID = strings.TrimSuffix(filepath.ToSlash(p.Path), filepath.Ext(p.Path))
		}
		if p.ID == "" {
			return fmt.Errorf("page %q has neither id nor path", p.Title)
		}
		if p.Title == "" {
			p.Title = p.ID
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate page id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
		return nil
	}
	for i := range site.Pages {
		if err := normalize(&site.Pages[i]); err != nil {
			return nil, err
		}
	}
	sections := make(map[string]struct{}, len(site.Sections))
	for i := range site.Sections {
		sec := &site.Sections[i]
		if sec.ID == "" {
			sec.ID = slug(sec.Title)
		}
		if sec.ID == "" {
			return nil, fmt.Errorf("section %d has no id or title", i)
		}
		if _, dup := sections[sec.ID]; dup {
			return nil, fmt.Errorf("duplicate section id %q", sec.ID)
		}
		sections[sec.ID] = struct{}{}
		for j := range sec.Pages {
			if err := normalize(&sec.Pages[j]); err != nil {
				return nil, err
			}
		}
	}
	return &site, nil
}

// Find returns the page with the given id.
func (s *Site) Find(id string) (Page, bool) {
	if s == nil {
		return Page{}, false
	}
	for _, p := range s.Pages {
		if p.ID == id {
			return p, true
		}
	}
	for _, sec := range s.Sections {
		for _, p := range sec.Pages {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Page{}, false
}

// First returns the first page in navigation order.
func (s *Site) First() (Page, bool) {
	if s == nil {
		return Page{}, false
	}
	if len(s.Pages) > 0 {
		return s.Pages[0], true
	}
	for _, sec := range s.Sections {
		if len(sec.Pages) > 0 {
			return sec.Pages[0], true
		}
	}
	return Page{}, false
}

// Dir is the directory page paths resolve against.
func (s *Site) Dir() string {
	base := "."
	if s.file != "" {
		base = filepath.Dir(s.file)
	}
	if s.Root == "" {
		return base
	}
	if filepath.IsAbs(s.Root) {
		return s.Root
	}
	return filepath.Join(base, s.Root)
}

// File returns the navigation file path, empty for parsed sites.
func (s *Site) File() string {
	return s.file
}

// ReadPage loads the markdown source for the page id.
func (s *Site) ReadPage(id string) ([]byte, error) {
	page, ok := s.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, id)
	}
	if page.Path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), page.Path))
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", id, err)
	}
	return data, nil
}

// ModTime reports the newest modification time across the navigation file
// and every page it references. Missing pages are skipped.
func (s *Site) ModTime() time.Time {
	var newest time.Time
	consider := func(path string) {
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
		}
	}
	if s.file != "" {
		consider(s.file)
	}
	dir := s.Dir()
	for _, p := range s.Pages {
		if p.Path != "" {
			consider(filepath.Join(dir, p.Path))
		}
	}
	for _, sec := range s.Sections {
		for _, p := range sec.Pages {
			if p.Path != "" {
				consider(filepath.Join(dir, p.Path))
			}
		}
	}
	return newest
}

func slug(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	return strings.Join(fields, "-")
}
