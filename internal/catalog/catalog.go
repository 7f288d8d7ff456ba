// Package catalog holds the immutable, ordered set of presets a session browses.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var defaultCatalog []byte

var (
	ErrInvalidPreset = errors.New("invalid preset")
	ErrNotFound      = errors.New("preset not found")
)

type Preset struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Downloads   string   `yaml:"downloads"`
	Rating      float64  `yaml:"rating"`
	FPS         int      `yaml:"fps"`
	Resolution  string   `yaml:"resolution"`
	Layers      int      `yaml:"layers"`
	Size        string   `yaml:"size"`
	Description string   `yaml:"description"`
	Color       string   `yaml:"color"`
	Featured    bool     `yaml:"featured"`
	XML         string   `yaml:"xml"`
}

type catalogFile struct {
	Presets []Preset `yaml:"presets"`
}

// Catalog is fixed once loaded. Every accessor hands out copies.
type Catalog struct {
	presets []Preset
}

func Default() (*Catalog, error) {
	c, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return c, nil
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := validate(file.Presets); err != nil {
		return nil, err
	}
	return New(file.Presets), nil
}

// New builds a catalog from already validated records.
func New(presets []Preset) *Catalog {
	c := &Catalog{presets: make([]Preset, len(presets))}
	for i, p := range presets {
		c.presets[i] = clonePreset(p)
	}
	return c
}

func (c *Catalog) Presets() []Preset {
	out := make([]Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = clonePreset(p)
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.presets)
}

func (c *Catalog) Find(id int) (Preset, bool) {
	for _, p := range c.presets {
		if p.ID == id {
			return clonePreset(p), true
		}
	}
	return Preset{}, false
}

// Categories lists the distinct category values in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{}, len(c.presets))
	out := make([]string, 0, len(c.presets))
	for _, p := range c.presets {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func validate(presets []Preset) error {
	ids := make(map[int]int, len(presets))
	for i, p := range presets {
		if p.ID <= 0 {
			return fmt.Errorf("%w: record %d: missing id", ErrInvalidPreset, i)
		}
		if prev, ok := ids[p.ID]; ok {
			return fmt.Errorf("%w: record %d: duplicate id %d (also record %d)", ErrInvalidPreset, i, p.ID, prev)
		}
		ids[p.ID] = i

		required := []struct {
			field string
			value string
		}{
			{"title", p.Title},
			{"author", p.Author},
			{"category", p.Category},
			{"xml", p.XML},
		}
		for _, r := range required {
			if strings.TrimSpace(r.value) == "" {
				return fmt.Errorf("%w: record %d (id %d): missing %s", ErrInvalidPreset, i, p.ID, r.field)
			}
		}
	}
	return nil
}

func clonePreset(p Preset) Preset {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
