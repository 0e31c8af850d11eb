// Package projects loads the portfolio entries shown in the project list and
// their gallery media.
package projects

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var (
	ErrEmptyID     = errors.New("projects: entry without id")
	ErrDuplicateID = errors.New("projects: duplicate id")
	ErrNotFound    = errors.New("projects: not found")
)

// Media is one gallery item. Aspect is height over width.
type Media struct {
	Caption string  `yaml:"caption"`
	Kind    string  `yaml:"kind"`
	Aspect  float64 `yaml:"aspect"`
}

type Project struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	Year    string  `yaml:"year"`
	Summary string  `yaml:"summary"`
	Media   []Media `yaml:"media"`
}

type Catalog struct {
	Projects []Project `yaml:"projects"`
	index    map[string]int
}

// Parse decodes and indexes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	c.index = make(map[string]int, len(c.Projects))
	for i, p := range c.Projects {
		if p.ID == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%q: %w", p.ID, ErrDuplicateID)
		}
		c.index[p.ID] = i
	}
	return &c, nil
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("projects: embedded catalog: %v", err))
	}
	return c
}

func (c *Catalog) Get(id string) (Project, error) {
	i, ok := c.index[id]
	if !ok {
		return Project{}, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return c.Projects[i], nil
}

// At returns the project at list position i.
func (c *Catalog) At(i int) (Project, bool) {
	if i < 0 || i >= len(c.Projects) {
		return Project{}, false
	}
	return c.Projects[i], true
}

func (c *Catalog) Len() int { return len(c.Projects) }
