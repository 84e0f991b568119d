// Package catalog serves the portfolio and ready-to-sell listings shown on
// the landing page.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/kgnconstruction/kgnbackend/models"
	"github.com/kgnconstruction/kgnbackend/utils"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Projects    []models.PortfolioProject `yaml:"projects" json:"projects"`
	ReadyHouses []models.ReadyHouse       `yaml:"ready_houses" json:"readyHouses"`
}

// Load reads the catalog at path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes a catalog document and fills in missing slugs from titles.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for i := range c.Projects {
		if c.Projects[i].Slug == "" {
			c.Projects[i].Slug = utils.GenerateSlug(c.Projects[i].Title)
		}
	}
	for i := range c.ReadyHouses {
		if c.ReadyHouses[i].Slug == "" {
			c.ReadyHouses[i].Slug = utils.GenerateSlug(c.ReadyHouses[i].Title)
		}
	}

	if dup := lo.FindDuplicates(lo.Map(c.Projects, func(p models.PortfolioProject, _ int) string { return p.Slug })); len(dup) > 0 {
		return nil, fmt.Errorf("duplicate project slugs: %v", dup)
	}
	if dup := lo.FindDuplicates(lo.Map(c.ReadyHouses, func(h models.ReadyHouse, _ int) string { return h.Slug })); len(dup) > 0 {
		return nil, fmt.Errorf("duplicate ready house slugs: %v", dup)
	}
	return &c, nil
}

func (c *Catalog) Project(slug string) (models.PortfolioProject, bool) {
	return lo.Find(c.Projects, func(p models.PortfolioProject) bool { return p.Slug == slug })
}

func (c *Catalog) ReadyHouse(slug string) (models.ReadyHouse, bool) {
	return lo.Find(c.ReadyHouses, func(h models.ReadyHouse) bool { return h.Slug == slug })
}
