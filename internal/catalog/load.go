package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Version    string         `yaml:"version"`
	Categories []categoryFile `yaml:"categories"`
}

type categoryFile struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Prompt    string         `yaml:"prompt"`
	Weight    float64        `yaml:"weight"`
	Questions []questionFile `yaml:"questions"`
	Bands     []bandFile     `yaml:"bands"`
}

type questionFile struct {
	ID       string   `yaml:"id"`
	Text     string   `yaml:"text"`
	Weight   float64  `yaml:"weight"`
	ScaleMin int      `yaml:"scale_min"`
	Options  []string `yaml:"options"`
}

type bandFile struct {
	MinScore    float64  `yaml:"min_score"`
	Label       string   `yaml:"label"`
	Priority    string   `yaml:"priority"`
	Suggestions []string `yaml:"suggestions"`
}

// Default returns the embedded instrument.
func Default() (Catalog, error) {
	return Parse(defaultCatalogYAML)
}

// Load reads a catalog from a YAML file, falling back to the embedded
// default when path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog yaml: %w", err)
	}

	c := Catalog{Version: file.Version, Categories: make([]Category, 0, len(file.Categories))}
	for _, cf := range file.Categories {
		cat := Category{
			ID:        cf.ID,
			Name:      cf.Name,
			Prompt:    cf.Prompt,
			Weight:    cf.Weight,
			Questions: make([]Question, 0, len(cf.Questions)),
			Bands:     make([]Band, 0, len(cf.Bands)),
		}
		if cat.Weight == 0 {
			cat.Weight = 1.0
		}
		for _, qf := range cf.Questions {
			cat.Questions = append(cat.Questions, Question{
				ID:         qf.ID,
				CategoryID: cf.ID,
				Text:       qf.Text,
				Weight:     qf.Weight,
				Scale: Scale{
					Min:    qf.ScaleMin,
					Max:    qf.ScaleMin + len(qf.Options) - 1,
					Labels: qf.Options,
				},
			})
		}
		for _, bf := range cf.Bands {
			cat.Bands = append(cat.Bands, Band{
				MinScore:    bf.MinScore,
				Label:       bf.Label,
				Priority:    bf.Priority,
				Suggestions: bf.Suggestions,
			})
		}
		c.Categories = append(c.Categories, cat)
	}

	if err := validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}
