// Package content loads the static portfolio document rendered by the
// front-end. It is read once at startup and never mutated.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/portfolio/portfolio-server/internal/model"
)

//go:embed default.yaml
var defaultDocument []byte

// Default returns the portfolio bundled with the binary.
func Default() (*model.Portfolio, error) {
	return Parse(defaultDocument)
}

// Load reads path, or the bundled document when path is empty.
func Load(path string) (*model.Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*model.Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p model.Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if p.Personal.Name == "" {
		return nil, errors.New("parse content: personal.name is required")
	}
	normalize(&p)
	return &p, nil
}

// normalize replaces nil slices so the JSON encoding always has arrays.
func normalize(p *model.Portfolio) {
	if p.Personal.About == nil {
		p.Personal.About = []string{}
	}
	if p.Experiences == nil {
		p.Experiences = []model.Experience{}
	}
	if p.Projects == nil {
		p.Projects = []model.Project{}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
	if p.Skills == nil {
		p.Skills = []model.SkillGroup{}
	}
	for i := range p.Skills {
		if p.Skills[i].Items == nil {
			p.Skills[i].Items = []string{}
		}
	}
	if p.Achievements == nil {
		p.Achievements = []model.Achievement{}
	}
}
