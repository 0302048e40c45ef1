package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/harfsearch/internal/repository/entity"
)

// Fixtures is a YAML seed file with tools and articles.
type Fixtures struct {
	Tools    []entity.ToolDTO    `yaml:"tools"`
	Articles []entity.ArticleDTO `yaml:"articles"`
}

// LoadFixtures reads a seed file.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes a seed file.
func ParseFixtures(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return f, nil
}

// SeedResult counts stored rows.
type SeedResult struct {
	Tools    int
	Articles int
}

// Seed upserts every fixture row. It stops at the first failing row.
func (a *App) Seed(ctx context.Context, f *Fixtures) (SeedResult, error) {
	var res SeedResult
	for i := range f.Tools {
		if err := a.Tools.Save(ctx, &f.Tools[i]); err != nil {
			return res, err
		}
		res.Tools++
	}
	for i := range f.Articles {
		if err := a.Articles.Save(ctx, &f.Articles[i]); err != nil {
			return res, err
		}
		res.Articles++
	}
	return res, nil
}
