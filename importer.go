package portfolio

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hsdev/portfolio/content"
)

// ManifestEntry is one record in a content manifest file.
type ManifestEntry struct {
	Slug             string   `yaml:"slug"`
	Title            string   `yaml:"title"`
	Date             string   `yaml:"date"`
	Tags             []string `yaml:"tags"`
	Template         string   `yaml:"template"`
	Excerpt          string   `yaml:"excerpt"`
	Description      string   `yaml:"description"`
	GeneratedExcerpt string   `yaml:"generated_excerpt"`
	HTML             string   `yaml:"html"`
	Programming      string   `yaml:"programming"`
}

// Manifest is the YAML document accepted by the import command.
type Manifest struct {
	Records []ManifestEntry `yaml:"records"`
}

// ParseManifest decodes manifest YAML and converts it into records.
func ParseManifest(data []byte) ([]content.Record, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("portfolio: parse manifest: %w", err)
	}
	recs := make([]content.Record, 0, len(m.Records))
	seen := make(map[string]bool, len(m.Records))
	for i, e := range m.Records {
		r, err := e.record()
		if err != nil {
			return nil, fmt.Errorf("portfolio: manifest entry %d: %w", i+1, err)
		}
		if seen[r.Slug] {
			return nil, fmt.Errorf("portfolio: manifest entry %d: duplicate slug %q", i+1, r.Slug)
		}
		seen[r.Slug] = true
		recs = append(recs, r)
	}
	return recs, nil
}

func (e ManifestEntry) record() (content.Record, error) {
	slug := Slugify(e.Slug)
	if slug == "" {
		slug = Slugify(e.Title)
	}
	if slug == "" {
		return content.Record{}, fmt.Errorf("slug or title is required")
	}
	if e.Date != "" {
		if _, err := time.Parse("2006-01-02", e.Date); err != nil {
			return content.Record{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", e.Date)
		}
	}
	return content.Record{
		Slug:             slug,
		Title:            e.Title,
		Date:             e.Date,
		Tags:             FilterEmpty(e.Tags),
		Kind:             content.ParseKind(e.Template),
		Excerpt:          e.Excerpt,
		Description:      e.Description,
		GeneratedExcerpt: e.GeneratedExcerpt,
		HTML:             e.HTML,
		Programming:      e.Programming,
	}, nil
}

// ImportManifest replaces the store contents with the records in the
// manifest at path and returns how many were loaded.
func ImportManifest(s *Store, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("portfolio: read manifest: %w", err)
	}
	recs, err := ParseManifest(data)
	if err != nil {
		return 0, err
	}
	if err := s.ReplaceAll(recs); err != nil {
		return 0, fmt.Errorf("portfolio: import records: %w", err)
	}
	return len(recs), nil
}
