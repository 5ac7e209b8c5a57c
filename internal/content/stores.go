package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"cishsite/internal/domain"
)

//go:embed data/site.yaml
var defaultDocument []byte

// StaticRepository is an immutable in-memory Repository
type StaticRepository struct {
	doc Document
}

// NewStatic creates a repository over doc. The document is copied.
func NewStatic(doc Document) *StaticRepository {
	return &StaticRepository{doc: cloneDocument(doc)}
}

// Default returns the repository built into the binary
func Default() (*StaticRepository, error) {
	doc, err := Parse(defaultDocument)
	if err != nil {
		return nil, fmt.Errorf("failed to parse built-in content: %w", err)
	}
	return NewStatic(doc), nil
}

// LoadFile reads a content document with the built-in schema
func LoadFile(path string) (*StaticRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content file %s: %w", path, err)
	}
	return NewStatic(doc), nil
}

// Parse decodes a YAML content document. Unknown keys are rejected so that
// typos in override files surface.
func Parse(data []byte) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, err
	}
	if len(doc.Varieties) == 0 {
		return Document{}, errors.New("no variety presets defined")
	}
	return doc, nil
}

func (s *StaticRepository) Site() domain.Site {
	site := s.doc.Site
	site.About = slices.Clone(site.About)
	site.Stats = slices.Clone(site.Stats)
	site.NavItems = slices.Clone(site.NavItems)
	site.QuickLinks = slices.Clone(site.QuickLinks)
	site.TrendingTopics = slices.Clone(site.TrendingTopics)
	return site
}

func (s *StaticRepository) Projects() []domain.Project {
	out := make([]domain.Project, len(s.doc.Projects))
	for i, p := range s.doc.Projects {
		p.Tags = slices.Clone(p.Tags)
		out[i] = p
	}
	return out
}

func (s *StaticRepository) ProjectCategories() []string {
	return slices.Clone(s.doc.ProjectCategories)
}

func (s *StaticRepository) ProjectStatuses() []string {
	return slices.Clone(s.doc.ProjectStatuses)
}

func (s *StaticRepository) FeaturedArticle() domain.Article {
	return s.doc.FeaturedArticle
}

func (s *StaticRepository) Articles() []domain.Article {
	return slices.Clone(s.doc.Articles)
}

func (s *StaticRepository) ArticleCategories() []string {
	return slices.Clone(s.doc.ArticleCategories)
}

func (s *StaticRepository) Institutes() []domain.Institute {
	return slices.Clone(s.doc.Institutes)
}

func (s *StaticRepository) InstituteRegions() []string {
	return slices.Clone(s.doc.InstituteRegions)
}

func (s *StaticRepository) InstituteTypes() []string {
	return slices.Clone(s.doc.InstituteTypes)
}

// Varieties returns the named preset. Names are case-insensitive.
func (s *StaticRepository) Varieties(preset string) (VarietySet, error) {
	set, ok := s.doc.Varieties[strings.ToLower(strings.TrimSpace(preset))]
	if !ok {
		return VarietySet{}, fmt.Errorf("unknown variety preset %q (have %s)", preset, strings.Join(s.Presets(), ", "))
	}
	return cloneVarieties(set), nil
}

// Presets lists the variety preset names in sorted order
func (s *StaticRepository) Presets() []string {
	names := make([]string, 0, len(s.doc.Varieties))
	for name := range s.doc.Varieties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *StaticRepository) Highlights() []domain.ResearchArea {
	return slices.Clone(s.doc.Highlights)
}

func (s *StaticRepository) Headlines() []domain.Headline {
	return slices.Clone(s.doc.Headlines)
}

func (s *StaticRepository) Events() []domain.Event {
	return slices.Clone(s.doc.Events)
}

func cloneVarieties(set VarietySet) VarietySet {
	out := VarietySet{
		Title:      set.Title,
		Categories: slices.Clone(set.Categories),
		Items:      make([]domain.Variety, len(set.Items)),
	}
	for i, v := range set.Items {
		v.Features = slices.Clone(v.Features)
		out.Items[i] = v
	}
	return out
}

func cloneDocument(doc Document) Document {
	out := doc
	r := &StaticRepository{doc: doc}
	out.Site = r.Site()
	out.Projects = r.Projects()
	out.ProjectCategories = r.ProjectCategories()
	out.ProjectStatuses = r.ProjectStatuses()
	out.Articles = r.Articles()
	out.ArticleCategories = r.ArticleCategories()
	out.Institutes = r.Institutes()
	out.InstituteRegions = r.InstituteRegions()
	out.InstituteTypes = r.InstituteTypes()
	out.Highlights = r.Highlights()
	out.Headlines = r.Headlines()
	out.Events = r.Events()
	out.Varieties = make(map[string]VarietySet, len(doc.Varieties))
	for name, set := range doc.Varieties {
		out.Varieties[strings.ToLower(name)] = cloneVarieties(set)
	}
	return out
}
