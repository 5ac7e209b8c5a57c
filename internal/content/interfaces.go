// Package content serves the site's read-only records.
package content

import "cishsite/internal/domain"

// Variety presets
const (
	PresetFruit = "fruit"
	PresetMango = "mango"
)

// Repository provides the site's content. Every accessor returns a copy.
type Repository interface {
	Site() domain.Site

	Projects() []domain.Project
	ProjectCategories() []string
	ProjectStatuses() []string

	FeaturedArticle() domain.Article
	Articles() []domain.Article
	ArticleCategories() []string

	Institutes() []domain.Institute
	InstituteRegions() []string
	InstituteTypes() []string

	Varieties(preset string) (VarietySet, error)
	Presets() []string

	Highlights() []domain.ResearchArea
	Headlines() []domain.Headline
	Events() []domain.Event
}

// VarietySet is one configuration of the varieties carousel
type VarietySet struct {
	Title      string           `yaml:"title"`
	Categories []string         `yaml:"categories"`
	Items      []domain.Variety `yaml:"items"`
}

// Document is the on-disk schema of a content file
type Document struct {
	Site domain.Site `yaml:"site"`

	Projects          []domain.Project `yaml:"projects"`
	ProjectCategories []string         `yaml:"project_categories"`
	ProjectStatuses   []string         `yaml:"project_statuses"`

	FeaturedArticle   domain.Article   `yaml:"featured_article"`
	Articles          []domain.Article `yaml:"articles"`
	ArticleCategories []string         `yaml:"article_categories"`

	Institutes       []domain.Institute `yaml:"institutes"`
	InstituteRegions []string           `yaml:"institute_regions"`
	InstituteTypes   []string           `yaml:"institute_types"`

	Varieties map[string]VarietySet `yaml:"varieties"`

	Highlights []domain.ResearchArea `yaml:"highlights"`
	Headlines  []domain.Headline     `yaml:"headlines"`
	Events     []domain.Event        `yaml:"events"`
}
