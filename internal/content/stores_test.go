package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cishsite/internal/domain"
)

func TestDefaultContent(t *testing.T) {
	repo, err := Default()
	require.NoError(t, err)

	assert.Len(t, repo.Projects(), 6)
	assert.Len(t, repo.Articles(), 7)
	assert.Equal(t, 1, repo.FeaturedArticle().ID)
	assert.True(t, repo.FeaturedArticle().Featured)
	assert.Len(t, repo.Institutes(), 3)
	assert.Len(t, repo.Highlights(), 3)
	assert.Len(t, repo.Headlines(), 3)
	assert.Len(t, repo.Events(), 3)
	assert.Equal(t, []string{"Ongoing", "Completed", "Planning"}, repo.ProjectStatuses())
	assert.Contains(t, repo.InstituteTypes(), "Natural Resource Management")
	assert.Len(t, repo.ArticleCategories(), 8)

	site := repo.Site()
	assert.Equal(t, []string{"About", "Research", "Institutes", "News", "Contact"}, site.NavItems)
	require.Len(t, site.Stats, 3)
	assert.Equal(t, domain.Stat{Value: 5000, Suffix: "+", Label: "Scientists"}, site.Stats[2])
	assert.Contains(t, site.Tagline, "Sustainable Future")
}

func TestVarietyPresets(t *testing.T) {
	repo, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{PresetFruit, PresetMango}, repo.Presets())

	fruit, err := repo.Varieties(PresetFruit)
	require.NoError(t, err)
	assert.Len(t, fruit.Items, 6)
	assert.Equal(t, []string{"Mango", "Guava", "Citrus", "Lemon"}, fruit.Categories)

	mango, err := repo.Varieties(" Mango ")
	require.NoError(t, err)
	names := make([]string, len(mango.Items))
	for i, v := range mango.Items {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"Amrapali", "Dashehari", "Mallika", "Ambika", "Arunika", "Langra", "Chausa"}, names)

	_, err = repo.Varieties("berries")
	assert.ErrorContains(t, err, "unknown variety preset")
}

func TestAccessorsReturnCopies(t *testing.T) {
	repo, err := Default()
	require.NoError(t, err)

	projects := repo.Projects()
	projects[0].Title = "changed"
	projects[0].Tags[0] = "changed"
	assert.Equal(t, "Development of Climate-Resilient Mango Varieties", repo.Projects()[0].Title)
	assert.Equal(t, "Climate Change", repo.Projects()[0].Tags[0])

	set, err := repo.Varieties(PresetFruit)
	require.NoError(t, err)
	set.Items[0].Features[0] = "changed"
	again, err := repo.Varieties(PresetFruit)
	require.NoError(t, err)
	assert.Equal(t, "Dwarf variety", again.Items[0].Features[0])

	site := repo.Site()
	site.NavItems[0] = "changed"
	assert.Equal(t, "About", repo.Site().NavItems[0])
}

func TestNewStaticCopiesDocument(t *testing.T) {
	doc := Document{
		Projects:  []domain.Project{{ID: 1, Title: "Fixture"}},
		Varieties: map[string]VarietySet{"Fruit": {Items: []domain.Variety{{ID: 1, Name: "Test"}}}},
	}
	repo := NewStatic(doc)
	doc.Projects[0].Title = "changed"

	assert.Equal(t, "Fixture", repo.Projects()[0].Title)
	set, err := repo.Varieties("fruit")
	require.NoError(t, err)
	assert.Equal(t, "Test", set.Items[0].Name)
	assert.Empty(t, repo.Institutes())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	body := `
site:
  name: Test Site
projects:
  - id: 7
    title: Lychee Canopy Management
    category: Fruit Development
    status: Planning
varieties:
  fruit:
    title: Fruit
    items:
      - id: 1
        name: Shahi Lychee
        category: Lychee
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	repo, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Site", repo.Site().Name)
	require.Len(t, repo.Projects(), 1)
	assert.Equal(t, "Lychee Canopy Management", repo.Projects()[0].Title)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read content file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projets: []\n"), 0644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse content file")

	require.NoError(t, os.WriteFile(path, []byte("site:\n  name: x\n"), 0644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "no variety presets")
}
