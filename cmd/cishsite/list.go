package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cishsite/internal/content"
	"cishsite/internal/domain"
	"cishsite/internal/ui/services/filter"
)

// listKinds are the collections the list command can print
var listKinds = []string{"projects", "news", "institutes", "varieties"}

type listOptions struct {
	search string
	facets []string
}

func newListCmd(opts *options) *cobra.Command {
	lo := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list <projects|news|institutes|varieties>",
		Short: "Print a filtered listing without starting the interactive site",
		Long: `Prints one of the site's filterable collections as a table.

Examples:
  cishsite list projects --facet status=Ongoing
  cishsite list institutes --facet region=North --search lucknow
  cishsite list varieties --varieties mango`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: listKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			repo, err := loadContent(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			facets, err := parseFacets(lo.facets)
			if err != nil {
				return err
			}
			return writeListing(cmd.OutOrStdout(), repo, args[0], cfg.Varieties.Preset, lo.search, facets)
		},
	}
	cmd.Flags().StringVarP(&lo.search, "search", "s", "", "case-insensitive substring search")
	cmd.Flags().StringArrayVarP(&lo.facets, "facet", "f", nil, "facet filter as name=value, repeatable")
	return cmd
}

// parseFacets turns name=value pairs into a facet selection
func parseFacets(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.ToLower(strings.TrimSpace(name))
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid facet %q, expected name=value", p)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

// writeListing prints the filtered view of one collection
func writeListing(w io.Writer, repo content.Repository, kind, preset, search string, facets map[string]string) error {
	switch kind {
	case "projects":
		coll := filter.NewCollection(repo.Projects(),
			filter.NewFacetSpec(domain.FacetCategory, "Category", repo.ProjectCategories()),
			filter.NewFacetSpec(domain.FacetStatus, "Status", repo.ProjectStatuses()))
		return printCollection(w, coll, search, facets, "research projects",
			[]string{"ID", "Title", "Category", "Status", "Progress"},
			func(p domain.Project) []string {
				return []string{strconv.Itoa(p.ID), p.Title, p.Category, p.Status, fmt.Sprintf("%d%%", p.Progress)}
			})
	case "news":
		coll := filter.NewCollection(repo.Articles(),
			filter.NewFacetSpec(domain.FacetCategory, "Category", repo.ArticleCategories()))
		return printCollection(w, coll, search, facets, "articles",
			[]string{"ID", "Title", "Category", "Author", "Date"},
			func(a domain.Article) []string {
				return []string{strconv.Itoa(a.ID), a.Title, a.Category, a.Author, a.Date}
			})
	case "institutes":
		coll := filter.NewCollection(repo.Institutes(),
			filter.NewFacetSpec(domain.FacetRegion, "Region", repo.InstituteRegions()),
			filter.NewFacetSpec(domain.FacetType, "Type", repo.InstituteTypes()))
		return printCollection(w, coll, search, facets, "institutes",
			[]string{"Short", "Name", "Location", "Region", "Type"},
			func(i domain.Institute) []string {
				return []string{i.ShortName, i.Name, i.Location, i.Region, i.Type}
			})
	case "varieties":
		set, err := repo.Varieties(preset)
		if err != nil {
			return err
		}
		coll := filter.NewCollection(set.Items,
			filter.NewFacetSpec(domain.FacetCategory, "Category", set.Categories))
		return printCollection(w, coll, search, facets, "varieties",
			[]string{"Name", "Category", "Maturity", "Demand", "Rating"},
			func(v domain.Variety) []string {
				return []string{v.Name, v.Category, v.MaturityPeriod, v.MarketDemand, strconv.FormatFloat(v.CommercialRating, 'f', 1, 64)}
			})
	}
	return fmt.Errorf("unknown listing %q (have %s)", kind, strings.Join(listKinds, ", "))
}

func printCollection[T filter.Item](w io.Writer, coll *filter.Collection[T], search string, facets map[string]string, noun string, headers []string, row func(T) []string) error {
	for name, value := range facets {
		if err := selectFacet(coll, name, value); err != nil {
			return err
		}
	}
	coll.SetText(search)

	view := coll.View()
	if len(view) == 0 {
		_, err := fmt.Fprintf(w, "No %s found matching your criteria.\n", noun)
		return err
	}

	rows := make([][]string, len(view))
	for i, item := range view {
		rows[i] = row(item)
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintf(w, "%s\nShowing %d %s\n", t.Render(), len(view), noun)
	return err
}

// selectFacet applies one facet value, matching option names case-insensitively
func selectFacet[T filter.Item](coll *filter.Collection[T], name, value string) error {
	specs := coll.Facets()
	i := slices.IndexFunc(specs, func(s filter.FacetSpec) bool { return s.Name == name })
	if i < 0 {
		names := make([]string, len(specs))
		for k, s := range specs {
			names[k] = s.Name
		}
		return fmt.Errorf("unknown facet %q (have %s)", name, strings.Join(names, ", "))
	}
	for _, opt := range specs[i].Options {
		if strings.EqualFold(opt, value) {
			coll.SetFacet(name, opt)
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q (have %s)", name, value, strings.Join(specs[i].Options, ", "))
}
