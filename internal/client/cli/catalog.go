package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lifeweeks/internal/catalog"
	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/spf13/cobra"
)

type catalogFilter struct {
	categories   []string
	significance []string
	lifeStages   bool
}

func (f *catalogFilter) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.categories, "category", nil, "catalog categories, e.g. technology,science")
	cmd.Flags().StringSliceVar(&f.significance, "significance", []string{"high", "critical"}, "critical, high, medium or low")
	cmd.Flags().BoolVar(&f.lifeStages, "life-stages", true, "include age milestones")
}

// candidates resolves the filter against the user's birthdate and skips
// entries whose title is already on the timeline.
func (a *App) candidates(ctx context.Context, f *catalogFilter) ([]catalog.Entry, error) {
	q := catalog.Query{IncludeLifeStages: f.lifeStages, Today: a.now()}
	for _, s := range f.categories {
		c, err := catalog.ParseCategory(s)
		if err != nil {
			return nil, err
		}
		q.Categories = append(q.Categories, c)
	}
	for _, s := range f.significance {
		sig, err := catalog.ParseSignificance(s)
		if err != nil {
			return nil, err
		}
		q.Significance = append(q.Significance, sig)
	}

	p, events, err := a.snapshot(ctx)
	if err != nil {
		return nil, a.fail("load timeline", err)
	}
	q.Birthdate = p.Birthdate
	for _, e := range events {
		q.ExistingTitles = append(q.ExistingTitles, e.Title)
	}
	return a.catalog.Candidates(q), nil
}

func (a *App) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse and import historical events and life stages",
	}

	var listFilter catalogFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog events from your lifetime not yet on your timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.candidates(cmd.Context(), &listFilter)
			if err != nil {
				return err
			}
			a.println(render.Catalog(entries))
			return nil
		},
	}
	listFilter.bind(list)

	var (
		importFilter catalogFilter
		all          bool
	)
	imp := &cobra.Command{
		Use:   "import [number]...",
		Short: "Import catalog events by their number in 'catalog list', or --all",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("pick entries by number or pass --all")
			}
			entries, err := a.candidates(cmd.Context(), &importFilter)
			if err != nil {
				return err
			}
			selected, err := pick(entries, args, all)
			if err != nil {
				return err
			}
			res := catalog.Import(cmd.Context(), a.remote, selected)
			a.println(render.ImportResult(res))
			return nil
		},
	}
	importFilter.bind(imp)
	imp.Flags().BoolVar(&all, "all", false, "import every listed entry")

	cmd.AddCommand(list, imp)
	return cmd
}

// pick selects entries by 1-based position.
func pick(entries []catalog.Entry, args []string, all bool) ([]catalog.Entry, error) {
	if all {
		return entries, nil
	}
	out := make([]catalog.Entry, 0, len(args))
	for _, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > len(entries) {
			return nil, fmt.Errorf("no catalog entry %q, choose 1-%d", s, len(entries))
		}
		out = append(out, entries[n-1])
	}
	return out, nil
}
