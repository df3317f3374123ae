package cli

import (
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"github.com/spf13/cobra"
)

func (a *App) gridCmd() *cobra.Command {
	var (
		zoom       string
		categories []string
	)
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Draw your life as a grid of weeks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			z, err := timeline.ParseZoom(zoom)
			if err != nil {
				return err
			}
			cats, err := timeline.ParseCategories(categories)
			if err != nil {
				return err
			}
			p, events, err := a.snapshot(cmd.Context())
			if err != nil {
				return a.fail("load timeline", err)
			}
			a.println(render.Grid(timeline.BuildGrid(timeline.GridInput{
				Birthdate:  p.Birthdate,
				Today:      a.now(),
				Zoom:       z,
				Events:     events,
				Categories: cats,
			})))
			return nil
		},
	}
	cmd.Flags().StringVarP(&zoom, "zoom", "z", timeline.ZoomYear.String(), "week, month, quarter or year")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "show only weeks with events in these categories")
	return cmd
}

func (a *App) weekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [number]",
		Short: "Show the events of one life week, the current one by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, events, err := a.snapshot(cmd.Context())
			if err != nil {
				return a.fail("load timeline", err)
			}
			week := timeline.WeeksBetween(p.Birthdate, a.now())
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid week number %q", args[0])
				}
				week = n
			}
			a.println(render.Week(p.Birthdate, week, timeline.EventsInWeek(events, p.Birthdate, week)))
			return nil
		},
	}
}

func (a *App) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show life statistics and insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, events, err := a.snapshot(cmd.Context())
			if err != nil {
				return a.fail("load timeline", err)
			}
			a.println(render.Statistics(timeline.ComputeStatistics(p.Birthdate, events, a.now())))
			return nil
		},
	}
}
