package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/catalog"
	"github.com/dmitrijs2005/lifeweeks/internal/client/render"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"github.com/spf13/cobra"
)

func (a *App) eventCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events"},
		Short:   "Manage life events",
	}
	cmd.AddCommand(a.eventAddCmd(), a.eventListCmd(), a.eventEditCmd(), a.eventRmCmd())
	return cmd
}

func categoryNames() string {
	names := make([]string, 0, len(timeline.Categories()))
	for _, c := range timeline.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func (a *App) eventAddCmd() *cobra.Command {
	var (
		title, date, category, color, description string
		notify, describe                          bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an event; missing title or date are prompted for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if title == "" {
				if title, err = a.prompt("Event title"); err != nil {
					return err
				}
			}

			d := catalog.EventDraft{Title: title, Color: color, NotifyOnAnniversary: notify, Description: description}
			if date == "" {
				d.Date, err = a.promptDate("Event date")
			} else {
				d.Date, err = parseDate(date)
			}
			if err != nil {
				return err
			}
			if d.Category, err = timeline.ParseCategory(category); err != nil {
				return fmt.Errorf("%w, choose one of: %s", err, categoryNames())
			}
			if describe && description == "" {
				if d.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
					return err
				}
			}

			e, err := a.remote.CreateEvent(cmd.Context(), d)
			if err != nil {
				return a.fail("create event", err)
			}
			render.Success(a.out, "Added %q in week %d (id %s)", e.Title, e.WeekNumber, e.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&title, "title", "t", "", "event title")
	f.StringVarP(&date, "date", "d", "", "event date, YYYY-MM-DD")
	f.StringVar(&category, "category", timeline.Personal.String(), "one of: "+categoryNames())
	f.StringVar(&color, "color", "", "hex colour, defaults to the category colour")
	f.StringVar(&description, "description", "", "description")
	f.BoolVarP(&describe, "describe", "m", false, "type a multi-line description")
	f.BoolVar(&notify, "notify", false, "remind me on every anniversary")
	return cmd
}

func (a *App) eventListCmd() *cobra.Command {
	var categories []string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List events by date",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats, err := timeline.ParseCategories(categories)
			if err != nil {
				return err
			}
			events, err := a.remote.Events(cmd.Context())
			if err != nil {
				return a.fail("list events", err)
			}
			a.println(render.Events(timeline.FilterByCategory(events, cats)))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "only these categories")
	return cmd
}

func (a *App) eventEditCmd() *cobra.Command {
	var (
		title, date, category, color, description string
		notify                                    bool
	)
	cmd := &cobra.Command{
		Use:   "edit <event-id>",
		Short: "Change the given fields of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			req := &api.UpdateEventRequest{ID: args[0]}
			if f.Changed("title") {
				req.Title = &title
			}
			if f.Changed("description") {
				req.Description = &description
			}
			if f.Changed("color") {
				req.Color = &color
			}
			if f.Changed("notify") {
				req.NotifyOnAnniversary = &notify
			}
			if f.Changed("date") {
				d, err := parseDate(date)
				if err != nil {
					return err
				}
				req.Date = &d
			}
			if f.Changed("category") {
				c, err := timeline.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("%w, choose one of: %s", err, categoryNames())
				}
				req.Category = &c
			}

			e, err := a.remote.UpdateEvent(cmd.Context(), req)
			if err != nil {
				return a.fail("update event", err)
			}
			render.Success(a.out, "Updated %q, now in week %d", e.Title, e.WeekNumber)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&title, "title", "t", "", "event title")
	f.StringVarP(&date, "date", "d", "", "event date, YYYY-MM-DD")
	f.StringVar(&category, "category", "", "one of: "+categoryNames())
	f.StringVar(&color, "color", "", "hex colour, empty for the category colour")
	f.StringVar(&description, "description", "", "description")
	f.BoolVar(&notify, "notify", false, "remind me on every anniversary")
	return cmd
}

func (a *App) eventRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <event-id>",
		Aliases: []string{"delete"},
		Short:   "Delete an event and its attachments",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.remote.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return a.fail("delete event", err)
			}
			render.Success(a.out, "Deleted event %s", args[0])
			return nil
		},
	}
}
