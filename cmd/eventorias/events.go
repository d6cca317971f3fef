package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/eventorias-backend/internal/client"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

func newEventsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List, watch and create events",
	}
	cmd.AddCommand(
		newEventsListCmd(opts),
		newEventsShowCmd(opts),
		newEventsWatchCmd(opts),
		newEventsCreateCmd(opts),
	)
	return cmd
}

func newEventsListCmd(opts *options) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			views, err := e.client.ListEvents(cmd.Context(), search)
			if err != nil {
				return err
			}
			events := make([]domain.Event, len(views))
			for i, v := range views {
				events[i] = v.Event
			}
			return printEvents(cmd.OutOrStdout(), events)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "Only events whose title contains this text")
	return cmd
}

func newEventsShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			v, err := e.client.GetEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printEvent(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newEventsWatchCmd(opts *options) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the event list every time it changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := opts.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			f, err := e.client.WatchEvents(cmd.Context(), search)
			if err != nil {
				return err
			}
			defer f.Close() //nolint:errcheck

			out := cmd.OutOrStdout()
			for events := range f.Snapshots() {
				fmt.Fprintf(out, "--- %d event(s)\n", len(events))
				if err := printEvents(out, events); err != nil {
					return err
				}
			}

			err = f.Err()
			if errors.Is(err, client.ErrStreamEnded) {
				log.Warn().Msg("server closed the stream")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "Only events whose title contains this text")
	return cmd
}

func newEventsCreateCmd(opts *options) *cobra.Command {
	var req client.CreateEventRequest
	var image, attachment string
	var wait bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new event",
		RunE: func(cmd *cobra.Command, _ []string) error {
			imgFile, closeImg, err := openFile(image)
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}
			defer closeImg()
			attFile, closeAtt, err := openFile(attachment)
			if err != nil {
				return fmt.Errorf("open attachment: %w", err)
			}
			defer closeAtt()
			req.Image, req.Attachment = imgFile, attFile

			e, err := opts.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			ev, err := e.client.CreateEvent(cmd.Context(), req, wait)
			if err != nil {
				return err
			}

			log.Debug().Str("event_id", ev.ID).Bool("waited", wait).Msg("event created")
			fmt.Fprintf(cmd.OutOrStdout(), "Event created: %s - %s\n", ev.ID, ev.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Title (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.Flags().StringVar(&req.Date, "date", "", "Date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&req.Time, "time", "", "Time, HH:MM (required)")
	cmd.Flags().StringVar(&req.Address, "address", "", "Street address (required)")
	cmd.Flags().StringVar(&image, "image", "", "Path to the cover image")
	cmd.Flags().StringVar(&attachment, "attachment", "", "Path to a photo attachment")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the event is stored")
	for _, f := range []string{"title", "date", "time", "address"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func printEvents(out io.Writer, events []domain.Event) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDATE\tTIME\tTITLE\tADDRESS")
	for _, ev := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", ev.ID, ev.Date, ev.Time, ev.Title, ev.Address)
	}
	return tw.Flush()
}

func printEvent(out io.Writer, v *client.EventView) {
	fmt.Fprintf(out, "%s\n\n", v.Title)
	fmt.Fprintf(out, "When:    %s %s\n", v.Date, v.Time)
	fmt.Fprintf(out, "Where:   %s\n", v.Address)
	if v.Location != nil {
		fmt.Fprintf(out, "Coords:  %.6f, %.6f\n", v.Location.Latitude, v.Location.Longitude)
	}
	if v.MapURL != "" {
		fmt.Fprintf(out, "Map:     %s\n", v.MapURL)
	}
	if v.ImageURL != nil {
		fmt.Fprintf(out, "Image:   %s\n", *v.ImageURL)
	}
	if v.AttachmentURL != nil {
		fmt.Fprintf(out, "Photo:   %s\n", *v.AttachmentURL)
	}
	if v.Description != "" {
		fmt.Fprintf(out, "\n%s\n", v.Description)
	}
}
