package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"face-gallery/internal/drive"
	"face-gallery/internal/gallery"
	"face-gallery/internal/web"

	"github.com/spf13/cobra"
)

var (
	exportFilter string
	exportShown  int
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write one gallery page as a self-contained HTML file",
	Long: `Renders the gallery for a single filter and card count and writes it as a
standalone HTML document. Thumbnails still load from Google Drive and fall back to
plain links when they fail.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List known people with their image counts",
	Args:  cobra.NoArgs,
	RunE:  runPeople,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFilter, "filter", "f", "", "case-insensitive name filter")
	exportCmd.Flags().IntVarP(&exportShown, "shown", "n", gallery.BatchSize, "number of cards, a multiple of the batch size")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "gallery.html", "output file, - for stdout")
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	state := gallery.ParseState(exportFilter, fmt.Sprint(exportShown))
	page := gallery.Render(cat, drive.NewURLs(cfg.Drive.Host), state)

	lookup := cfg.Data.LookupImage
	if lookup != "" && web.CheckLookupImage(lookup) != nil {
		lookup = ""
	}

	view, err := web.NewPageView(page, cat.Directory.Names(), cat.Summary(), false, lookup).Inline()
	if err != nil {
		return fmt.Errorf("failed to prepare page: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportOut, err)
		}
		defer f.Close()
		w = f
	}

	if err := web.WritePage(w, view); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	if exportOut == "-" {
		return nil
	}
	slog.Info("gallery exported",
		"out", exportOut,
		"filter", state.Filter,
		"threshold", state.Threshold,
		"rendered", page.Rendered(),
		"more_available", page.ShowMore,
	)
	return nil
}

func runPeople(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PERSON\tIMAGES")
	for _, p := range cat.Counts() {
		fmt.Fprintf(tw, "%s\t%d\n", p.Name, p.Files)
	}
	return tw.Flush()
}
