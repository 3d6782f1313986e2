package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/taskfarm/internal/domain"
)

// Report output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

var titleCaser = cases.Title(language.English)

func writeReport(w io.Writer, format string, report SimulationReport) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case FormatText:
		return writeTextReport(w, report)
	default:
		return fmt.Errorf("%w: unknown format %q (use %s or %s)", domain.ErrInvalidInput, format, FormatJSON, FormatText)
	}
}

func writeTextReport(w io.Writer, report SimulationReport) error {
	st := report.State
	fmt.Fprintf(w, "Ticks: %d (%.1fs simulated)\n", report.Ticks, report.ElapsedSeconds)
	fmt.Fprintf(w, "Weather: %s  Season: %s  Sun energy: %d\n\n",
		titleCaser.String(string(st.Weather)), titleCaser.String(string(st.Season)), st.Balance)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLOT\tCROP\tSTATUS\tPROGRESS")
	for _, p := range st.Plots {
		cropName := "-"
		if p.CropID != "" {
			cropName = titleCaser.String(strings.ReplaceAll(p.CropID, "_", " "))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f%%\n", p.ID, cropName, titleCaser.String(string(p.Status)), p.Progress)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Harvests) > 0 {
		fmt.Fprintln(w, "\nHarvests:")
		for _, id := range sortedKeys(report.Harvests) {
			fmt.Fprintf(w, "  %s: %d\n", titleCaser.String(strings.ReplaceAll(id, "_", " ")), report.Harvests[id])
		}
	}
	if len(report.Events) > 0 {
		fmt.Fprintln(w, "\nEvents:")
		for _, t := range sortedKeys(report.Events) {
			fmt.Fprintf(w, "  %s: %d\n", t, report.Events[t])
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
