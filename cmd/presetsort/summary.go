package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/status"
)

// maxListedErrors is how many per-file errors the summary prints in full
const maxListedErrors = 5

// countRows turns the run counters into table rows
func countRows(c status.Counts) [][]string {
	rows := [][]string{
		{"Presets seen", humanize.Comma(int64(c.FilesSeen))},
		{"Copied", humanize.Comma(int64(c.Copies))},
		{"Moved", humanize.Comma(int64(c.Moves))},
		{"Duplicates skipped", humanize.Comma(int64(c.Duplicates))},
		{"Already present", humanize.Comma(int64(c.AlreadyPresent))},
		{"In several categories", humanize.Comma(int64(c.MultiCategory))},
		{"Renamed on collision", humanize.Comma(int64(c.Renamed))},
	}
	if c.LeftInPlace > 0 {
		rows = append(rows, []string{"Left in place", humanize.Comma(int64(c.LeftInPlace))})
	}
	if c.DeletedFromSource > 0 {
		rows = append(rows, []string{"Removed from source", humanize.Comma(int64(c.DeletedFromSource))})
	}
	rows = append(rows, []string{"Bytes written", humanize.Bytes(uint64(c.BytesPlaced))})
	return rows
}

// categoryRows lists categories by count, largest first, with a bar
func categoryRows(perCategory map[string]int) [][]string {
	names := make([]string, 0, len(perCategory))
	for name := range perCategory {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if perCategory[names[i]] != perCategory[names[j]] {
			return perCategory[names[i]] > perCategory[names[j]]
		}
		return names[i] < names[j]
	})

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		n := perCategory[name]
		rows = append(rows, []string{name, humanize.Comma(int64(n)), strings.Repeat("█", min(n/5, 20))})
	}
	return rows
}

// errorLines formats the first few per-file errors and a count of the rest
func errorLines(errs []status.FileError) []string {
	var lines []string
	for i, fe := range errs {
		if i == maxListedErrors {
			lines = append(lines, fmt.Sprintf("... and %d more", len(errs)-maxListedErrors))
			break
		}
		lines = append(lines, fe.Error())
	}
	return lines
}

// 📋 renderSummary prints the end-of-run report
func renderSummary(w io.Writer, stats *status.Stats, elapsed time.Duration) error {
	pterm.DefaultSection.WithWriter(w).Println("Summary")

	data := pterm.TableData{{"", "count"}}
	data = append(data, countRows(stats.Counts)...)
	data = append(data, []string{"Elapsed", elapsed.Round(time.Millisecond).String()})
	if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render(); err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}

	if len(stats.PerCategory) > 0 {
		pterm.DefaultSection.WithWriter(w).Println("Per category")
		data := pterm.TableData{{"category", "placed", ""}}
		data = append(data, categoryRows(stats.PerCategory)...)
		if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render(); err != nil {
			return errors.Errorf("rendering categories: %w", err)
		}
	}

	if len(stats.Sources) > 1 {
		pterm.DefaultSection.WithWriter(w).Println("Per source")
		data := pterm.TableData{{"source", "seen", "placed", "duplicates", "errors"}}
		for _, src := range stats.Sources {
			data = append(data, []string{
				src.Root,
				humanize.Comma(int64(src.Counts.FilesSeen)),
				humanize.Comma(int64(src.Counts.FilesPlaced)),
				humanize.Comma(int64(src.Counts.Duplicates)),
				humanize.Comma(int64(src.Errors)),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithWriter(w).WithData(data).Render(); err != nil {
			return errors.Errorf("rendering sources: %w", err)
		}
	}

	if len(stats.Errors) > 0 {
		pterm.Error.WithWriter(w).Printfln("%d presets could not be filed:", len(stats.Errors))
		for _, line := range errorLines(stats.Errors) {
			pterm.Fprintln(w, "  "+line)
		}
		return nil
	}

	pterm.Success.WithWriter(w).Println("Done")
	return nil
}
