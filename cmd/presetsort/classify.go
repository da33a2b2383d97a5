package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/classify"
	"github.com/walteh/presetsort/pkg/status"
)

// newClassifyCmd creates the classify command
func newClassifyCmd(opts *rootOpts) *cobra.Command {
	var explain bool
	var fromList string

	cmd := &cobra.Command{
		Use:   "classify [NAME...]",
		Short: "Show the categories filenames would be filed under",
		Long: `Classify runs filenames through the classification table without touching
any file. Names can be given as arguments or read from a list written by
"presetsort list --output". With several names a distribution summary follows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := append([]string(nil), args...)
			if fromList != "" {
				f, err := os.Open(fromList)
				if err != nil {
					return errors.Errorf("opening %s: %w", fromList, err)
				}
				defer f.Close()
				listed, err := readList(f)
				if err != nil {
					return err
				}
				names = append(names, listed...)
			}
			if len(names) == 0 {
				return errors.Errorf("no filenames given, pass names or --from-list")
			}

			w := cmd.OutOrStdout()
			for _, name := range names {
				if explain {
					printExplanation(w, opts.classifier.Explain(name))
					continue
				}
				cats, via := opts.classifier.Resolve(name)
				fmt.Fprintf(w, "%s → %s %s\n", name, status.FormatCategories(cats), color.New(color.Faint).Sprintf("(%s)", via))
			}

			if len(names) > 1 {
				printDistribution(w, summarize(opts.classifier, names))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "show the normalized name and the keyword behind each category")
	cmd.Flags().StringVarP(&fromList, "from-list", "f", "", "read names from a list file")

	return cmd
}

func printExplanation(w io.Writer, exp *classify.Explanation) {
	fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(exp.Filename))
	fmt.Fprintf(w, "  stem:       %s\n", exp.Stem)
	fmt.Fprintf(w, "  normalized: %s\n", exp.Normalized)
	for _, m := range exp.Matches {
		kind := "keyword"
		if m.Keyword.Strict {
			kind = "strict keyword"
		}
		fmt.Fprintf(w, "  %-12s %s %q\n", m.Category+":", kind, m.Keyword.Pattern)
	}
	if exp.SpecialRule != "" {
		fmt.Fprintf(w, "  special:    %s\n", exp.SpecialRule)
	}
	fmt.Fprintf(w, "  result:     %s (%s)\n", status.FormatCategories(exp.Categories), exp.Via)
}

// distribution aggregates classification results for a batch of names
type distribution struct {
	Total         int
	PerCategory   map[string]int
	Uncategorized []string
	Multi         []string
}

func summarize(c *classify.Classifier, names []string) distribution {
	d := distribution{Total: len(names), PerCategory: map[string]int{}}
	for _, name := range names {
		cats, via := c.Resolve(name)
		if via == classify.ViaCatchAll {
			d.Uncategorized = append(d.Uncategorized, name)
			continue
		}
		if len(cats) > 1 {
			d.Multi = append(d.Multi, name)
		}
		for _, cat := range cats {
			d.PerCategory[cat]++
		}
	}
	return d
}

func printDistribution(w io.Writer, d distribution) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 50))

	cats := make([]string, 0, len(d.PerCategory))
	for cat := range d.PerCategory {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if d.PerCategory[cats[i]] != d.PerCategory[cats[j]] {
			return d.PerCategory[cats[i]] > d.PerCategory[cats[j]]
		}
		return cats[i] < cats[j]
	})
	for _, cat := range cats {
		fmt.Fprintf(w, "  %-20s %5d\n", cat, d.PerCategory[cat])
	}

	categorized := d.Total - len(d.Uncategorized)
	pct := 0.0
	if d.Total > 0 {
		pct = float64(categorized) / float64(d.Total) * 100
	}
	fmt.Fprintf(w, "\n  categorized:   %d (%.1f%%)\n", categorized, pct)
	fmt.Fprintf(w, "  uncategorized: %d\n", len(d.Uncategorized))
	fmt.Fprintf(w, "  multi:         %d\n", len(d.Multi))
}
