package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walteh/presetsort/pkg/config"
)

// previewKeywords is how many keywords the categories command shows per category
const previewKeywords = 5

// newCategoriesCmd creates the categories command
func newCategoriesCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories of the classification table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			cfg := opts.config
			fmt.Fprintf(w, "%s\n\n", cfg)
			for _, cat := range cfg.Categories {
				fmt.Fprintf(w, "  • %s: %s\n", cat.Name, keywordPreview(cat.Keywords))
			}
			for _, sp := range cfg.Special {
				fmt.Fprintf(w, "  • %s: (%s names)\n", sp.Category, sp.Name)
			}
			fmt.Fprintf(w, "  • %s: (everything else)\n", cfg.CatchAll)
			return nil
		},
	}
}

// keywordPreview joins the first few keywords, strict ones in brackets
func keywordPreview(keywords []config.Keyword) string {
	parts := make([]string, 0, previewKeywords)
	for i, kw := range keywords {
		if i == previewKeywords {
			break
		}
		if kw.Strict {
			parts = append(parts, "["+kw.Pattern+"]")
		} else {
			parts = append(parts, kw.Pattern)
		}
	}
	out := strings.Join(parts, ", ")
	if extra := len(keywords) - previewKeywords; extra > 0 {
		out += fmt.Sprintf(", ... (+%d)", extra)
	}
	return out
}
