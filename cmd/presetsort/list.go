package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/operation"
)

// newListCmd creates the list command
func newListCmd(opts *rootOpts) *cobra.Command {
	var output string
	var all bool

	cmd := &cobra.Command{
		Use:   "list DIR",
		Short: "List preset names found under a folder",
		Long: `List walks DIR recursively and prints the sorted names of every preset in it.
With --output the names are written to a text file with a short header, which
classify --from-list can read back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			dir := args[0]

			match := opts.classifier.HasSupportedExtension
			if all {
				match = nil
			}
			names, err := listPresets(ctx, dir, match)
			if err != nil {
				return err
			}

			if output == "" {
				return writeList(cmd.OutOrStdout(), dir, names, time.Now())
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			if err := writeList(f, dir, names, time.Now()); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Errorf("closing %s: %w", output, err)
			}
			pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Saved %d names to %s", len(names), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the list to this file")
	cmd.Flags().BoolVar(&all, "all", false, "list every file, not only supported presets")

	return cmd
}

// listPresets returns the sorted base names of the files under dir
func listPresets(ctx context.Context, dir string, match func(string) bool) ([]string, error) {
	files, walkErrs, err := operation.Discover(ctx, dir, operation.DiscoverOptions{Match: match})
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", dir, err)
	}
	for _, fe := range walkErrs {
		pterm.Warning.Println(fe.Error())
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	sort.Strings(names)
	return names, nil
}

// writeList writes names under a commented header
func writeList(w io.Writer, dir string, names []string, now time.Time) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Presets\n")
	fmt.Fprintf(bw, "# Folder: %s\n", dir)
	fmt.Fprintf(bw, "# Total: %d presets\n", len(names))
	fmt.Fprintf(bw, "# Date: %s\n", now.Format(time.DateTime))
	fmt.Fprintf(bw, "# %s\n\n", strings.Repeat("=", 60))
	for _, name := range names {
		fmt.Fprintln(bw, name)
	}
	if err := bw.Flush(); err != nil {
		return errors.Errorf("writing list: %w", err)
	}
	return nil
}

// readList reads names written by writeList, or any file with one name per
// line. Blank lines and lines starting with # are skipped.
func readList(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading list: %w", err)
	}
	return names, nil
}
