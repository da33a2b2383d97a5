package main

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/presetsort/pkg/log"
	"github.com/walteh/presetsort/pkg/operation"
)

// organizeFlags are bound to viper so PRESETSORT_MODE, PRESETSORT_WORKERS and
// friends work as well
var organizeFlags = []string{"mode", "ignore", "workers", "index-destination", "yes", "verbose"}

// newOrganizeCmd creates the organize command
func newOrganizeCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize SOURCE... DESTINATION",
		Short: "File presets from one or more folders into category folders",
		Long: `Organize walks every SOURCE folder, classifies each preset by name and files
it under DESTINATION/<category>/. A preset matching several categories is
filed in each of them.

Modes:
  copy  sources are never modified
  move  files are moved; files that stay uncategorized are left where they are
  auto  copy, unless the only SOURCE is DESTINATION's catch-all folder, in
        which case the folder is re-verified with move`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, opts, args[:len(args)-1], args[len(args)-1])
		},
	}

	cmd.Flags().StringP("mode", "m", "auto", "auto, copy or move")
	cmd.Flags().StringSlice("ignore", nil, "doublestar globs, relative to each source, to skip")
	cmd.Flags().IntP("workers", "w", 0, "concurrent hashing workers, CPU count when 0")
	cmd.Flags().Bool("index-destination", false, "treat content already anywhere in the destination as filed")
	cmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolP("verbose", "v", false, "print one line per placement instead of a progress bar")

	for _, name := range organizeFlags {
		_ = opts.v.BindPFlag(viperKey(name), cmd.Flags().Lookup(name))
	}

	return cmd
}

func viperKey(flag string) string {
	return strings.ReplaceAll(flag, "-", "_")
}

func runOrganize(cmd *cobra.Command, opts *rootOpts, sources []string, dest string) error {
	ctx := cmd.Context()
	v := opts.v

	mode, err := operation.ParseMode(v.GetString(viperKey("mode")))
	if err != nil {
		return err
	}

	ignore := append(append([]string(nil), opts.config.Ignore...), v.GetStringSlice(viperKey("ignore"))...)

	progress := newProgressObserver(dest, mode)
	if v.GetBool(viperKey("verbose")) {
		progress.logger = log.New(cmd.OutOrStdout(), zerolog.GlobalLevel())
	}

	org, err := operation.New(operation.Options{
		Classifier: opts.classifier,
		Ignore:     ignore,
		Workers:    v.GetInt(viperKey("workers")),
		Observer:   progress,
	})
	if err != nil {
		return errors.Errorf("creating organizer: %w", err)
	}

	effective, err := previewMode(sources, dest, mode, opts.classifier.CatchAll())
	if err != nil {
		return err
	}
	progress.mode = effective

	printPlan(sources, dest, effective, opts.classifier.Extensions())
	if !v.GetBool(viperKey("yes")) {
		ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show("Continue?")
		if err != nil {
			return errors.Errorf("reading confirmation: %w", err)
		}
		if !ok {
			pterm.Warning.Println("Cancelled, nothing was changed.")
			return nil
		}
	}

	req := operation.Request{Sources: sources, Destination: dest, Mode: mode}

	if v.GetBool(viperKey("index-destination")) {
		spinner, _ := pterm.DefaultSpinner.Start("Indexing destination")
		reg, err := org.IndexDestination(ctx, dest, sources...)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			return errors.Errorf("indexing destination: %w", err)
		}
		pterm.Info.Printfln("Indexed %d presets already in %s", reg.Len(), dest)
		req.Registry = reg
	}

	start := time.Now()
	stats, runErr := org.Organize(ctx, req)
	progress.finish(ctx)

	if stats != nil {
		if err := renderSummary(cmd.OutOrStdout(), stats, time.Since(start)); err != nil {
			return err
		}
	}
	if runErr != nil {
		return errors.Errorf("organizing: %w", runErr)
	}
	return nil
}

// previewMode returns the mode a request will run with, for display
func previewMode(sources []string, dest string, mode operation.Mode, catchAll string) (operation.Mode, error) {
	if mode != operation.ModeAuto {
		return mode, nil
	}
	abs := make([]string, 0, len(sources))
	for _, src := range sources {
		a, err := filepath.Abs(src)
		if err != nil {
			return mode, errors.Errorf("resolving %s: %w", src, err)
		}
		abs = append(abs, a)
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return mode, errors.Errorf("resolving %s: %w", dest, err)
	}
	return operation.DetectMode(abs, absDest, catchAll), nil
}

func printPlan(sources []string, dest string, mode operation.Mode, extensions []string) {
	pterm.DefaultSection.Println("Plan")
	for _, src := range sources {
		pterm.Printfln("  📁 Source:      %s", src)
	}
	pterm.Printfln("  📁 Destination: %s", dest)
	pterm.Printfln("  📄 Extensions:  %s", strings.Join(extensions, ", "))
	switch mode {
	case operation.ModeMove:
		pterm.Warning.Println("Files will be MOVED. Files that match no category stay where they are.")
	default:
		pterm.Info.Printfln("Files will be copied (%s). Your originals stay untouched.", mode)
	}
}
