package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/walteh/presetsort/pkg/log"
	"github.com/walteh/presetsort/pkg/operation"
	"github.com/walteh/presetsort/pkg/status"
)

// 📊 progressObserver shows a spinner while a source is scanned and a
// progress bar while it is filed. With a logger set, every placement is
// printed instead of the bar.
type progressObserver struct {
	logger    *log.Logger
	formatter status.FileFormatter
	dest      string
	mode      operation.Mode

	root    string
	spinner *pterm.SpinnerPrinter
	bar     *pterm.ProgressbarPrinter
}

var _ operation.Observer = (*progressObserver)(nil)

func newProgressObserver(dest string, mode operation.Mode) *progressObserver {
	return &progressObserver{dest: dest, mode: mode, formatter: status.NewDefaultFileFormatter()}
}

func (p *progressObserver) enter(ctx context.Context, root string) {
	if root == p.root {
		return
	}
	p.finish(ctx)
	p.root = root
	if p.logger != nil {
		p.logger.StartRootOperation(ctx, log.RootOperation{
			Source:      root,
			Destination: p.dest,
			Mode:        p.mode.String(),
		})
	}
}

func (p *progressObserver) OnScan(ctx context.Context, root string, found int) {
	p.enter(ctx, root)
	if p.logger != nil {
		p.logger.OnScan(ctx, root, found)
		return
	}
	text := fmt.Sprintf("Scanning %s: %d presets", filepath.Base(root), found)
	if p.spinner == nil {
		p.spinner, _ = pterm.DefaultSpinner.Start(text)
		return
	}
	p.spinner.UpdateText(text)
}

func (p *progressObserver) OnFile(ctx context.Context, ev operation.Event) {
	p.enter(ctx, ev.Root)
	p.stopSpinner()
	if p.logger != nil {
		p.logger.OnFile(ctx, ev)
		return
	}
	if ev.Kind == operation.EventFailed {
		for _, line := range p.failureLines(ev) {
			pterm.Warning.Println(line)
		}
	}
	if p.bar == nil {
		p.bar, _ = pterm.DefaultProgressbar.
			WithTotal(ev.Total).
			WithTitle(filepath.Base(ev.Root)).
			Start()
	}
	if p.bar != nil {
		p.bar.Increment()
	}
}

// failureLines describes what went wrong for a failed file
func (p *progressObserver) failureLines(ev operation.Event) []string {
	var lines []string
	for _, pl := range ev.Placements {
		if pl.Outcome == status.OutcomeFailed {
			lines = append(lines, p.formatter.FormatPlacement(ev.Name, pl)+": "+pl.Err.Error())
		}
	}
	if len(lines) == 0 {
		lines = append(lines, p.formatter.FormatError(ev.Err))
	}
	return lines
}

func (p *progressObserver) stopSpinner() {
	if p.spinner != nil {
		_ = p.spinner.Stop()
		p.spinner = nil
	}
}

// finish closes whatever the current root still has open
func (p *progressObserver) finish(ctx context.Context) {
	p.stopSpinner()
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
	if p.logger != nil && p.root != "" {
		p.logger.EndRootOperation(ctx)
	}
	p.root = ""
}
