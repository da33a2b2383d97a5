package status

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileFormatter defines how placements and progress should be formatted
type FileFormatter interface {
	// FormatPlacement formats one placement outcome
	FormatPlacement(name string, p Placement) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatPlacement formats a placement with emojis
func (f *DefaultFileFormatter) FormatPlacement(name string, p Placement) string {
	target := filepath.Join(p.Category, filepath.Base(p.Path))
	switch p.Outcome {
	case OutcomeCopied:
		return fmt.Sprintf("✨ Copied %s → %s", name, target)
	case OutcomeMoved:
		return fmt.Sprintf("🚚 Moved %s → %s", name, target)
	case OutcomeRenamed:
		return fmt.Sprintf("📝 Renamed %s → %s", name, target)
	case OutcomePresent, OutcomePresentRenamed:
		return fmt.Sprintf("👍 Present %s in %s", name, target)
	case OutcomeSkippedDuplicate:
		return fmt.Sprintf("♻️  Duplicate %s", name)
	case OutcomeFailed:
		return fmt.Sprintf("❌ Failed %s in %s", name, p.Category)
	default:
		return fmt.Sprintf("❔ %s", name)
	}
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

// FormatCategories joins a category set for display
func FormatCategories(categories []string) string {
	if len(categories) == 0 {
		return "-"
	}
	return strings.Join(categories, ", ")
}
