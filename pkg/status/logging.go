// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent    = 4  // spaces to indent file entries
	nameWidth     = 35 // Base width for filename
	categoryWidth = 15 // Width for category
	statusWidth   = 17 // Width for status text
)

// 🎯 FormatFileOperation formats one placement as an aligned, colored line
func FormatFileOperation(name string, p Placement) string {
	// Determine prefix symbol
	var prefix string
	switch p.Outcome {
	case OutcomeCopied, OutcomeMoved:
		prefix = color.GreenString("✓")
	case OutcomeRenamed:
		prefix = color.YellowString("⟳")
	case OutcomeFailed:
		prefix = color.RedString("✗")
	case OutcomeSkippedDuplicate:
		prefix = color.CyanString("=")
	default:
		prefix = color.HiBlackString("-")
	}

	// Format parts with padding
	namePart := fmt.Sprintf("%-*s", nameWidth, name)
	categoryPart := fmt.Sprintf("%-*s", categoryWidth, p.Category)
	statusPart := fmt.Sprintf("%-*s", statusWidth, p.Outcome)

	// Build final string with indentation
	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		categoryPart,
		statusPart,
	)
}
