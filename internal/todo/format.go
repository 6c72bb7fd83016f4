package todo

import (
	"regexp"
	"strings"
	"time"
)

// EmptyMessage is the single line shown when there is nothing to list.
const EmptyMessage = "No todos to show"

// TimeLayout is the fixed, locale-independent layout for creation timestamps.
const TimeLayout = "2006-01-02 15:04"

// Completion indicators.
const (
	MarkDone    = "[x]"
	MarkPending = "[ ]"
)

// whitespaceRegex matches one or more whitespace characters
var whitespaceRegex = regexp.MustCompile(`\s+`)

// FormatOptions controls how a task is rendered as a line.
type FormatOptions struct {
	ShowCreated bool
}

// Mark returns the completion indicator for completed.
func Mark(completed bool) string {
	if completed {
		return MarkDone
	}
	return MarkPending
}

// OneLine trims s and collapses internal whitespace (including newlines) to single spaces.
func OneLine(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// FormatTime formats t in UTC using TimeLayout.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Label is the short description as shown in prompts and listings.
func Label(t Task) string {
	return OneLine(t.ShortDesc)
}

// Format renders t as a single display line: indicator, description and,
// optionally, the creation time.
func Format(t Task, opts FormatOptions) string {
	var b strings.Builder
	b.WriteString(Mark(t.Completed))
	b.WriteByte(' ')
	b.WriteString(Label(t))
	if opts.ShowCreated {
		b.WriteString(" (")
		b.WriteString(FormatTime(t.CreatedAt))
		b.WriteByte(')')
	}
	return b.String()
}
