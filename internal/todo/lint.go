package todo

import (
	"strings"
	"unicode/utf8"
)

// LintInput contains parameters for linting a short description.
type LintInput struct {
	ShortDesc string
	Strict    bool // reject blank descriptions
}

// LintResult contains the results of linting a short description.
type LintResult struct {
	Valid bool
	Blank bool
	Chars int
}

// Lint checks a short description. Blank descriptions are accepted unless Strict is set.
func Lint(input LintInput) *LintResult {
	result := &LintResult{
		Valid: true,
		Chars: utf8.RuneCountInString(input.ShortDesc),
		Blank: strings.TrimSpace(input.ShortDesc) == "",
	}
	if input.Strict && result.Blank {
		result.Valid = false
	}
	return result
}
