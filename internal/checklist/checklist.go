// Package checklist reads and writes todos as markdown task lists:
//
//	- [ ] Buy milk
//	- [x] Write report
//
//	  Q2 numbers,
//	  with charts.
//
// Paragraphs indented under an item become its long description.
package checklist

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Item is one task-list entry.
type Item struct {
	Text    string
	Checked bool
	Details *string
}

var md = goldmark.New(goldmark.WithExtensions(extension.TaskList))

// Parse returns the task-list items of src in document order. List items
// without a checkbox, headings and other blocks are ignored.
func Parse(src []byte) []Item {
	doc := md.Parser().Parse(text.NewReader(src))

	var items []Item
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		li, ok := n.(*ast.ListItem)
		if !ok {
			return ast.WalkContinue, nil
		}
		first := li.FirstChild()
		if first == nil {
			return ast.WalkContinue, nil
		}
		box, ok := first.FirstChild().(*extast.TaskCheckBox)
		if !ok {
			return ast.WalkContinue, nil
		}

		item := Item{
			Text:    strings.TrimSpace(inlineText(first, src, " ")),
			Checked: box.IsChecked,
		}

		var details []string
		for c := first.NextSibling(); c != nil; c = c.NextSibling() {
			if c.Kind() != ast.KindParagraph && c.Kind() != ast.KindTextBlock {
				continue
			}
			if s := strings.TrimSpace(inlineText(c, src, "\n")); s != "" {
				details = append(details, s)
			}
		}
		if len(details) > 0 {
			d := strings.Join(details, "\n\n")
			item.Details = &d
		}

		items = append(items, item)
		return ast.WalkContinue, nil
	})
	return items
}

// inlineText flattens the inline content of n. Soft line breaks become softBreak.
func inlineText(n ast.Node, src []byte, softBreak string) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			switch {
			case v.HardLineBreak():
				b.WriteString("\n")
			case v.SoftLineBreak():
				b.WriteString(softBreak)
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.Label(src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// Render writes items as a markdown task list that Parse reads back.
func Render(items []Item) []byte {
	var b strings.Builder
	for i, item := range items {
		mark := "[ ]"
		if item.Checked {
			mark = "[x]"
		}
		b.WriteString("- " + mark + " " + item.Text + "\n")

		if item.Details == nil || strings.TrimSpace(*item.Details) == "" {
			continue
		}
		b.WriteString("\n")
		for _, line := range strings.Split(strings.TrimSpace(*item.Details), "\n") {
			if strings.TrimSpace(line) == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString("  " + strings.TrimSpace(line) + "\n")
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return []byte(b.String())
}
