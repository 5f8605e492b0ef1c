// Package markdown provides a block-oriented Markdown document builder.
//
// A Builder accumulates rendered blocks (paragraphs, headings, lists,
// tables) and joins them with blank lines on finalization. Inline emphasis
// helpers wrap text in standard Markdown markers.
package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alignment controls how table cells are padded within their column.
type Alignment int

// AlignLeft, AlignCenter, and AlignRight enumerate the table column alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// minColumnWidth keeps alignment marker cells valid (":-:" needs 3 runes).
const minColumnWidth = 3

// Column describes one table column: its header title and cell alignment.
type Column struct {
	Title     string
	Alignment Alignment
}

// Builder accumulates Markdown blocks and joins them into a document.
// The zero value is ready to use.
type Builder struct {
	blocks []string
}

// NewBuilder creates a new empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Paragraph appends a raw paragraph block.
func (b *Builder) Paragraph(text string) {
	b.blocks = append(b.blocks, text)
}

// Paragraphs appends one paragraph block per entry, in order.
func (b *Builder) Paragraphs(texts []string) {
	for _, t := range texts {
		b.Paragraph(t)
	}
}

// Heading appends a heading block. Levels outside 1-3 are clamped.
func (b *Builder) Heading(level int, text string) {
	if level < 1 {
		level = 1
	}
	if level > 3 {
		level = 3
	}
	b.blocks = append(b.blocks, strings.Repeat("#", level)+" "+text)
}

// OrderedList appends an ordered list block, numbered from 1.
func (b *Builder) OrderedList(items []string) {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, item))
	}
	b.blocks = append(b.blocks, strings.Join(lines, "\n"))
}

// UnorderedList appends an unordered list block.
func (b *Builder) UnorderedList(items []string) {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	b.blocks = append(b.blocks, strings.Join(lines, "\n"))
}

// Table appends a pipe-delimited table block with an alignment marker row.
//
// The effective column count is the larger of len(columns) and the longest
// row; missing column definitions default to an empty left-aligned header,
// and missing cells in short rows render as empty strings. Every cell and
// header is padded to the widest value in its column (minimum width 3).
func (b *Builder) Table(columns []Column, rows [][]string) {
	count := len(columns)
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}

	cols := make([]Column, count)
	copy(cols, columns)

	widths := make([]int, count)
	for i, col := range cols {
		widths[i] = minColumnWidth
		if w := utf8.RuneCountInString(col.Title); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var lines []string

	header := make([]string, count)
	markers := make([]string, count)
	for i, col := range cols {
		header[i] = pad(col.Title, widths[i], col.Alignment)
		markers[i] = marker(widths[i], col.Alignment)
	}
	lines = append(lines, tableRow(header), tableRow(markers))

	for _, row := range rows {
		cells := make([]string, count)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i], cols[i].Alignment)
		}
		lines = append(lines, tableRow(cells))
	}

	b.blocks = append(b.blocks, strings.Join(lines, "\n"))
}

// String joins the accumulated blocks with a blank line between each.
func (b *Builder) String() string {
	return strings.Join(b.blocks, "\n\n")
}

// tableRow encloses cells in " | " separators.
func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |"
}

// marker renders the alignment marker cell for a column of the given width.
func marker(width int, align Alignment) string {
	switch align {
	case AlignRight:
		return strings.Repeat("-", width-1) + ":"
	case AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return ":" + strings.Repeat("-", width-1)
	}
}

// pad fills text with spaces up to width according to the alignment:
// right-aligned text is left-padded, left-aligned text right-padded, and
// centered text splits the remainder ceil-left / floor-right.
func pad(text string, width int, align Alignment) string {
	extra := width - utf8.RuneCountInString(text)
	if extra <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", extra) + text
	case AlignCenter:
		left := (extra + 1) / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", extra-left)
	default:
		return text + strings.Repeat(" ", extra)
	}
}

// Bold wraps non-empty text in bold markers.
func Bold(text string) string {
	return wrap(text, "**")
}

// Italic wraps non-empty text in italic markers.
func Italic(text string) string {
	return wrap(text, "_")
}

// BoldItalic wraps non-empty text in bold-italic markers.
func BoldItalic(text string) string {
	return wrap(text, "***")
}

// Strikethrough wraps non-empty text in strikethrough markers.
func Strikethrough(text string) string {
	return wrap(text, "~~")
}

// wrap surrounds text with the given marker; empty input yields empty
// output so no markup is emitted around nothing.
func wrap(text, marker string) string {
	if text == "" {
		return ""
	}
	return marker + text + marker
}
