package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BlocksJoinedWithBlankLine(t *testing.T) {
	b := NewBuilder()
	b.Heading(1, "Title")
	b.Paragraph("First paragraph.")
	b.Paragraph("Second paragraph.")

	assert.Equal(t, "# Title\n\nFirst paragraph.\n\nSecond paragraph.", b.String())
}

func TestBuilder_Headings(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected string
	}{
		{"level 1", 1, "# Title"},
		{"level 2", 2, "## Title"},
		{"level 3", 3, "### Title"},
		{"clamped low", 0, "# Title"},
		{"clamped high", 5, "### Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			b.Heading(tt.level, "Title")
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestBuilder_Paragraphs(t *testing.T) {
	b := NewBuilder()
	b.Paragraphs([]string{"one", "two", "three"})

	assert.Equal(t, "one\n\ntwo\n\nthree", b.String())
}

func TestBuilder_OrderedList(t *testing.T) {
	b := NewBuilder()
	b.OrderedList([]string{"first", "second", "third"})

	assert.Equal(t, "1. first\n2. second\n3. third", b.String())
}

func TestBuilder_UnorderedList(t *testing.T) {
	b := NewBuilder()
	b.UnorderedList([]string{"alpha", "beta"})

	assert.Equal(t, "- alpha\n- beta", b.String())
}

func TestBuilder_Table(t *testing.T) {
	b := NewBuilder()
	b.Table(
		[]Column{
			{Title: "Id", Alignment: AlignRight},
			{Title: "Area", Alignment: AlignLeft},
			{Title: "Action", Alignment: AlignLeft},
		},
		[][]string{
			{"0", "Firelink Shrine", "**Light** bonfire"},
		},
	)

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "|  Id | Area            | Action            |", lines[0])
	assert.Equal(t, "| --: | :-------------- | :---------------- |", lines[1])
	assert.Equal(t, "|   0 | Firelink Shrine | **Light** bonfire |", lines[2])
}

func TestBuilder_Table_MinimumColumnWidth(t *testing.T) {
	b := NewBuilder()
	b.Table(
		[]Column{{Title: "A"}, {Title: "B", Alignment: AlignCenter}},
		[][]string{{"x", "y"}},
	)

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "| A   |  B  |", lines[0])
	assert.Equal(t, "| :-- | :-: |", lines[1])
	assert.Equal(t, "| x   |  y  |", lines[2])
}

func TestBuilder_Table_ReconcilesColumnCount(t *testing.T) {
	b := NewBuilder()
	b.Table(
		[]Column{{Title: "Name"}},
		[][]string{
			{"bonfire", "lit"},
			{"shortcut"},
		},
	)

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 4)
	// Second column comes from the longest row: empty left-aligned header.
	assert.Equal(t, "| Name     |     |", lines[0])
	assert.Equal(t, "| :------- | :-- |", lines[1])
	assert.Equal(t, "| bonfire  | lit |", lines[2])
	// Missing cell in the short row renders as an empty string.
	assert.Equal(t, "| shortcut |     |", lines[3])
}

func TestBuilder_Table_CenterPaddingSplit(t *testing.T) {
	b := NewBuilder()
	b.Table(
		[]Column{{Title: "Value", Alignment: AlignCenter}},
		[][]string{{"ab"}},
	)

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, 3)
	// Remainder of 3 splits ceil-left (2) / floor-right (1).
	assert.Equal(t, "|   ab  |", lines[2])
}

func TestEmphasis(t *testing.T) {
	assert.Equal(t, "**Estus Flask**", Bold("Estus Flask"))
	assert.Equal(t, "_optional_", Italic("optional"))
	assert.Equal(t, "***Iudex Gundyr***", BoldItalic("Iudex Gundyr"))
	assert.Equal(t, "~~No upgrades~~", Strikethrough("No upgrades"))
}

func TestEmphasis_EmptyInputYieldsEmptyOutput(t *testing.T) {
	assert.Empty(t, Bold(""))
	assert.Empty(t, Italic(""))
	assert.Empty(t, BoldItalic(""))
	assert.Empty(t, Strikethrough(""))
}
