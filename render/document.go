package render

import (
	"strconv"
	"strings"

	"github.com/c360studio/guidebook/guide"
	"github.com/c360studio/guidebook/markdown"
)

// noInstructionsPlaceholder is shown when every instruction is filtered out.
const noInstructionsPlaceholder = "There are no instructions"

// Document renders a guide into the final Markdown document.
func Document(g *guide.Guide, opts Options) (string, error) {
	b := markdown.NewBuilder()

	title := g.GameTitle
	if len(g.Categories) > 0 {
		title += " - " + strings.Join(g.Categories, ", ")
	}
	b.Heading(1, title)
	b.Paragraphs(g.Description)

	if len(g.Resources) > 0 {
		b.Heading(2, "Resources")
		b.UnorderedList(g.Resources)
	}

	if len(g.Rules) > 0 {
		b.Heading(2, "Rules")
		b.OrderedList(ruleItems(g.Rules, opts))
	}

	b.Heading(2, "Instructions")
	if err := instructionSection(b, g, opts); err != nil {
		return "", err
	}

	return b.String(), nil
}

// ruleItems renders the rule descriptions in id order; an ignored rule is
// struck through rather than removed.
func ruleItems(rules guide.Rules, opts Options) []string {
	ignored := opts.ignoredSet()
	items := make([]string, 0, len(rules))
	for _, id := range rules.IDs() {
		description := rules[id]
		if ignored[id] {
			description = markdown.Strikethrough(description)
		}
		items = append(items, description)
	}
	return items
}

// instructionSection appends either the instruction table or the italic
// placeholder when nothing is visible.
func instructionSection(b *markdown.Builder, g *guide.Guide, opts Options) error {
	visible := Visible(g.Instructions, opts)
	if len(visible) == 0 {
		b.Paragraph(markdown.Italic(noInstructionsPlaceholder))
		return nil
	}

	// Ids number the visible pre-collapse ordering from 0.
	rows := make([]tableRow, 0, len(visible))
	for i, ins := range visible {
		action, err := actionCell(g.Module(), ins, opts)
		if err != nil {
			return err
		}
		rows = append(rows, tableRow{
			id:     strconv.Itoa(i),
			area:   ins.Env().Area,
			action: action,
		})
	}
	if opts.CollapseInstructionGroups {
		rows = collapseRows(rows)
	}

	columns := []markdown.Column{
		{Title: "Id", Alignment: markdown.AlignRight},
		{Title: "Area", Alignment: markdown.AlignLeft},
		{Title: "Action", Alignment: markdown.AlignLeft},
	}
	cells := make([][]string, 0, len(rows))
	if opts.HideInstructionID {
		columns = columns[1:]
		for _, row := range rows {
			cells = append(cells, []string{row.area, row.action})
		}
	} else {
		for _, row := range rows {
			cells = append(cells, []string{row.id, row.area, row.action})
		}
	}
	b.Table(columns, cells)
	return nil
}

// actionCell renders one instruction's action text: the module's line,
// prefixed with at most one bracketed flag marker (safety takes
// precedence over optional), followed by comment sub-lines unless
// suppressed.
func actionCell(module guide.Module, ins guide.Instruction, opts Options) (string, error) {
	line, err := module.Format(ins)
	if err != nil {
		return "", err
	}

	env := ins.Env()
	switch {
	case env.Safety:
		line = markdown.Bold("[safety]") + " " + line
	case env.Optional:
		line = markdown.Bold("[optional]") + " " + line
	}

	if !opts.HideComments {
		for _, comment := range env.Comments {
			line += "<br>" + markdown.Italic(comment)
		}
	}
	return line, nil
}
