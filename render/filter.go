package render

import "github.com/c360studio/guidebook/guide"

// Visible returns the instructions that survive the option-controlled
// visibility predicates, in their original order.
func Visible(instructions []guide.Instruction, opts Options) []guide.Instruction {
	ignored := opts.ignoredSet()
	visible := make([]guide.Instruction, 0, len(instructions))
	for _, ins := range instructions {
		if isVisible(ins.Env(), opts, ignored) {
			visible = append(visible, ins)
		}
	}
	return visible
}

// isVisible applies the short-circuiting visibility predicates in order:
// optional/safety hiding, then the require-all showOnIgnoredRules gate,
// then the exclude-any hideOnIgnoredRules gate.
func isVisible(env *guide.Envelope, opts Options, ignored map[int]bool) bool {
	if opts.HideOptional && env.Optional {
		return false
	}
	if opts.HideSafety && env.Safety {
		return false
	}
	if len(env.ShowOnIgnoredRules) > 0 {
		for _, id := range env.ShowOnIgnoredRules {
			if !ignored[id] {
				return false
			}
		}
		return true
	}
	for _, id := range env.HideOnIgnoredRules {
		if ignored[id] {
			return false
		}
	}
	return true
}

// tableRow is one rendered instruction table row.
type tableRow struct {
	id     string
	area   string
	action string
}

// collapseRows fuses consecutive rows sharing an area into one row whose
// action is the members' actions separated by a blank visual line. The
// merged row keeps the first member's id and area. This is a single
// forward pass over neighbors; rows are never reordered and non-adjacent
// rows sharing an area are never merged.
func collapseRows(rows []tableRow) []tableRow {
	if len(rows) == 0 {
		return rows
	}
	merged := make([]tableRow, 0, len(rows))
	current := rows[0]
	for _, row := range rows[1:] {
		if row.area == current.area {
			current.action += "<br><br>" + row.action
			continue
		}
		merged = append(merged, current)
		current = row
	}
	return append(merged, current)
}
