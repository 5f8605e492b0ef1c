// Package render composes a parsed guide into the final Markdown
// document: it filters instructions by visibility, formats each one
// through the guide's game module, and assembles the document layout.
// Everything here is a deterministic pure transformation; the same guide
// and options always produce byte-identical output.
package render

// Options is the per-render formatting surface. The zero value holds
// every documented default: nothing hidden, no collapsing, no ignored
// rules. Options are supplied per call and never stored on the guide.
type Options struct {
	// CollapseInstructionGroups merges consecutive table rows sharing
	// the same area into one row.
	CollapseInstructionGroups bool

	// HideComments suppresses comment sub-lines.
	HideComments bool

	// HideInstructionID drops the Id column and its values.
	HideInstructionID bool

	// HideOptional drops optional-flagged instructions.
	HideOptional bool

	// HideSafety drops safety-flagged instructions.
	HideSafety bool

	// IgnoredRules lists rule ids treated as not currently in force,
	// affecting both rule display and instruction visibility.
	IgnoredRules []int
}

// ignoredSet returns the ignored rule ids as a lookup set.
func (o Options) ignoredSet() map[int]bool {
	if len(o.IgnoredRules) == 0 {
		return nil
	}
	set := make(map[int]bool, len(o.IgnoredRules))
	for _, id := range o.IgnoredRules {
		set[id] = true
	}
	return set
}
