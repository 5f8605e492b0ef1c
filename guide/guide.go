// Package guide defines the walkthrough guide data model and its JSON
// loader. A Guide is populated once by Parse and treated as immutable
// afterwards; formatting never mutates it.
package guide

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Envelope holds the fields shared by every instruction kind. Concrete
// instruction types embed it; the envelope always applies regardless of
// the kind-specific payload.
type Envelope struct {
	// Area is the location label the instruction takes place in.
	Area string `json:"area"`

	// Comments are free-text annotations rendered as sub-lines.
	Comments []string `json:"comments,omitempty"`

	// Optional marks an instruction that can be skipped entirely.
	Optional bool `json:"optional,omitempty"`

	// Safety marks an instruction that is skippable for safety margin.
	Safety bool `json:"safety,omitempty"`

	// HideOnIgnoredRules suppresses the instruction when any of the
	// listed rule ids is currently ignored.
	HideOnIgnoredRules []int `json:"hideOnIgnoredRules,omitempty"`

	// ShowOnIgnoredRules, when non-empty, shows the instruction only
	// when every listed rule id is currently ignored.
	ShowOnIgnoredRules []int `json:"showOnIgnoredRules,omitempty"`
}

// Env returns the shared envelope fields.
func (e *Envelope) Env() *Envelope { return e }

// sealed prevents instruction implementations outside game modules that
// embed Envelope.
func (e *Envelope) sealed() {}

// Instruction is one walkthrough step. Game modules provide the closed
// set of concrete kinds; every concrete type embeds Envelope.
type Instruction interface {
	Env() *Envelope
	sealed()
}

// Item is a named game item with a positive quantity (default 1). It is
// owned by whichever instruction embeds it and has no independent identity.
type Item struct {
	Name     string
	Quantity int
}

// UnmarshalJSON decodes an item, defaulting a missing quantity to 1 and
// rejecting empty names and non-positive quantities.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string `json:"name"`
		Quantity *int   `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Name == "" {
		return fmt.Errorf("item name must be a non-empty string")
	}
	quantity := 1
	if raw.Quantity != nil {
		quantity = *raw.Quantity
		if quantity < 1 {
			return fmt.Errorf("item quantity must be a positive integer, got %d", quantity)
		}
	}
	it.Name = raw.Name
	it.Quantity = quantity
	return nil
}

// Amount is an optional instruction count. The zero value, a missing JSON
// field, and the JSON literal "all" all mean every available unit.
type Amount struct {
	n int
}

// Count returns an Amount for an exact positive count.
func Count(n int) Amount { return Amount{n: n} }

// IsAll reports whether the amount means every available unit.
func (a Amount) IsAll() bool { return a.n == 0 }

// Value returns the exact count; it is meaningless when IsAll is true.
func (a Amount) Value() int { return a.n }

// UnmarshalJSON decodes an amount from a positive JSON number or the
// literal string "all".
func (a *Amount) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == `"all"` {
		a.n = 0
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("amount must be a positive integer or \"all\", got %s", text)
	}
	if n < 1 {
		return fmt.Errorf("amount must be a positive integer or \"all\", got %d", n)
	}
	a.n = n
	return nil
}

// Rules maps a small positive rule id to its restriction description.
// Ids referenced from instruction envelopes are not checked against this
// table; an unknown id is inert.
type Rules map[int]string

// UnmarshalJSON decodes the rule table from a JSON object keyed by
// numeric strings.
func (r *Rules) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	rules := make(Rules, len(raw))
	for key, description := range raw {
		id, err := strconv.Atoi(key)
		if err != nil || id < 1 {
			return fmt.Errorf("rule id %q must be a positive integer", key)
		}
		rules[id] = description
	}
	*r = rules
	return nil
}

// IDs returns the rule ids in ascending order.
func (r Rules) IDs() []int {
	ids := make([]int, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Guide is the root document describing one game-run walkthrough.
// Instruction order is significant: it is both display order and the
// basis for adjacency-based collapsing.
type Guide struct {
	// ID is a unique identifier assigned when the guide is parsed.
	ID string

	// Schema is the game module discriminator from the _schema field.
	Schema string

	GameTitle    string
	Categories   []string
	Description  []string
	Resources    []string
	Rules        Rules
	Instructions []Instruction

	module Module
}

// Module returns the game module that decoded this guide.
func (g *Guide) Module() Module { return g.module }
