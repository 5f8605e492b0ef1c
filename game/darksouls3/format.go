package darksouls3

import (
	"fmt"
	"strings"

	"github.com/c360studio/guidebook/guide"
	"github.com/c360studio/guidebook/markdown"
)

// tradePartner is the fixed third party every trade goes through.
const tradePartner = "Pickle Pee"

// Format renders one instruction as a single Markdown action line. It is
// a pure function and is exhaustive over the kinds Decode accepts; any
// other instruction type is a programming-contract violation.
func (module) Format(ins guide.Instruction) (string, error) {
	switch v := ins.(type) {
	case *AllotEstusFlasks:
		return fmt.Sprintf("Allot %s to %s",
			counted(v.Quantity, v.From.name()), markdown.Bold(pluralize(v.To.name()))), nil
	case *BurnUndeadBoneShards:
		return "Burn " + counted(v.Quantity, "Undead Bone Shard"), nil
	case *BuyItems:
		return "Buy " + itemList(v.Items), nil
	case *CastSpells:
		return "Cast " + nameList(v.Spells), nil
	case *Comment:
		return v.Text, nil
	case *CreateCharacter:
		line := "Create a " + markdown.Bold(v.Class)
		if v.BurialGift != "" {
			line += " with the " + markdown.Bold(v.BurialGift) + " burial gift"
		}
		return line, nil
	case *Equip:
		return "Equip " + itemList(v.Items), nil
	case *FightBoss:
		line := "Fight " + markdown.Bold(v.Boss)
		if len(v.Items) > 0 {
			line += "<br>Use " + itemList(v.Items)
		}
		if len(v.Spells) > 0 {
			line += "<br>Cast " + nameList(v.Spells)
		}
		return line, nil
	case *GrabItems:
		return "Grab " + itemList(v.Items), nil
	case *KillEnemies:
		return "Kill " + counted(v.Quantity, v.Enemy), nil
	case *LightBonfire:
		if v.Bonfire != "" {
			return "Light the " + markdown.Bold(v.Bonfire) + " bonfire", nil
		}
		return "Light the bonfire", nil
	case *Trade:
		return fmt.Sprintf("Trade %s with %s for %s",
			item(v.Item), markdown.Bold(tradePartner), markdown.Bold(v.For)), nil
	case *TwoHandWeapon:
		return "Two-hand the " + markdown.Bold(v.Weapon), nil
	case *Unequip:
		return "Unequip " + itemList(v.Items), nil
	case *UnlockShortcut:
		if v.Shortcut != "" {
			return "Unlock the " + markdown.Bold(v.Shortcut) + " shortcut", nil
		}
		return "Unlock the shortcut", nil
	case *UpgradeWeapon:
		return formatUpgrade(v), nil
	case *UseItems:
		return "Use " + itemList(v.Items), nil
	case *Warp:
		if v.Destination != "" {
			return "Warp to the " + markdown.Bold(v.Destination) + " bonfire", nil
		}
		return "Warp back to the last bonfire rested at", nil
	}
	return "", fmt.Errorf("no formatting rule for instruction type %T", ins)
}

// formatUpgrade composes the sentence from the two optional facets; each
// of the four combinations has its own shape.
func formatUpgrade(v *UpgradeWeapon) string {
	weapon := markdown.Bold(v.Weapon)
	switch {
	case v.Infusion != "" && v.Level != nil:
		return fmt.Sprintf("Infuse the %s with a %s and reinforce it to %s",
			weapon, markdown.Bold(v.Infusion), markdown.Bold(fmt.Sprintf("+%d", *v.Level)))
	case v.Infusion != "":
		return fmt.Sprintf("Infuse the %s with a %s", weapon, markdown.Bold(v.Infusion))
	case v.Level != nil:
		return fmt.Sprintf("Reinforce the %s to %s",
			weapon, markdown.Bold(fmt.Sprintf("+%d", *v.Level)))
	}
	return "Upgrade the " + weapon
}

// counted renders an amount with its noun: "all" and counts other than 1
// take the plural form, a count of exactly 1 the singular.
func counted(amount guide.Amount, noun string) string {
	if amount.IsAll() {
		return "all " + markdown.Bold(pluralize(noun))
	}
	if amount.Value() == 1 {
		return "1 " + markdown.Bold(noun)
	}
	return fmt.Sprintf("%d %s", amount.Value(), markdown.Bold(pluralize(noun)))
}

// item renders one item name with its quantity suffixed only when
// greater than 1.
func item(it guide.Item) string {
	if it.Quantity > 1 {
		return fmt.Sprintf("%s (%d)", markdown.Bold(it.Name), it.Quantity)
	}
	return markdown.Bold(it.Name)
}

// itemList renders items as a comma-joined sequence of emphasized names.
func itemList(items []guide.Item) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, item(it))
	}
	return strings.Join(parts, ", ")
}

// nameList renders plain names as a comma-joined emphasized sequence.
func nameList(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, markdown.Bold(n))
	}
	return strings.Join(parts, ", ")
}

// pluralize forms a naive English plural, enough for item and enemy names.
func pluralize(noun string) string {
	switch {
	case noun == "":
		return noun
	case strings.HasSuffix(noun, "s"), strings.HasSuffix(noun, "x"),
		strings.HasSuffix(noun, "ch"), strings.HasSuffix(noun, "sh"):
		return noun + "es"
	case strings.HasSuffix(noun, "y") && !strings.HasSuffix(noun, "ay") &&
		!strings.HasSuffix(noun, "ey") && !strings.HasSuffix(noun, "oy"):
		return strings.TrimSuffix(noun, "y") + "ies"
	}
	return noun + "s"
}
