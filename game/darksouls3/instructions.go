// Package darksouls3 is the Dark Souls III game module: the closed set of
// instruction kinds a DS3 walkthrough guide can contain, their JSON
// decoding, and the formatting table that renders each kind as prose.
package darksouls3

import (
	"fmt"

	"github.com/c360studio/guidebook/guide"
)

// Kind tags the instruction variants of the darksouls3 schema.
type Kind string

// The closed set of instruction kinds.
const (
	KindAllotEstusFlasks     Kind = "allotEstusFlasks"
	KindBurnUndeadBoneShards Kind = "burnUndeadBoneShards"
	KindBuyItems             Kind = "buyItems"
	KindCastSpells           Kind = "castSpells"
	KindComment              Kind = "comment"
	KindCreateCharacter      Kind = "createCharacter"
	KindEquip                Kind = "equip"
	KindFightBoss            Kind = "fightBoss"
	KindGrabItems            Kind = "grabItems"
	KindKillEnemies          Kind = "killEnemies"
	KindLightBonfire         Kind = "lightBonfire"
	KindTrade                Kind = "trade"
	KindTwoHandWeapon        Kind = "twoHandWeapon"
	KindUnequip              Kind = "unequip"
	KindUnlockShortcut       Kind = "unlockShortcut"
	KindUpgradeWeapon        Kind = "upgradeWeapon"
	KindUseItems             Kind = "useItems"
	KindWarp                 Kind = "warp"
)

// FlaskVariant selects one of the two estus flask types.
type FlaskVariant string

// FlaskNormal and FlaskAshen enumerate the flask variants.
const (
	FlaskNormal FlaskVariant = "normal"
	FlaskAshen  FlaskVariant = "ashen"
)

// name returns the singular flask name for the variant.
func (v FlaskVariant) name() string {
	if v == FlaskAshen {
		return "Ashen Estus Flask"
	}
	return "Estus Flask"
}

func (v FlaskVariant) validate() error {
	switch v {
	case FlaskNormal, FlaskAshen:
		return nil
	}
	return fmt.Errorf("flask variant must be %q or %q, got %q", FlaskNormal, FlaskAshen, v)
}

// AllotEstusFlasks moves flask charges between the two estus variants.
type AllotEstusFlasks struct {
	guide.Envelope
	From     FlaskVariant `json:"from"`
	To       FlaskVariant `json:"to"`
	Quantity guide.Amount `json:"quantity"`
}

func (i *AllotEstusFlasks) validate() error {
	if err := i.From.validate(); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := i.To.validate(); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	return nil
}

// BurnUndeadBoneShards burns bone shards at a bonfire.
type BurnUndeadBoneShards struct {
	guide.Envelope
	Quantity guide.Amount `json:"quantity"`
}

// BuyItems purchases items from a merchant.
type BuyItems struct {
	guide.Envelope
	Items []guide.Item `json:"items"`
}

func (i *BuyItems) validate() error { return requireItems(i.Items) }

// CastSpells casts one or more spells.
type CastSpells struct {
	guide.Envelope
	Spells []string `json:"spells"`
}

func (i *CastSpells) validate() error { return requireStrings("spells", i.Spells) }

// Comment is a free-text step with no game action.
type Comment struct {
	guide.Envelope
	Text string `json:"text"`
}

func (i *Comment) validate() error {
	if i.Text == "" {
		return fmt.Errorf("text: must be a non-empty string")
	}
	return nil
}

// CreateCharacter starts a new character with a class and an optional
// burial gift.
type CreateCharacter struct {
	guide.Envelope
	Class      string `json:"class"`
	BurialGift string `json:"burialGift,omitempty"`
}

func (i *CreateCharacter) validate() error { return requireString("class", i.Class) }

// Equip puts items into equipment slots.
type Equip struct {
	guide.Envelope
	Items []guide.Item `json:"items"`
}

func (i *Equip) validate() error { return requireItems(i.Items) }

// FightBoss fights a boss, optionally consuming items and casting spells
// during the fight.
type FightBoss struct {
	guide.Envelope
	Boss   string       `json:"boss"`
	Items  []guide.Item `json:"items,omitempty"`
	Spells []string     `json:"spells,omitempty"`
}

func (i *FightBoss) validate() error { return requireString("boss", i.Boss) }

// GrabItems picks up items from the world.
type GrabItems struct {
	guide.Envelope
	Items []guide.Item `json:"items"`
}

func (i *GrabItems) validate() error { return requireItems(i.Items) }

// KillEnemies kills a number of one enemy type.
type KillEnemies struct {
	guide.Envelope
	Enemy    string       `json:"enemy"`
	Quantity guide.Amount `json:"quantity"`
}

func (i *KillEnemies) validate() error { return requireString("enemy", i.Enemy) }

// LightBonfire lights a checkpoint bonfire. The bonfire name is optional;
// the envelope area usually carries the location.
type LightBonfire struct {
	guide.Envelope
	Bonfire string `json:"bonfire,omitempty"`
}

// Trade gives an item to Pickle Pee in exchange for another.
type Trade struct {
	guide.Envelope
	Item guide.Item `json:"item"`
	For  string     `json:"for"`
}

func (i *Trade) validate() error {
	if i.Item.Name == "" {
		return fmt.Errorf("item: must name a traded item")
	}
	return requireString("for", i.For)
}

// TwoHandWeapon switches to holding a weapon with both hands.
type TwoHandWeapon struct {
	guide.Envelope
	Weapon string `json:"weapon"`
}

func (i *TwoHandWeapon) validate() error { return requireString("weapon", i.Weapon) }

// Unequip removes items from equipment slots.
type Unequip struct {
	guide.Envelope
	Items []guide.Item `json:"items"`
}

func (i *Unequip) validate() error { return requireItems(i.Items) }

// UnlockShortcut opens a shortcut (door, elevator, ladder).
type UnlockShortcut struct {
	guide.Envelope
	Shortcut string `json:"shortcut,omitempty"`
}

// UpgradeWeapon infuses and/or reinforces a weapon. Both facets are
// optional and each combination has its own sentence shape.
type UpgradeWeapon struct {
	guide.Envelope
	Weapon   string `json:"weapon"`
	Infusion string `json:"infusion,omitempty"`
	Level    *int   `json:"level,omitempty"`
}

func (i *UpgradeWeapon) validate() error {
	if err := requireString("weapon", i.Weapon); err != nil {
		return err
	}
	if i.Level != nil && *i.Level < 1 {
		return fmt.Errorf("level: must be a positive integer, got %d", *i.Level)
	}
	return nil
}

// UseItems consumes items from the inventory.
type UseItems struct {
	guide.Envelope
	Items []guide.Item `json:"items"`
}

func (i *UseItems) validate() error { return requireItems(i.Items) }

// Warp travels to a bonfire. Without a destination the warp returns to
// the last bonfire rested at.
type Warp struct {
	guide.Envelope
	Destination string `json:"destination,omitempty"`
}

func requireString(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s: must be a non-empty string", field)
	}
	return nil
}

func requireStrings(field string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s: must be a non-empty array", field)
	}
	for i, v := range values {
		if v == "" {
			return fmt.Errorf("%s[%d]: must be a non-empty string", field, i)
		}
	}
	return nil
}

func requireItems(items []guide.Item) error {
	if len(items) == 0 {
		return fmt.Errorf("items: must be a non-empty array")
	}
	return nil
}
