package darksouls3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/guidebook/guide"
)

func level(n int) *int { return &n }

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		ins      guide.Instruction
		expected string
	}{
		{
			name: "allot all flasks",
			ins: &AllotEstusFlasks{
				From: FlaskNormal,
				To:   FlaskAshen,
			},
			expected: "Allot all **Estus Flasks** to **Ashen Estus Flasks**",
		},
		{
			name: "allot one flask",
			ins: &AllotEstusFlasks{
				From:     FlaskAshen,
				To:       FlaskNormal,
				Quantity: guide.Count(1),
			},
			expected: "Allot 1 **Ashen Estus Flask** to **Estus Flasks**",
		},
		{
			name: "allot several flasks",
			ins: &AllotEstusFlasks{
				From:     FlaskNormal,
				To:       FlaskAshen,
				Quantity: guide.Count(3),
			},
			expected: "Allot 3 **Estus Flasks** to **Ashen Estus Flasks**",
		},
		{
			name:     "burn one shard",
			ins:      &BurnUndeadBoneShards{Quantity: guide.Count(1)},
			expected: "Burn 1 **Undead Bone Shard**",
		},
		{
			name:     "burn several shards",
			ins:      &BurnUndeadBoneShards{Quantity: guide.Count(2)},
			expected: "Burn 2 **Undead Bone Shards**",
		},
		{
			name:     "burn all shards",
			ins:      &BurnUndeadBoneShards{},
			expected: "Burn all **Undead Bone Shards**",
		},
		{
			name: "buy items",
			ins: &BuyItems{
				Items: []guide.Item{
					{Name: "Firebomb", Quantity: 6},
					{Name: "Ember", Quantity: 1},
				},
			},
			expected: "Buy **Firebomb** (6), **Ember**",
		},
		{
			name:     "cast spells",
			ins:      &CastSpells{Spells: []string{"Soul Arrow", "Heal Aid"}},
			expected: "Cast **Soul Arrow**, **Heal Aid**",
		},
		{
			name:     "comment",
			ins:      &Comment{Text: "Skip the mimic entirely."},
			expected: "Skip the mimic entirely.",
		},
		{
			name:     "create character",
			ins:      &CreateCharacter{Class: "Knight"},
			expected: "Create a **Knight**",
		},
		{
			name:     "create character with burial gift",
			ins:      &CreateCharacter{Class: "Pyromancer", BurialGift: "Fire Gem"},
			expected: "Create a **Pyromancer** with the **Fire Gem** burial gift",
		},
		{
			name:     "equip",
			ins:      &Equip{Items: []guide.Item{{Name: "Broadsword", Quantity: 1}}},
			expected: "Equip **Broadsword**",
		},
		{
			name:     "fight boss",
			ins:      &FightBoss{Boss: "Iudex Gundyr"},
			expected: "Fight **Iudex Gundyr**",
		},
		{
			name: "fight boss with items and spells",
			ins: &FightBoss{
				Boss:   "Vordt of the Boreal Valley",
				Items:  []guide.Item{{Name: "Ember", Quantity: 1}, {Name: "Firebomb", Quantity: 3}},
				Spells: []string{"Carthus Flame Arc"},
			},
			expected: "Fight **Vordt of the Boreal Valley**" +
				"<br>Use **Ember**, **Firebomb** (3)" +
				"<br>Cast **Carthus Flame Arc**",
		},
		{
			name:     "grab items",
			ins:      &GrabItems{Items: []guide.Item{{Name: "Estus Shard", Quantity: 1}}},
			expected: "Grab **Estus Shard**",
		},
		{
			name:     "kill one enemy",
			ins:      &KillEnemies{Enemy: "Hollow", Quantity: guide.Count(1)},
			expected: "Kill 1 **Hollow**",
		},
		{
			name:     "kill several enemies",
			ins:      &KillEnemies{Enemy: "Hollow", Quantity: guide.Count(3)},
			expected: "Kill 3 **Hollows**",
		},
		{
			name:     "kill all enemies",
			ins:      &KillEnemies{Enemy: "Thrall"},
			expected: "Kill all **Thralls**",
		},
		{
			name:     "light named bonfire",
			ins:      &LightBonfire{Bonfire: "Firelink Shrine"},
			expected: "Light the **Firelink Shrine** bonfire",
		},
		{
			name:     "light unnamed bonfire",
			ins:      &LightBonfire{},
			expected: "Light the bonfire",
		},
		{
			name: "trade names the fixed partner",
			ins: &Trade{
				Item: guide.Item{Name: "Loretta's Bone", Quantity: 1},
				For:  "Ring of Sacrifice",
			},
			expected: "Trade **Loretta's Bone** with **Pickle Pee** for **Ring of Sacrifice**",
		},
		{
			name:     "two-hand weapon",
			ins:      &TwoHandWeapon{Weapon: "Broadsword"},
			expected: "Two-hand the **Broadsword**",
		},
		{
			name:     "unequip",
			ins:      &Unequip{Items: []guide.Item{{Name: "Knight Shield", Quantity: 1}}},
			expected: "Unequip **Knight Shield**",
		},
		{
			name:     "unlock named shortcut",
			ins:      &UnlockShortcut{Shortcut: "elevator"},
			expected: "Unlock the **elevator** shortcut",
		},
		{
			name:     "unlock unnamed shortcut",
			ins:      &UnlockShortcut{},
			expected: "Unlock the shortcut",
		},
		{
			name: "upgrade with infusion and level",
			ins: &UpgradeWeapon{
				Weapon:   "Broadsword",
				Infusion: "Raw Gem",
				Level:    level(3),
			},
			expected: "Infuse the **Broadsword** with a **Raw Gem** and reinforce it to **+3**",
		},
		{
			name:     "upgrade with infusion only",
			ins:      &UpgradeWeapon{Weapon: "Broadsword", Infusion: "Raw Gem"},
			expected: "Infuse the **Broadsword** with a **Raw Gem**",
		},
		{
			name:     "upgrade with level only",
			ins:      &UpgradeWeapon{Weapon: "Broadsword", Level: level(6)},
			expected: "Reinforce the **Broadsword** to **+6**",
		},
		{
			name:     "upgrade with neither facet",
			ins:      &UpgradeWeapon{Weapon: "Broadsword"},
			expected: "Upgrade the **Broadsword**",
		},
		{
			name:     "use items",
			ins:      &UseItems{Items: []guide.Item{{Name: "Ember", Quantity: 1}}},
			expected: "Use **Ember**",
		},
		{
			name:     "warp to destination",
			ins:      &Warp{Destination: "Firelink Shrine"},
			expected: "Warp to the **Firelink Shrine** bonfire",
		},
		{
			name:     "warp without destination",
			ins:      &Warp{},
			expected: "Warp back to the last bonfire rested at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Module.Format(tt.ins)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, line)
		})
	}
}

func TestFormat_UnknownTypeIsContractViolation(t *testing.T) {
	_, err := Module.Format(&guide.Envelope{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no formatting rule")
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		noun     string
		expected string
	}{
		{"Hollow", "Hollows"},
		{"Estus Flask", "Estus Flasks"},
		{"Winged Knight", "Winged Knights"},
		{"Cross", "Crosses"},
		{"Harpy", "Harpies"},
		{"Stray Demon", "Stray Demons"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pluralize(tt.noun))
	}
}
