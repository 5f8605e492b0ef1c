package darksouls3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	raw := json.RawMessage(`{
		"kind": "allotEstusFlasks",
		"area": "Cemetery of Ash",
		"from": "normal",
		"to": "ashen",
		"quantity": "all",
		"hideOnIgnoredRules": [1]
	}`)

	ins, err := Module.Decode("allotEstusFlasks", raw)
	require.NoError(t, err)

	allot, ok := ins.(*AllotEstusFlasks)
	require.True(t, ok)
	assert.Equal(t, "Cemetery of Ash", allot.Area)
	assert.Equal(t, FlaskNormal, allot.From)
	assert.Equal(t, FlaskAshen, allot.To)
	assert.True(t, allot.Quantity.IsAll())
	assert.Equal(t, []int{1}, allot.HideOnIgnoredRules)
}

func TestDecode_EveryKind(t *testing.T) {
	payloads := map[Kind]string{
		KindAllotEstusFlasks:     `{"from": "normal", "to": "ashen"}`,
		KindBurnUndeadBoneShards: `{"quantity": 2}`,
		KindBuyItems:             `{"items": [{"name": "Ember"}]}`,
		KindCastSpells:           `{"spells": ["Soul Arrow"]}`,
		KindComment:              `{"text": "Careful here."}`,
		KindCreateCharacter:      `{"class": "Knight"}`,
		KindEquip:                `{"items": [{"name": "Broadsword"}]}`,
		KindFightBoss:            `{"boss": "Iudex Gundyr"}`,
		KindGrabItems:            `{"items": [{"name": "Estus Shard"}]}`,
		KindKillEnemies:          `{"enemy": "Hollow", "quantity": 3}`,
		KindLightBonfire:         `{}`,
		KindTrade:                `{"item": {"name": "Loretta's Bone"}, "for": "Ring of Sacrifice"}`,
		KindTwoHandWeapon:        `{"weapon": "Broadsword"}`,
		KindUnequip:              `{"items": [{"name": "Knight Shield"}]}`,
		KindUnlockShortcut:       `{}`,
		KindUpgradeWeapon:        `{"weapon": "Broadsword", "level": 3}`,
		KindUseItems:             `{"items": [{"name": "Ember"}]}`,
		KindWarp:                 `{}`,
	}

	for kind, payload := range payloads {
		t.Run(string(kind), func(t *testing.T) {
			ins, err := Module.Decode(string(kind), json.RawMessage(payload))
			require.NoError(t, err)
			assert.NotNil(t, ins.Env())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		payload  string
		contains string
	}{
		{
			name:     "unknown kind",
			kind:     "parry",
			payload:  `{}`,
			contains: `unknown instruction kind "parry"`,
		},
		{
			name:     "bad flask variant",
			kind:     "allotEstusFlasks",
			payload:  `{"from": "normal", "to": "golden"}`,
			contains: "flask variant",
		},
		{
			name:     "missing boss name",
			kind:     "fightBoss",
			payload:  `{}`,
			contains: "boss",
		},
		{
			name:     "empty item list",
			kind:     "buyItems",
			payload:  `{"items": []}`,
			contains: "items",
		},
		{
			name:     "empty spell name",
			kind:     "castSpells",
			payload:  `{"spells": ["Soul Arrow", ""]}`,
			contains: "spells[1]",
		},
		{
			name:     "missing comment text",
			kind:     "comment",
			payload:  `{}`,
			contains: "text",
		},
		{
			name:     "zero upgrade level",
			kind:     "upgradeWeapon",
			payload:  `{"weapon": "Broadsword", "level": 0}`,
			contains: "level",
		},
		{
			name:     "trade without received item",
			kind:     "trade",
			payload:  `{"item": {"name": "Loretta's Bone"}}`,
			contains: "for",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Module.Decode(tt.kind, json.RawMessage(tt.payload))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
