package darksouls3

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/guidebook/guide"
)

// SchemaName is the _schema discriminator for Dark Souls III guides.
const SchemaName = "darksouls3"

// Module is the Dark Souls III game module.
var Module guide.Module = module{}

func init() {
	guide.RegisterModule(Module)
}

type module struct{}

// Name returns the schema discriminator this module handles.
func (module) Name() string { return SchemaName }

// validator is implemented by instruction kinds with payload constraints
// beyond what JSON decoding enforces.
type validator interface {
	validate() error
}

// Decode turns one raw instruction of the given kind into its typed form.
func (module) Decode(kind string, data json.RawMessage) (guide.Instruction, error) {
	var ins guide.Instruction
	switch Kind(kind) {
	case KindAllotEstusFlasks:
		ins = &AllotEstusFlasks{}
	case KindBurnUndeadBoneShards:
		ins = &BurnUndeadBoneShards{}
	case KindBuyItems:
		ins = &BuyItems{}
	case KindCastSpells:
		ins = &CastSpells{}
	case KindComment:
		ins = &Comment{}
	case KindCreateCharacter:
		ins = &CreateCharacter{}
	case KindEquip:
		ins = &Equip{}
	case KindFightBoss:
		ins = &FightBoss{}
	case KindGrabItems:
		ins = &GrabItems{}
	case KindKillEnemies:
		ins = &KillEnemies{}
	case KindLightBonfire:
		ins = &LightBonfire{}
	case KindTrade:
		ins = &Trade{}
	case KindTwoHandWeapon:
		ins = &TwoHandWeapon{}
	case KindUnequip:
		ins = &Unequip{}
	case KindUnlockShortcut:
		ins = &UnlockShortcut{}
	case KindUpgradeWeapon:
		ins = &UpgradeWeapon{}
	case KindUseItems:
		ins = &UseItems{}
	case KindWarp:
		ins = &Warp{}
	default:
		return nil, fmt.Errorf("unknown instruction kind %q", kind)
	}

	if err := json.Unmarshal(data, ins); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	if v, ok := ins.(validator); ok {
		if err := v.validate(); err != nil {
			return nil, fmt.Errorf("decode %s: %w", kind, err)
		}
	}
	return ins, nil
}
