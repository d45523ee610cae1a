package popup

import "strconv"

// Box identifies the dialog a popup shows. BoxNone is the hidden state.
// BasicBldFlip..Adv2Bld, StatBld1..StatBld4 and Bld1..Bld4 are paged
// and must stay contiguous.
type Box int

const (
	BoxNone Box = iota
	BoxMap
	BoxMapOverlay
	BoxMineBuilding
	BoxBasicBld
	BoxBasicBldFlip
	BoxAdv1Bld
	BoxAdv2Bld
	BoxStatSelect
	BoxStat4
	BoxStatBld1
	BoxStatBld2
	BoxStatBld3
	BoxStatBld4
	BoxStat8
	BoxStat7
	BoxStat1
	BoxStat2
	BoxStat6
	BoxStat3
	BoxStartAttack
	BoxStartAttackRedraw
	BoxGroundAnalysis
	BoxLoadArchive
	BoxLoadSave
	Box25
	BoxDiskMsg
	BoxSettSelect
	BoxSett1
	BoxSett2
	BoxSett3
	BoxKnightLevel
	BoxSett4
	BoxSett5
	BoxQuitConfirm
	BoxNoSaveQuitConfirm
	BoxSettSelectFile
	BoxOptions
	BoxCastleRes
	BoxMineOutput
	BoxOrderedBld
	BoxDefenders
	BoxTransportInfo
	BoxCastleSerf
	BoxResDir
	BoxSett8
	BoxSett6
	BoxBld1
	BoxBld2
	BoxBld3
	BoxBld4
	BoxMessage
	BoxBldStock
	BoxPlayerFaces
	BoxGameEnd
	BoxDemolish

	boxCount
)

var boxNames = [boxCount]string{
	"none", "map", "map_overlay", "mine_building", "basic_bld",
	"basic_bld_flip", "adv_1_bld", "adv_2_bld", "stat_select", "stat_4",
	"stat_bld_1", "stat_bld_2", "stat_bld_3", "stat_bld_4", "stat_8",
	"stat_7", "stat_1", "stat_2", "stat_6", "stat_3", "start_attack",
	"start_attack_redraw", "ground_analysis", "load_archive", "load_save",
	"box_25", "disk_msg", "sett_select", "sett_1", "sett_2", "sett_3",
	"knight_level", "sett_4", "sett_5", "quit_confirm",
	"no_save_quit_confirm", "sett_select_file", "options", "castle_res",
	"mine_output", "ordered_bld", "defenders", "transport_info",
	"castle_serf", "resdir", "sett_8", "sett_6", "bld_1", "bld_2", "bld_3",
	"bld_4", "message", "bld_stock", "player_faces", "game_end", "demolish",
}

func (b Box) String() string {
	if b < 0 || int(b) >= len(boxNames) {
		return "box(" + strconv.Itoa(int(b)) + ")"
	}
	return boxNames[b]
}

// Boxes returns every box except BoxNone, in enum order.
func Boxes() []Box {
	out := make([]Box, 0, boxCount-1)
	for b := BoxMap; b < boxCount; b++ {
		out = append(out, b)
	}
	return out
}

// nextInRange returns b+1, or first when that leaves [first, last].
func nextInRange(b, first, last Box) Box {
	if b+1 < first || b+1 > last {
		return first
	}
	return b + 1
}
