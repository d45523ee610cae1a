package popup

import "strconv"

// Action is a user intent fired by a click region. Values are stable;
// contiguous runs (stat 7 items, sett 5/6 items, minimap building
// filters, inventory modes) are relied on for offset arithmetic.
type Action int

const (
	ActionMinimapClick Action = iota
	ActionMinimapMode
	ActionMinimapRoads
	ActionMinimapBuildings
	ActionMinimapGrid
	ActionBuildStonemine
	ActionBuildCoalmine
	ActionBuildIronmine
	ActionBuildGoldmine
	ActionBuildFlag
	ActionBuildStonecutter
	ActionBuildHut
	ActionBuildLumberjack
	ActionBuildForester
	ActionBuildFisher
	ActionBuildMill
	ActionBuildBoatbuilder
	ActionBuildButcher
	ActionBuildWeaponsmith
	ActionBuildSteelsmelter
	ActionBuildSawmill
	ActionBuildBaker
	ActionBuildGoldsmelter
	ActionBuildFortress
	ActionBuildTower
	ActionBuildToolmaker
	ActionBuildFarm
	ActionBuildPigfarm
	ActionBldFlipPage
	ActionShowStat1
	ActionShowStat2
	ActionShowStat8
	ActionShowStatBld
	ActionShowStat6
	ActionShowStat7
	ActionShowStat4
	ActionShowStat3
	ActionShowStatSelect
	ActionStatBldFlip
	ActionCloseBox
	ActionSett8SetAspectAll
	ActionSett8SetAspectLand
	ActionSett8SetAspectBuildings
	ActionSett8SetAspectMilitary
	ActionSett8SetScale30Min
	ActionSett8SetScale60Min
	ActionSett8SetScale600Min
	ActionSett8SetScale3000Min
	ActionStat7SelectFish
	ActionStat7SelectPig
	ActionStat7SelectMeat
	ActionStat7SelectWheat
	ActionStat7SelectFlour
	ActionStat7SelectBread
	ActionStat7SelectLumber
	ActionStat7SelectPlank
	ActionStat7SelectBoat
	ActionStat7SelectStone
	ActionStat7SelectIronore
	ActionStat7SelectSteel
	ActionStat7SelectCoal
	ActionStat7SelectGoldore
	ActionStat7SelectGoldbar
	ActionStat7SelectShovel
	ActionStat7SelectHammer
	ActionStat7SelectRod
	ActionStat7SelectCleaver
	ActionStat7SelectScythe
	ActionStat7SelectAxe
	ActionStat7SelectSaw
	ActionStat7SelectPick
	ActionStat7SelectPincer
	ActionStat7SelectSword
	ActionStat7SelectShield
	ActionAttackingKnightsDec
	ActionAttackingKnightsInc
	ActionStartAttack
	ActionCloseAttackBox
)

const (
	ActionCloseSettBox Action = iota + 92
	ActionShowSett1
	ActionShowSett2
	ActionShowSett3
	ActionShowSett7
	ActionShowSett4
	ActionShowSett5
	ActionShowSettSelect
	ActionSett1AdjustStonemine
	ActionSett1AdjustCoalmine
	ActionSett1AdjustIronmine
	ActionSett1AdjustGoldmine
	ActionSett2AdjustConstruction
	ActionSett2AdjustBoatbuilder
	ActionSett2AdjustToolmakerPlanks
	ActionSett2AdjustToolmakerSteel
	ActionSett2AdjustWeaponsmith
	ActionSett3AdjustSteelsmelter
	ActionSett3AdjustGoldsmelter
	ActionSett3AdjustWeaponsmith
	ActionSett3AdjustPigfarm
	ActionSett3AdjustMill
	ActionKnightLevelClosestMinDec
	ActionKnightLevelClosestMinInc
	ActionKnightLevelClosestMaxDec
	ActionKnightLevelClosestMaxInc
	ActionKnightLevelCloseMinDec
	ActionKnightLevelCloseMinInc
	ActionKnightLevelCloseMaxDec
	ActionKnightLevelCloseMaxInc
	ActionKnightLevelFarMinDec
	ActionKnightLevelFarMinInc
	ActionKnightLevelFarMaxDec
	ActionKnightLevelFarMaxInc
	ActionKnightLevelFarthestMinDec
	ActionKnightLevelFarthestMinInc
	ActionKnightLevelFarthestMaxDec
	ActionKnightLevelFarthestMaxInc
	ActionSett4AdjustShovel
	ActionSett4AdjustHammer
	ActionSett4AdjustAxe
	ActionSett4AdjustSaw
	ActionSett4AdjustScythe
	ActionSett4AdjustPick
	ActionSett4AdjustPincer
	ActionSett4AdjustCleaver
	ActionSett4AdjustRod
	ActionSett56Item1
	ActionSett56Item2
	ActionSett56Item3
	ActionSett56Item4
	ActionSett56Item5
	ActionSett56Item6
	ActionSett56Item7
	ActionSett56Item8
	ActionSett56Item9
	ActionSett56Item10
	ActionSett56Item11
	ActionSett56Item12
	ActionSett56Item13
	ActionSett56Item14
	ActionSett56Item15
	ActionSett56Item16
	ActionSett56Item17
	ActionSett56Item18
	ActionSett56Item19
	ActionSett56Item20
	ActionSett56Item21
	ActionSett56Item22
	ActionSett56Item23
	ActionSett56Item24
	ActionSett56Item25
	ActionSett56Item26
	ActionSett56Top
	ActionSett56Up
	ActionSett56Down
	ActionSett56Bottom
	ActionQuitConfirm
	ActionQuitCancel
	ActionNoSaveQuitConfirm
	ActionShowQuit
	ActionShowOptions
	ActionShowSave
	ActionSett8Cycle
	ActionCloseOptions
	ActionOptionsPathwayScrolling1
	ActionOptionsPathwayScrolling2
	ActionOptionsFastMapClick1
	ActionOptionsFastMapClick2
	ActionOptionsFastBuilding1
	ActionOptionsFastBuilding2
	ActionOptionsMessageCount1
	ActionOptionsMessageCount2
	ActionShowSettSelectFile
	ActionShowStatSelectFile
	ActionDefaultSett1
	ActionDefaultSett2
	ActionDefaultSett56
	ActionBuildStock
	ActionShowCastleSerf
	ActionShowResdir
	ActionShowCastleRes
	ActionSendGeologist
	ActionResModeIn
	ActionResModeStop
	ActionResModeOut
	ActionSerfModeIn
	ActionSerfModeStop
	ActionSerfModeOut
	ActionShowSett8
	ActionShowSett6
	ActionSett8AdjustRate
	ActionSett8Train1
	ActionSett8Train5
	ActionSett8Train20
	ActionSett8Train100
	ActionDefaultSett3
	ActionSett8SetCombatModeWeak
	ActionSett8SetCombatModeStrong
	ActionAttackingSelectAll1
	ActionAttackingSelectAll2
	ActionAttackingSelectAll3
	ActionAttackingSelectAll4
	ActionMinimapBld1
	ActionMinimapBld2
	ActionMinimapBld3
	ActionMinimapBld4
	ActionMinimapBld5
	ActionMinimapBld6
	ActionMinimapBld7
	ActionMinimapBld8
	ActionMinimapBld9
	ActionMinimapBld10
	ActionMinimapBld11
	ActionMinimapBld12
	ActionMinimapBld13
	ActionMinimapBld14
	ActionMinimapBld15
	ActionMinimapBld16
	ActionMinimapBld17
	ActionMinimapBld18
	ActionMinimapBld19
	ActionMinimapBld20
	ActionMinimapBld21
	ActionMinimapBld22
	ActionMinimapBld23
	ActionMinimapBldFlag
	ActionMinimapBldNext
	ActionMinimapBldExit
	ActionCloseMessage
	ActionDefaultSett4
	ActionShowPlayerFaces
	ActionMinimapScale
	ActionOptionsRightSide
	ActionCloseGroundAnalysis
	ActionTransportInfoFlag
	ActionSett8CastleDefDec
	ActionSett8CastleDefInc
	ActionOptionsMusic
	ActionOptionsFullscreen
	ActionOptionsVolumeMinus
	ActionOptionsVolumePlus
	ActionDemolish
	ActionOptionsSfx
)

var actionNames = map[Action]string{
	ActionMinimapClick:               "minimap_click",
	ActionMinimapMode:                "minimap_mode",
	ActionMinimapRoads:               "minimap_roads",
	ActionMinimapBuildings:           "minimap_buildings",
	ActionMinimapGrid:                "minimap_grid",
	ActionBuildStonemine:             "build_stonemine",
	ActionBuildCoalmine:              "build_coalmine",
	ActionBuildIronmine:              "build_ironmine",
	ActionBuildGoldmine:              "build_goldmine",
	ActionBuildFlag:                  "build_flag",
	ActionBuildStonecutter:           "build_stonecutter",
	ActionBuildHut:                   "build_hut",
	ActionBuildLumberjack:            "build_lumberjack",
	ActionBuildForester:              "build_forester",
	ActionBuildFisher:                "build_fisher",
	ActionBuildMill:                  "build_mill",
	ActionBuildBoatbuilder:           "build_boatbuilder",
	ActionBuildButcher:               "build_butcher",
	ActionBuildWeaponsmith:           "build_weaponsmith",
	ActionBuildSteelsmelter:          "build_steelsmelter",
	ActionBuildSawmill:               "build_sawmill",
	ActionBuildBaker:                 "build_baker",
	ActionBuildGoldsmelter:           "build_goldsmelter",
	ActionBuildFortress:              "build_fortress",
	ActionBuildTower:                 "build_tower",
	ActionBuildToolmaker:             "build_toolmaker",
	ActionBuildFarm:                  "build_farm",
	ActionBuildPigfarm:               "build_pigfarm",
	ActionBldFlipPage:                "bld_flip_page",
	ActionShowStat1:                  "show_stat_1",
	ActionShowStat2:                  "show_stat_2",
	ActionShowStat8:                  "show_stat_8",
	ActionShowStatBld:                "show_stat_bld",
	ActionShowStat6:                  "show_stat_6",
	ActionShowStat7:                  "show_stat_7",
	ActionShowStat4:                  "show_stat_4",
	ActionShowStat3:                  "show_stat_3",
	ActionShowStatSelect:             "show_stat_select",
	ActionStatBldFlip:                "stat_bld_flip",
	ActionCloseBox:                   "close_box",
	ActionSett8SetAspectAll:          "sett_8_set_aspect_all",
	ActionSett8SetAspectLand:         "sett_8_set_aspect_land",
	ActionSett8SetAspectBuildings:    "sett_8_set_aspect_buildings",
	ActionSett8SetAspectMilitary:     "sett_8_set_aspect_military",
	ActionSett8SetScale30Min:         "sett_8_set_scale_30_min",
	ActionSett8SetScale60Min:         "sett_8_set_scale_60_min",
	ActionSett8SetScale600Min:        "sett_8_set_scale_600_min",
	ActionSett8SetScale3000Min:       "sett_8_set_scale_3000_min",
	ActionStat7SelectFish:            "stat_7_select_fish",
	ActionStat7SelectPig:             "stat_7_select_pig",
	ActionStat7SelectMeat:            "stat_7_select_meat",
	ActionStat7SelectWheat:           "stat_7_select_wheat",
	ActionStat7SelectFlour:           "stat_7_select_flour",
	ActionStat7SelectBread:           "stat_7_select_bread",
	ActionStat7SelectLumber:          "stat_7_select_lumber",
	ActionStat7SelectPlank:           "stat_7_select_plank",
	ActionStat7SelectBoat:            "stat_7_select_boat",
	ActionStat7SelectStone:           "stat_7_select_stone",
	ActionStat7SelectIronore:         "stat_7_select_ironore",
	ActionStat7SelectSteel:           "stat_7_select_steel",
	ActionStat7SelectCoal:            "stat_7_select_coal",
	ActionStat7SelectGoldore:         "stat_7_select_goldore",
	ActionStat7SelectGoldbar:         "stat_7_select_goldbar",
	ActionStat7SelectShovel:          "stat_7_select_shovel",
	ActionStat7SelectHammer:          "stat_7_select_hammer",
	ActionStat7SelectRod:             "stat_7_select_rod",
	ActionStat7SelectCleaver:         "stat_7_select_cleaver",
	ActionStat7SelectScythe:          "stat_7_select_scythe",
	ActionStat7SelectAxe:             "stat_7_select_axe",
	ActionStat7SelectSaw:             "stat_7_select_saw",
	ActionStat7SelectPick:            "stat_7_select_pick",
	ActionStat7SelectPincer:          "stat_7_select_pincer",
	ActionStat7SelectSword:           "stat_7_select_sword",
	ActionStat7SelectShield:          "stat_7_select_shield",
	ActionAttackingKnightsDec:        "attacking_knights_dec",
	ActionAttackingKnightsInc:        "attacking_knights_inc",
	ActionStartAttack:                "start_attack",
	ActionCloseAttackBox:             "close_attack_box",
	ActionCloseSettBox:               "close_sett_box",
	ActionShowSett1:                  "show_sett_1",
	ActionShowSett2:                  "show_sett_2",
	ActionShowSett3:                  "show_sett_3",
	ActionShowSett7:                  "show_sett_7",
	ActionShowSett4:                  "show_sett_4",
	ActionShowSett5:                  "show_sett_5",
	ActionShowSettSelect:             "show_sett_select",
	ActionSett1AdjustStonemine:       "sett_1_adjust_stonemine",
	ActionSett1AdjustCoalmine:        "sett_1_adjust_coalmine",
	ActionSett1AdjustIronmine:        "sett_1_adjust_ironmine",
	ActionSett1AdjustGoldmine:        "sett_1_adjust_goldmine",
	ActionSett2AdjustConstruction:    "sett_2_adjust_construction",
	ActionSett2AdjustBoatbuilder:     "sett_2_adjust_boatbuilder",
	ActionSett2AdjustToolmakerPlanks: "sett_2_adjust_toolmaker_planks",
	ActionSett2AdjustToolmakerSteel:  "sett_2_adjust_toolmaker_steel",
	ActionSett2AdjustWeaponsmith:     "sett_2_adjust_weaponsmith",
	ActionSett3AdjustSteelsmelter:    "sett_3_adjust_steelsmelter",
	ActionSett3AdjustGoldsmelter:     "sett_3_adjust_goldsmelter",
	ActionSett3AdjustWeaponsmith:     "sett_3_adjust_weaponsmith",
	ActionSett3AdjustPigfarm:         "sett_3_adjust_pigfarm",
	ActionSett3AdjustMill:            "sett_3_adjust_mill",
	ActionKnightLevelClosestMinDec:   "knight_level_closest_min_dec",
	ActionKnightLevelClosestMinInc:   "knight_level_closest_min_inc",
	ActionKnightLevelClosestMaxDec:   "knight_level_closest_max_dec",
	ActionKnightLevelClosestMaxInc:   "knight_level_closest_max_inc",
	ActionKnightLevelCloseMinDec:     "knight_level_close_min_dec",
	ActionKnightLevelCloseMinInc:     "knight_level_close_min_inc",
	ActionKnightLevelCloseMaxDec:     "knight_level_close_max_dec",
	ActionKnightLevelCloseMaxInc:     "knight_level_close_max_inc",
	ActionKnightLevelFarMinDec:       "knight_level_far_min_dec",
	ActionKnightLevelFarMinInc:       "knight_level_far_min_inc",
	ActionKnightLevelFarMaxDec:       "knight_level_far_max_dec",
	ActionKnightLevelFarMaxInc:       "knight_level_far_max_inc",
	ActionKnightLevelFarthestMinDec:  "knight_level_farthest_min_dec",
	ActionKnightLevelFarthestMinInc:  "knight_level_farthest_min_inc",
	ActionKnightLevelFarthestMaxDec:  "knight_level_farthest_max_dec",
	ActionKnightLevelFarthestMaxInc:  "knight_level_farthest_max_inc",
	ActionSett4AdjustShovel:          "sett_4_adjust_shovel",
	ActionSett4AdjustHammer:          "sett_4_adjust_hammer",
	ActionSett4AdjustAxe:             "sett_4_adjust_axe",
	ActionSett4AdjustSaw:             "sett_4_adjust_saw",
	ActionSett4AdjustScythe:          "sett_4_adjust_scythe",
	ActionSett4AdjustPick:            "sett_4_adjust_pick",
	ActionSett4AdjustPincer:          "sett_4_adjust_pincer",
	ActionSett4AdjustCleaver:         "sett_4_adjust_cleaver",
	ActionSett4AdjustRod:             "sett_4_adjust_rod",
	ActionSett56Item1:                "sett_5_6_item_1",
	ActionSett56Item2:                "sett_5_6_item_2",
	ActionSett56Item3:                "sett_5_6_item_3",
	ActionSett56Item4:                "sett_5_6_item_4",
	ActionSett56Item5:                "sett_5_6_item_5",
	ActionSett56Item6:                "sett_5_6_item_6",
	ActionSett56Item7:                "sett_5_6_item_7",
	ActionSett56Item8:                "sett_5_6_item_8",
	ActionSett56Item9:                "sett_5_6_item_9",
	ActionSett56Item10:               "sett_5_6_item_10",
	ActionSett56Item11:               "sett_5_6_item_11",
	ActionSett56Item12:               "sett_5_6_item_12",
	ActionSett56Item13:               "sett_5_6_item_13",
	ActionSett56Item14:               "sett_5_6_item_14",
	ActionSett56Item15:               "sett_5_6_item_15",
	ActionSett56Item16:               "sett_5_6_item_16",
	ActionSett56Item17:               "sett_5_6_item_17",
	ActionSett56Item18:               "sett_5_6_item_18",
	ActionSett56Item19:               "sett_5_6_item_19",
	ActionSett56Item20:               "sett_5_6_item_20",
	ActionSett56Item21:               "sett_5_6_item_21",
	ActionSett56Item22:               "sett_5_6_item_22",
	ActionSett56Item23:               "sett_5_6_item_23",
	ActionSett56Item24:               "sett_5_6_item_24",
	ActionSett56Item25:               "sett_5_6_item_25",
	ActionSett56Item26:               "sett_5_6_item_26",
	ActionSett56Top:                  "sett_5_6_top",
	ActionSett56Up:                   "sett_5_6_up",
	ActionSett56Down:                 "sett_5_6_down",
	ActionSett56Bottom:               "sett_5_6_bottom",
	ActionQuitConfirm:                "quit_confirm",
	ActionQuitCancel:                 "quit_cancel",
	ActionNoSaveQuitConfirm:          "no_save_quit_confirm",
	ActionShowQuit:                   "show_quit",
	ActionShowOptions:                "show_options",
	ActionShowSave:                   "show_save",
	ActionSett8Cycle:                 "sett_8_cycle",
	ActionCloseOptions:               "close_options",
	ActionOptionsPathwayScrolling1:   "options_pathway_scrolling_1",
	ActionOptionsPathwayScrolling2:   "options_pathway_scrolling_2",
	ActionOptionsFastMapClick1:       "options_fast_map_click_1",
	ActionOptionsFastMapClick2:       "options_fast_map_click_2",
	ActionOptionsFastBuilding1:       "options_fast_building_1",
	ActionOptionsFastBuilding2:       "options_fast_building_2",
	ActionOptionsMessageCount1:       "options_message_count_1",
	ActionOptionsMessageCount2:       "options_message_count_2",
	ActionShowSettSelectFile:         "show_sett_select_file",
	ActionShowStatSelectFile:         "show_stat_select_file",
	ActionDefaultSett1:               "default_sett_1",
	ActionDefaultSett2:               "default_sett_2",
	ActionDefaultSett56:              "default_sett_5_6",
	ActionBuildStock:                 "build_stock",
	ActionShowCastleSerf:             "show_castle_serf",
	ActionShowResdir:                 "show_resdir",
	ActionShowCastleRes:              "show_castle_res",
	ActionSendGeologist:              "send_geologist",
	ActionResModeIn:                  "res_mode_in",
	ActionResModeStop:                "res_mode_stop",
	ActionResModeOut:                 "res_mode_out",
	ActionSerfModeIn:                 "serf_mode_in",
	ActionSerfModeStop:               "serf_mode_stop",
	ActionSerfModeOut:                "serf_mode_out",
	ActionShowSett8:                  "show_sett_8",
	ActionShowSett6:                  "show_sett_6",
	ActionSett8AdjustRate:            "sett_8_adjust_rate",
	ActionSett8Train1:                "sett_8_train_1",
	ActionSett8Train5:                "sett_8_train_5",
	ActionSett8Train20:               "sett_8_train_20",
	ActionSett8Train100:              "sett_8_train_100",
	ActionDefaultSett3:               "default_sett_3",
	ActionSett8SetCombatModeWeak:     "sett_8_set_combat_mode_weak",
	ActionSett8SetCombatModeStrong:   "sett_8_set_combat_mode_strong",
	ActionAttackingSelectAll1:        "attacking_select_all_1",
	ActionAttackingSelectAll2:        "attacking_select_all_2",
	ActionAttackingSelectAll3:        "attacking_select_all_3",
	ActionAttackingSelectAll4:        "attacking_select_all_4",
	ActionMinimapBld1:                "minimap_bld_1",
	ActionMinimapBld2:                "minimap_bld_2",
	ActionMinimapBld3:                "minimap_bld_3",
	ActionMinimapBld4:                "minimap_bld_4",
	ActionMinimapBld5:                "minimap_bld_5",
	ActionMinimapBld6:                "minimap_bld_6",
	ActionMinimapBld7:                "minimap_bld_7",
	ActionMinimapBld8:                "minimap_bld_8",
	ActionMinimapBld9:                "minimap_bld_9",
	ActionMinimapBld10:               "minimap_bld_10",
	ActionMinimapBld11:               "minimap_bld_11",
	ActionMinimapBld12:               "minimap_bld_12",
	ActionMinimapBld13:               "minimap_bld_13",
	ActionMinimapBld14:               "minimap_bld_14",
	ActionMinimapBld15:               "minimap_bld_15",
	ActionMinimapBld16:               "minimap_bld_16",
	ActionMinimapBld17:               "minimap_bld_17",
	ActionMinimapBld18:               "minimap_bld_18",
	ActionMinimapBld19:               "minimap_bld_19",
	ActionMinimapBld20:               "minimap_bld_20",
	ActionMinimapBld21:               "minimap_bld_21",
	ActionMinimapBld22:               "minimap_bld_22",
	ActionMinimapBld23:               "minimap_bld_23",
	ActionMinimapBldFlag:             "minimap_bld_flag",
	ActionMinimapBldNext:             "minimap_bld_next",
	ActionMinimapBldExit:             "minimap_bld_exit",
	ActionCloseMessage:               "close_message",
	ActionDefaultSett4:               "default_sett_4",
	ActionShowPlayerFaces:            "show_player_faces",
	ActionMinimapScale:               "minimap_scale",
	ActionOptionsRightSide:           "options_right_side",
	ActionCloseGroundAnalysis:        "close_ground_analysis",
	ActionTransportInfoFlag:          "transport_info_flag",
	ActionSett8CastleDefDec:          "sett_8_castle_def_dec",
	ActionSett8CastleDefInc:          "sett_8_castle_def_inc",
	ActionOptionsMusic:               "options_music",
	ActionOptionsFullscreen:          "options_fullscreen",
	ActionOptionsVolumeMinus:         "options_volume_minus",
	ActionOptionsVolumePlus:          "options_volume_plus",
	ActionDemolish:                   "demolish",
	ActionOptionsSfx:                 "options_sfx",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "action(" + strconv.Itoa(int(a)) + ")"
}
