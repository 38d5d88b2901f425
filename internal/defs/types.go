// internal/defs/types.go
package defs

// CutsceneDefinition is a narrative cutscene: scrolling text over a background.
type CutsceneDefinition struct {
	Text    string `json:"text" jsonschema:"description=Text revealed character by character"`
	BgImage string `json:"bg_image,omitempty" jsonschema:"description=Background image relative to the asset dir"`
}

// DialogueLine is one scripted line. A line whose Text equals a command
// constant (see CommandShowPutinCutscene) is a script instruction.
type DialogueLine struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// DialogueScript is a linear scripted conversation.
type DialogueScript struct {
	Lines []DialogueLine `json:"lines"`
}

// Choice is a selectable answer of a branching dialogue.
type Choice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// BranchingDialogue is a single prompt with ordered choices.
type BranchingDialogue struct {
	Text     string   `json:"text"`
	Choices  []Choice `json:"choices,omitempty"`
	Portrait string   `json:"portrait,omitempty"`
	// Replies — ответ собеседника на выбранный ключ.
	Replies map[string]string `json:"replies,omitempty"`
}

// EquipmentDefinition describes an item reward.
type EquipmentDefinition struct {
	Name    string         `json:"name"`
	Slot    string         `json:"slot" jsonschema:"enum=weapon,enum=armor,enum=accessory"`
	Bonuses map[string]int `json:"bonuses,omitempty"`
}

// RewardDefinition lists everything granted when a quest completes.
type RewardDefinition struct {
	Experience  string               `json:"experience,omitempty" jsonschema:"description=Integer or dice expression like 2d6+5"`
	SkillPoints int                  `json:"skill_points,omitempty"`
	Reputation  map[string]int       `json:"reputation,omitempty"`
	Item        *EquipmentDefinition `json:"item,omitempty"`
}

// ObjectiveDefinition is a countable quest goal.
type ObjectiveDefinition struct {
	Description string `json:"description"`
	Goal        int    `json:"goal"`
	Event       string `json:"event,omitempty" jsonschema:"enum=enemy_killed,enum=boss_killed,enum=powerup_collected,enum=shield_absorbed"`
}

// QuestDefinition is a quest template.
type QuestDefinition struct {
	ID            string                `json:"id"`
	Description   string                `json:"description"`
	Objectives    []ObjectiveDefinition `json:"objectives"`
	Rewards       RewardDefinition      `json:"rewards"`
	Prerequisites []string              `json:"prerequisites,omitempty"`
}

// QuestFile is the layout of quest_data.json.
type QuestFile struct {
	Quests []QuestDefinition `json:"quests"`
}

// StructurePlacement places a decorative structure on the play field.
type StructurePlacement struct {
	Kind string  `json:"kind" jsonschema:"enum=fortress,enum=village,enum=poster"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// LevelDefinition is the layout of a level file.
type LevelDefinition struct {
	Background string               `json:"background"`
	TileSize   int                  `json:"tile_size,omitempty"`
	Structures []StructurePlacement `json:"structures"`
}

// CommandShowPutinCutscene interrupts a scripted dialogue with the timed cutscene.
const CommandShowPutinCutscene = "SHOW_PUTIN_CUTSCENE"
