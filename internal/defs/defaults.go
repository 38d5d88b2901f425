// internal/defs/defaults.go
package defs

// DefaultIntroText is shown when the intro cutscene file is missing.
const DefaultIntroText = "In a world torn by conflict, a new era begins..."

// DefaultBriefing is the mission briefing played from the menu.
func DefaultBriefing() DialogueScript {
	return DialogueScript{Lines: []DialogueLine{
		{Speaker: "Commander", Text: "Pilot, the border outposts have gone silent."},
		{Speaker: "Pilot", Text: "Any idea who is behind it?"},
		{Speaker: "Commander", Text: "Intercepted footage. Brace yourself."},
		{Speaker: "", Text: CommandShowPutinCutscene},
		{Speaker: "Commander", Text: "Hold the fortress. Protect the village."},
		{Speaker: "Pilot", Text: "Understood. Taking off."},
	}}
}

// QuestMasterDialogue is the quest giver's offer.
func QuestMasterDialogue() BranchingDialogue {
	return BranchingDialogue{
		Text: "Greetings, traveler! Choose your quest wisely.",
		Choices: []Choice{
			{Key: "A", Label: "Defend the outpost"},
			{Key: "B", Label: "Hunt the warlord"},
			{Key: "C", Label: "Not now"},
		},
		Portrait: "images/quest_master.png",
	}
}

// ElderSilence is the elder's reply when no answer was chosen.
const ElderSilence = "The Elder remains silent."

// ElderDialogue is the village elder's greeting. The class line is added by the caller.
func ElderDialogue() BranchingDialogue {
	return BranchingDialogue{
		Text: "Greetings, traveler. What do you seek?",
		Choices: []Choice{
			{Key: "A", Label: "I seek wisdom."},
			{Key: "B", Label: "I seek power."},
			{Key: "C", Label: "I am merely passing through."},
		},
		Portrait: "images/elder.png",
		Replies: map[string]string{
			"A": "Wisdom is the light that guides your journey!",
			"B": "Power must be tempered with responsibility!",
			"C": "Very well, wanderer. May fortune favor you!",
		},
	}
}

// DefaultQuests are offered by the quest master when quest_data.json is absent.
func DefaultQuests() []QuestDefinition {
	return []QuestDefinition{
		{
			ID:          "defend_outpost",
			Description: "Defend the outpost from the invaders.",
			Objectives: []ObjectiveDefinition{
				{Description: "Destroy invaders", Goal: 10, Event: "enemy_killed"},
				{Description: "Collect supply drops", Goal: 2, Event: "powerup_collected"},
			},
			Rewards: RewardDefinition{
				Experience:  "2d6+10",
				SkillPoints: 1,
				Reputation:  map[string]int{"defenders": 10},
			},
		},
		{
			ID:          "hunt_warlord",
			Description: "Bring down the warlord's flagship.",
			Objectives: []ObjectiveDefinition{
				{Description: "Destroy a boss", Goal: 1, Event: "boss_killed"},
			},
			Rewards: RewardDefinition{
				Experience:  "50",
				SkillPoints: 2,
				Reputation:  map[string]int{"defenders": 25, "villagers": 10},
				Item: &EquipmentDefinition{
					Name:    "Warlord's Blade",
					Slot:    "weapon",
					Bonuses: map[string]int{"strength": 3},
				},
			},
		},
	}
}

// DefaultStructures are the fortress, village and poster of the first level.
func DefaultStructures() []StructurePlacement {
	return []StructurePlacement{
		{Kind: "fortress", X: 400, Y: 500},
		{Kind: "village", X: 150, Y: 550},
		{Kind: "poster", X: 650, Y: 550},
	}
}
