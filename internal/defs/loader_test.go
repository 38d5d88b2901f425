package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o644))
}

func TestMissingFilesFallBackToDefaults(t *testing.T) {
	p := NewProvider(t.TempDir())

	assert.Equal(t, DefaultIntroText, p.LoadCutscene("cutscene_intro").Text)
	assert.Equal(t, DefaultBriefing(), p.LoadDialogueScript("briefing"))
	assert.Equal(t, DefaultQuests(), p.LoadQuests("quest_data"))

	lvl := p.LoadLevel("level1")
	assert.Equal(t, DefaultStructures(), lvl.Structures)
	assert.Equal(t, 32, lvl.TileSize)
}

func TestCorruptFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir, "quest_data", "{not json")
	p := NewProvider(dir)
	assert.Len(t, p.LoadQuests("quest_data"), 2)
}

func TestLoadsDesignerData(t *testing.T) {
	dir := t.TempDir()
	writeData(t, dir, "cutscene_intro", `{"text":"Hello","bg_image":"images/bg.png"}`)
	writeData(t, dir, "quest_data", `{"quests":[{"id":"q1","description":"d","objectives":[{"description":"o","goal":3}],"rewards":{"experience":"5"}}]}`)
	writeData(t, dir, "level1", `{"background":"images/night.png","structures":[{"kind":"poster","x":1,"y":2}]}`)

	p := NewProvider(dir)
	cs := p.LoadCutscene("cutscene_intro")
	assert.Equal(t, "Hello", cs.Text)
	assert.Equal(t, "images/bg.png", cs.BgImage)

	quests := p.LoadQuests("quest_data")
	require.Len(t, quests, 1)
	assert.Equal(t, "q1", quests[0].ID)
	assert.Equal(t, 3, quests[0].Objectives[0].Goal)

	lvl := p.LoadLevel("level1")
	assert.Equal(t, "images/night.png", lvl.Background)
	assert.Equal(t, []StructurePlacement{{Kind: "poster", X: 1, Y: 2}}, lvl.Structures)
}

func TestBranchingFallback(t *testing.T) {
	p := NewProvider(t.TempDir())
	d := p.LoadBranching("quest_master", QuestMasterDialogue())
	assert.Len(t, d.Choices, 3)
	assert.Equal(t, "A", d.Choices[0].Key)
}

func TestElderDialogue(t *testing.T) {
	p := NewProvider(t.TempDir())
	d := p.LoadBranching("dialogue_elder", ElderDialogue())
	require.Len(t, d.Choices, 3)
	for _, c := range d.Choices {
		assert.NotEmpty(t, d.Replies[c.Key], c.Key)
	}

	dir := t.TempDir()
	writeData(t, dir, "dialogue_elder", `{"text":"Speak.","choices":[{"key":"A","label":"Hello"}],"replies":{"A":"Welcome."}}`)
	d = NewProvider(dir).LoadBranching("dialogue_elder", ElderDialogue())
	assert.Equal(t, "Speak.", d.Text)
	assert.Equal(t, map[string]string{"A": "Welcome."}, d.Replies)
}
