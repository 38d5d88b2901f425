// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pixel-war/internal/logging"

	"github.com/rs/zerolog"
)

// Provider loads designer data from <dir>/<name>.json.
// Every loader falls back to built-in content, so callers never see an error.
type Provider struct {
	dir string
	log zerolog.Logger
}

// NewProvider creates a provider rooted at dir.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir, log: logging.For("defs")}
}

func (p *Provider) path(name string) string {
	return filepath.Join(p.dir, name+".json")
}

// readJSON reads and decodes a data file.
func (p *Provider) readJSON(name string, v any) error {
	file, err := os.ReadFile(p.path(name))
	if err != nil {
		return fmt.Errorf("failed to read data file %q: %w", name, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return fmt.Errorf("failed to unmarshal data file %q: %w", name, err)
	}
	return nil
}

// LoadJSON decodes <name>.json into v. Missing or corrupt files are logged
// and reported as false; v is left untouched in that case.
func (p *Provider) LoadJSON(name string, v any) bool {
	if err := p.readJSON(name, v); err != nil {
		p.log.Warn().Err(err).Msg("using built-in data")
		return false
	}
	return true
}

// LoadCutscene loads a narrative cutscene; empty text means the default intro.
func (p *Provider) LoadCutscene(name string) CutsceneDefinition {
	def := CutsceneDefinition{}
	p.LoadJSON(name, &def)
	if def.Text == "" {
		def.Text = DefaultIntroText
	}
	return def
}

// LoadDialogueScript loads a linear dialogue; empty scripts fall back to the briefing.
func (p *Provider) LoadDialogueScript(name string) DialogueScript {
	var script DialogueScript
	if !p.LoadJSON(name, &script) || len(script.Lines) == 0 {
		return DefaultBriefing()
	}
	return script
}

// LoadBranching loads a branching prompt, falling back to fallback.
func (p *Provider) LoadBranching(name string, fallback BranchingDialogue) BranchingDialogue {
	var d BranchingDialogue
	if !p.LoadJSON(name, &d) || d.Text == "" {
		return fallback
	}
	return d
}

// LoadQuests loads quest templates; an empty file yields the default quests.
func (p *Provider) LoadQuests(name string) []QuestDefinition {
	var file QuestFile
	if !p.LoadJSON(name, &file) || len(file.Quests) == 0 {
		return DefaultQuests()
	}
	return file.Quests
}

// LoadLevel loads a level layout; structures default to the classic three.
func (p *Provider) LoadLevel(name string) LevelDefinition {
	var lvl LevelDefinition
	p.LoadJSON(name, &lvl)
	if lvl.Background == "" {
		lvl.Background = "images/background.png"
	}
	if lvl.TileSize == 0 {
		lvl.TileSize = 32
	}
	if len(lvl.Structures) == 0 {
		lvl.Structures = DefaultStructures()
	}
	return lvl
}
