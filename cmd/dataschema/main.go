// cmd/dataschema/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"pixel-war/internal/defs"

	"github.com/invopop/jsonschema"
)

// schemaFiles — файлы данных, которые правят дизайнеры.
var schemaFiles = []struct {
	file  string
	title string
	v     any
}{
	{"cutscene.schema.json", "Pixel War cutscene", new(defs.CutsceneDefinition)},
	{"dialogue.schema.json", "Pixel War scripted dialogue", new(defs.DialogueScript)},
	{"branching_dialogue.schema.json", "Pixel War branching dialogue", new(defs.BranchingDialogue)},
	{"quest_data.schema.json", "Pixel War quests", new(defs.QuestFile)},
	{"level.schema.json", "Pixel War level", new(defs.LevelDefinition)},
}

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "", "directory to write the JSON schemas")
	flag.Parse()

	if outDir == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	reflector := jsonschema.Reflector{AllowAdditionalProperties: true}
	for _, f := range schemaFiles {
		schema := reflector.Reflect(f.v)
		schema.Title = f.title
		if err := writeSchema(filepath.Join(outDir, f.file), schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", f.file, err)
			os.Exit(1)
		}
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}
	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}
