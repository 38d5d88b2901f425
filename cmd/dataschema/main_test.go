package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pixel-war/internal/defs"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "level.schema.json")
	reflector := jsonschema.Reflector{AllowAdditionalProperties: true}
	schema := reflector.Reflect(new(defs.LevelDefinition))
	schema.Title = "level"

	require.NoError(t, writeSchema(out, schema))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "level", decoded["title"])
	assert.Contains(t, string(data), "structures")

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
