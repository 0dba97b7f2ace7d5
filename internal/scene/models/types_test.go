package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneIDFromFilename(t *testing.T) {
	assert.Equal(t, "scene0000_00", SceneIDFromFilename("scene0000_00.ply"))
	assert.Equal(t, "scene0000_00", SceneIDFromFilename("uploads/scene0000_00.ply"))
	assert.Equal(t, "room", SceneIDFromFilename("room"))
	assert.Equal(t, "room.backup", SceneIDFromFilename("room.backup.ply"))
}

// Канонические имена полей — контракт совместимости с уже сохранёнными
// сценами; менять их нельзя.
func TestCanonicalFieldNames(t *testing.T) {
	scene := SceneStructure{
		Walls: []Wall{{
			ID:     "wall_0",
			Start:  Point3D{X: 0, Y: 0, Z: 0},
			End:    Point3D{X: 5, Y: 0, Z: 0},
			Height: 2.5,
		}},
		Doors: []Door{{
			ID:       "door_0",
			WallID:   "wall_0",
			Position: Point3D{X: 2.5, Y: 0, Z: 0},
			Width:    0.9,
			Height:   2.1,
		}},
		Windows: []Window{},
		Objects: []BoundingBox{{
			ID:          "bbox_0",
			ObjectClass: "sofa",
			Position:    Point3D{X: 1.5, Y: 2, Z: 0.5},
			Scale:       Point3D{X: 2, Y: 0.9, Z: 0.8},
			Confidence:  0.95,
		}},
	}

	data, err := json.Marshal(scene)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 4)
	assert.Contains(t, raw, "walls")
	assert.Contains(t, raw, "doors")
	assert.Contains(t, raw, "windows")
	assert.Contains(t, raw, "objects")

	door := raw["doors"].([]any)[0].(map[string]any)
	assert.Contains(t, door, "wallId")
	assert.Contains(t, door, "position")

	obj := raw["objects"].([]any)[0].(map[string]any)
	assert.Contains(t, obj, "objectClass")
	assert.Contains(t, obj, "rotation")
	assert.Contains(t, obj, "scale")
	assert.Contains(t, obj, "confidence")

	wall := raw["walls"].([]any)[0].(map[string]any)
	start := wall["start"].(map[string]any)
	assert.Contains(t, start, "x")
	assert.Contains(t, start, "y")
	assert.Contains(t, start, "z")
}
