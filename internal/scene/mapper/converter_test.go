package mapper

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-api/internal/scene/models"
	"scene-api/internal/scene/parser"
)

const sampleNotation = "wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n" +
	"wall_1=Wall(5.0, 0.0, 0.0, 5.0, 4.0, 0.0, 2.5)\n" +
	"door_0=Door(wall_0, 2.5, 0.0, 0.0, 0.9, 2.1)\n" +
	"window_0=Window(wall_1, 5.0, 2.0, 1.0, 1.2, 1.5)\n" +
	"bbox_0=Bbox(sofa, 1.5, 2.0, 0.5, 0.0, 2.0, 0.9, 0.8)\n"

func TestConvert_GroupsByKind(t *testing.T) {
	result, err := New().Convert(sampleNotation)
	require.NoError(t, err)
	require.Empty(t, result.Skipped)

	scene := result.Scene
	require.Len(t, scene.Walls, 2)
	require.Len(t, scene.Doors, 1)
	require.Len(t, scene.Windows, 1)
	require.Len(t, scene.Objects, 1)

	assert.Equal(t, "wall_0", scene.Walls[0].ID)
	assert.Equal(t, "door_0", scene.Doors[0].ID)
	assert.Equal(t, 0.95, scene.Objects[0].Confidence)
}

func TestConvert_PreservesEncounterOrder(t *testing.T) {
	text := "wall_1=Wall(5.0, 0.0, 0.0, 5.0, 4.0, 0.0, 2.5)\n" +
		"wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n"

	result, err := New().Convert(text)
	require.NoError(t, err)

	require.Len(t, result.Scene.Walls, 2)
	assert.Equal(t, "wall_1", result.Scene.Walls[0].ID)
	assert.Equal(t, "wall_0", result.Scene.Walls[1].ID)
}

func TestConvert_DuplicateID(t *testing.T) {
	text := "wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n" +
		"wall_0=Wall(1.0, 0.0, 0.0, 6.0, 0.0, 0.0, 2.5)\n"

	_, err := New().Convert(text)
	require.Error(t, err)

	var dup *DuplicateIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "wall", dup.Kind)
	assert.Equal(t, "wall_0", dup.ID)
}

func TestConvert_DanglingReference(t *testing.T) {
	text := "door_0=Door(wall_5, 2.5, 0.0, 0.0, 0.9, 2.1)\n"

	// строгий режим: ссылка на отсутствующую стену — ошибка
	_, err := NewWithOptions(Options{Strict: true}).Convert(text)
	require.Error(t, err)

	var dangling *DanglingReferenceError
	require.True(t, errors.As(err, &dangling))
	assert.Equal(t, "door_0", dangling.RecordID)
	assert.Equal(t, "wall_5", dangling.WallID)

	// по умолчанию ссылка сохраняется как есть
	result, err := New().Convert(text)
	require.NoError(t, err)
	require.Len(t, result.Scene.Doors, 1)
	assert.Equal(t, "wall_5", result.Scene.Doors[0].WallID)
}

func TestConvert_StrictAcceptsWallAfterOpening(t *testing.T) {
	text := "door_0=Door(wall_0, 2.5, 0.0, 0.0, 0.9, 2.1)\n" +
		"wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n"

	result, err := NewWithOptions(Options{Strict: true}).Convert(text)
	require.NoError(t, err)
	assert.Len(t, result.Scene.Doors, 1)
}

func TestConvert_AbortsOnMalformedLine(t *testing.T) {
	text := "wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n" +
		"garbage without equals\n"

	_, err := New().Convert(text)
	require.Error(t, err)

	var malformed *parser.MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
}

func TestConvert_RecordErrorCarriesLine(t *testing.T) {
	text := "wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n" +
		"wall_1=Wall(oops, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n"

	_, err := New().Convert(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	var invalid *parser.InvalidNumberError
	require.True(t, errors.As(err, &invalid))
}

func TestConvert_SkipMalformed(t *testing.T) {
	text := "wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n" +
		"garbage without equals\n" +
		"bbox_0=Bbox(sofa, 1.5, 2.0, 0.5, 0.0, 2.0, 0.9, 0.8)\n" +
		"wall_1=Wall(bad, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n"

	result, err := NewWithOptions(Options{SkipMalformed: true}).Convert(text)
	require.NoError(t, err)

	require.Len(t, result.Scene.Walls, 1)
	require.Len(t, result.Scene.Objects, 1)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 2, result.Skipped[0].Line)
	assert.Equal(t, "garbage without equals", result.Skipped[0].Text)
	assert.Equal(t, 4, result.Skipped[1].Line)
}

func TestConvert_DefaultConfidenceOption(t *testing.T) {
	text := "bbox_0=Bbox(sofa, 1.5, 2.0, 0.5, 0.0, 2.0, 0.9, 0.8)\n"

	result, err := NewWithOptions(Options{DefaultConfidence: 0.5}).Convert(text)
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.Scene.Objects[0].Confidence)
}

func TestConvert_EmptyInputYieldsEmptyArrays(t *testing.T) {
	result, err := New().Convert("\n\n")
	require.NoError(t, err)

	data, err := json.Marshal(result.Scene)
	require.NoError(t, err)
	assert.JSONEq(t, `{"walls":[],"doors":[],"windows":[],"objects":[]}`, string(data))
}

// Канонический JSON после разбора и повторного разбора даёт ту же сцену.
func TestConvert_RoundTrip(t *testing.T) {
	result, err := New().Convert(sampleNotation)
	require.NoError(t, err)

	data, err := json.Marshal(result.Scene)
	require.NoError(t, err)

	var restored models.SceneStructure
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *result.Scene, restored)

	again, err := json.Marshal(&restored)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))
}
