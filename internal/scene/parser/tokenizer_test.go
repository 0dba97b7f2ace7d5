package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_ClassifiesByPrefix(t *testing.T) {
	text := "wall_0=Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)\n" +
		"\n" +
		"  bbox_0 = Bbox(sofa, 1.5, 2.0, 0.5, 0.0, 2.0, 0.9, 0.8)  \n" +
		"door_0=Door(wall_0, 2.5, 0.0, 0.0, 0.9, 2.1)\n" +
		"window_0=Window(wall_0, 5.0, 2.0, 1.0, 1.2, 1.5)\n"

	tokens, err := Tokenize(text)
	require.NoError(t, err)
	require.Len(t, tokens, 4)

	assert.Equal(t, Token{Line: 1, ID: "wall_0", Kind: KindWall, Expr: "Wall(0.0, 0.0, 0.0, 5.0, 0.0, 0.0, 2.5)"}, tokens[0])
	assert.Equal(t, "bbox_0", tokens[1].ID)
	assert.Equal(t, KindBbox, tokens[1].Kind)
	assert.Equal(t, 3, tokens[1].Line)
	assert.Equal(t, KindDoor, tokens[2].Kind)
	assert.Equal(t, KindWindow, tokens[3].Kind)
}

func TestTokenize_Restartable(t *testing.T) {
	text := "wall_0=Wall(0, 0, 0, 1, 0, 0, 2.5)\nbbox_0=Bbox(sofa, 0, 0, 0, 0, 1, 1, 1)"

	first, err := Tokenize(text)
	require.NoError(t, err)
	second, err := Tokenize(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTokenize_MalformedLine(t *testing.T) {
	_, err := Tokenize("wall_0=Wall(0, 0, 0, 1, 0, 0, 2.5)\njust some text")
	require.Error(t, err)

	var malformed *MalformedLineError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, "just some text", malformed.Text)
}

func TestTokenize_UnknownRecordKind(t *testing.T) {
	_, err := Tokenize("roof_0=Roof(0, 0, 0)")
	require.Error(t, err)

	var unknown *UnknownRecordKindError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 1, unknown.Line)
	assert.Equal(t, "roof_0", unknown.ID)
}
