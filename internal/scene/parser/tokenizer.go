package parser

import "strings"

// ============================================================
// Notation Tokenizer
// ============================================================

// Kind — вид записи, определяется префиксом идентификатора.
type Kind string

const (
	KindBbox   Kind = "bbox"
	KindWall   Kind = "wall"
	KindDoor   Kind = "door"
	KindWindow Kind = "window"
)

// Token — одна строка нотации: идентификатор и выражение-конструктор.
type Token struct {
	Line int // номер строки в исходном тексте, с 1
	ID   string
	Kind Kind
	Expr string // правая часть, например "Wall(0.0, 0.0, ...)"
}

// Tokenize разбивает текст нотации на токены, останавливаясь на первой
// ошибке. Повторный вызов на том же тексте даёт тот же результат.
func Tokenize(text string) ([]Token, error) {
	var tokens []Token
	for n, raw := range strings.Split(text, "\n") {
		tok, ok, err := TokenizeLine(raw, n+1)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenizeLine разбирает одну строку; ok=false для пустой строки.
func TokenizeLine(raw string, line int) (Token, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Token{}, false, nil
	}

	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return Token{}, false, &MalformedLineError{Line: line, Text: trimmed}
	}

	id := strings.TrimSpace(trimmed[:eq])
	expr := strings.TrimSpace(trimmed[eq+1:])

	kind, ok := classifyID(id)
	if !ok {
		return Token{}, false, &UnknownRecordKindError{Line: line, ID: id}
	}

	return Token{Line: line, ID: id, Kind: kind, Expr: expr}, true, nil
}

func classifyID(id string) (Kind, bool) {
	switch {
	case strings.HasPrefix(id, "bbox_"):
		return KindBbox, true
	case strings.HasPrefix(id, "wall_"):
		return KindWall, true
	case strings.HasPrefix(id, "door_"):
		return KindDoor, true
	case strings.HasPrefix(id, "window_"):
		return KindWindow, true
	}
	return "", false
}
