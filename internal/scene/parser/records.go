package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"scene-api/internal/scene/models"
)

// ============================================================
// Record Parsers
// ============================================================

// numberRe — знаковая десятичная запись. Экспоненты модель не генерирует.
var numberRe = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)$`)

var (
	wallFields    = [7]string{"startX", "startY", "startZ", "endX", "endY", "endZ", "height"}
	openingFields = [5]string{"positionX", "positionY", "positionZ", "width", "height"}
	bboxFields    = [7]string{"positionX", "positionY", "positionZ", "rotation", "scaleX", "scaleY", "scaleZ"}
)

// Record — одна разобранная запись нотации.
type Record struct {
	Line  int
	Kind  Kind
	Value any // models.Wall | models.Door | models.Window | models.BoundingBox
}

// ID возвращает исходный идентификатор записи.
func (r Record) ID() string {
	switch v := r.Value.(type) {
	case models.Wall:
		return v.ID
	case models.Door:
		return v.ID
	case models.Window:
		return v.ID
	case models.BoundingBox:
		return v.ID
	}
	return ""
}

// ParseRecord разбирает токен в типизированную запись. Для bbox подставляет
// confidence — нотация его не несёт.
func ParseRecord(tok Token, confidence float64) (Record, error) {
	var (
		value any
		err   error
	)
	switch tok.Kind {
	case KindWall:
		value, err = ParseWall(tok.ID, tok.Expr)
	case KindDoor:
		value, err = ParseDoor(tok.ID, tok.Expr)
	case KindWindow:
		value, err = ParseWindow(tok.ID, tok.Expr)
	case KindBbox:
		value, err = ParseBbox(tok.ID, tok.Expr, confidence)
	default:
		err = &UnknownRecordKindError{Line: tok.Line, ID: tok.ID}
	}
	if err != nil {
		return Record{}, err
	}
	return Record{Line: tok.Line, Kind: tok.Kind, Value: value}, nil
}

// ParseWall разбирает Wall(startX, startY, startZ, endX, endY, endZ, height).
func ParseWall(id, expr string) (models.Wall, error) {
	args, err := splitArgs(KindWall, "Wall", expr, 7)
	if err != nil {
		return models.Wall{}, err
	}

	var vals [7]float64
	for i, arg := range args {
		v, err := parseFloat(KindWall, wallFields[i], arg)
		if err != nil {
			return models.Wall{}, err
		}
		vals[i] = v
	}
	if vals[6] <= 0 {
		return models.Wall{}, &MalformedRecordError{Kind: KindWall, RawText: expr, Reason: "height must be positive"}
	}

	return models.Wall{
		ID:     id,
		Start:  models.Point3D{X: vals[0], Y: vals[1], Z: vals[2]},
		End:    models.Point3D{X: vals[3], Y: vals[4], Z: vals[5]},
		Height: vals[6],
	}, nil
}

// ParseDoor разбирает Door(wallRef, positionX, positionY, positionZ, width, height).
func ParseDoor(id, expr string) (models.Door, error) {
	wallID, pos, width, height, err := parseOpening(KindDoor, "Door", expr)
	if err != nil {
		return models.Door{}, err
	}
	return models.Door{ID: id, WallID: wallID, Position: pos, Width: width, Height: height}, nil
}

// ParseWindow разбирает Window(wallRef, positionX, positionY, positionZ, width, height).
func ParseWindow(id, expr string) (models.Window, error) {
	wallID, pos, width, height, err := parseOpening(KindWindow, "Window", expr)
	if err != nil {
		return models.Window{}, err
	}
	return models.Window{ID: id, WallID: wallID, Position: pos, Width: width, Height: height}, nil
}

// ParseBbox разбирает Bbox(label, positionX, positionY, positionZ, rotation,
// scaleX, scaleY, scaleZ). Label — свободный текст до первой запятой.
func ParseBbox(id, expr string, confidence float64) (models.BoundingBox, error) {
	args, err := splitArgs(KindBbox, "Bbox", expr, 8)
	if err != nil {
		return models.BoundingBox{}, err
	}

	label := args[0]
	if label == "" {
		return models.BoundingBox{}, &MalformedRecordError{Kind: KindBbox, RawText: expr, Reason: "empty label"}
	}

	var vals [7]float64
	for i, arg := range args[1:] {
		v, err := parseFloat(KindBbox, bboxFields[i], arg)
		if err != nil {
			return models.BoundingBox{}, err
		}
		vals[i] = v
	}

	return models.BoundingBox{
		ID:          id,
		ObjectClass: label,
		Position:    models.Point3D{X: vals[0], Y: vals[1], Z: vals[2]},
		Rotation:    vals[3],
		Scale:       models.Point3D{X: vals[4], Y: vals[5], Z: vals[6]},
		Confidence:  confidence,
	}, nil
}

// parseOpening — общая грамматика дверей и окон: ссылка на стену и 5 чисел.
func parseOpening(kind Kind, ctor, expr string) (string, models.Point3D, float64, float64, error) {
	args, err := splitArgs(kind, ctor, expr, 6)
	if err != nil {
		return "", models.Point3D{}, 0, 0, err
	}

	wallID := args[0]
	if wallID == "" {
		return "", models.Point3D{}, 0, 0, &MalformedRecordError{Kind: kind, RawText: expr, Reason: "empty wall reference"}
	}

	var vals [5]float64
	for i, arg := range args[1:] {
		v, err := parseFloat(kind, openingFields[i], arg)
		if err != nil {
			return "", models.Point3D{}, 0, 0, err
		}
		vals[i] = v
	}
	if vals[3] <= 0 || vals[4] <= 0 {
		return "", models.Point3D{}, 0, 0, &MalformedRecordError{Kind: kind, RawText: expr, Reason: "width and height must be positive"}
	}

	pos := models.Point3D{X: vals[0], Y: vals[1], Z: vals[2]}
	return wallID, pos, vals[3], vals[4], nil
}

// splitArgs проверяет имя конструктора и арность, возвращает обрезанные
// позиционные аргументы. Именованных и необязательных аргументов нет.
func splitArgs(kind Kind, ctor, expr string, want int) ([]string, error) {
	if !strings.HasPrefix(expr, ctor+"(") || !strings.HasSuffix(expr, ")") {
		return nil, &MalformedRecordError{Kind: kind, RawText: expr, Reason: "expected " + ctor + "(...)"}
	}

	inner := expr[len(ctor)+1 : len(expr)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != want {
		return nil, &MalformedRecordError{
			Kind:    kind,
			RawText: expr,
			Reason:  fmt.Sprintf("expected %d arguments, got %d", want, len(parts)),
		}
	}

	args := make([]string, len(parts))
	for i, p := range parts {
		args[i] = strings.TrimSpace(p)
	}
	return args, nil
}

func parseFloat(kind Kind, field, token string) (float64, error) {
	if !numberRe.MatchString(token) {
		return 0, &InvalidNumberError{Kind: kind, Field: field, Token: token}
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &InvalidNumberError{Kind: kind, Field: field, Token: token}
	}
	return v, nil
}
