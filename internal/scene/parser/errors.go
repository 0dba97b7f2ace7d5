package parser

import "fmt"

// ============================================================
// Parse Errors
// ============================================================

// MalformedLineError — строка без разделителя '='.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed line, no '=': %q", e.Line, e.Text)
}

// UnknownRecordKindError — идентификатор с нераспознанным префиксом.
type UnknownRecordKindError struct {
	Line int
	ID   string
}

func (e *UnknownRecordKindError) Error() string {
	return fmt.Sprintf("line %d: unknown record kind for id %q", e.Line, e.ID)
}

// MalformedRecordError — выражение не совпало с грамматикой конструктора:
// не то имя, не та арность или нарушенный инвариант значения.
type MalformedRecordError struct {
	Kind    Kind
	RawText string
	Reason  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record %q: %s", e.Kind, e.RawText, e.Reason)
}

// InvalidNumberError — нечисловой токен на позиции числового аргумента.
type InvalidNumberError struct {
	Kind  Kind
	Field string
	Token string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%s: invalid number in %s: %q", e.Kind, e.Field, e.Token)
}
