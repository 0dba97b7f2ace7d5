package mapper

import "fmt"

// ============================================================
// Assembly Errors
// ============================================================

// DuplicateIDError — два записанных элемента одного вида с одним id.
type DuplicateIDError struct {
	Kind string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s id %q", e.Kind, e.ID)
}

// DanglingReferenceError — дверь или окно ссылаются на отсутствующую
// стену; возникает только в строгом режиме.
type DanglingReferenceError struct {
	RecordID string
	WallID   string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("record %q references missing wall %q", e.RecordID, e.WallID)
}
