package models

import (
	"path/filepath"
	"strings"
)

// ============================================================
// Geometry primitives
// ============================================================

// Point3D — точка в системе координат сцены.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ============================================================
// Scene records
// ============================================================

type Wall struct {
	ID     string  `json:"id"`
	Start  Point3D `json:"start"`
	End    Point3D `json:"end"`
	Height float64 `json:"height"`
}

// Door ссылается на стену по идентификатору; ссылка мягкая и может
// указывать на стену, которой в сцене нет.
type Door struct {
	ID       string  `json:"id"`
	WallID   string  `json:"wallId"`
	Position Point3D `json:"position"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

type Window struct {
	ID       string  `json:"id"`
	WallID   string  `json:"wallId"`
	Position Point3D `json:"position"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// BoundingBox — ориентированный bbox распознанного объекта.
// Rotation — поворот вокруг вертикальной оси, в радианах.
type BoundingBox struct {
	ID          string  `json:"id"`
	ObjectClass string  `json:"objectClass"`
	Position    Point3D `json:"position"`
	Rotation    float64 `json:"rotation"`
	Scale       Point3D `json:"scale"`
	Confidence  float64 `json:"confidence"`
}

// DefaultConfidence подставляется в bbox: нотация модели confidence не несёт.
const DefaultConfidence = 0.95

// ============================================================
// Scene structure
// ============================================================

// SceneStructure — собранная сцена. Порядок элементов в слайсах совпадает
// с порядком появления записей в исходной нотации.
type SceneStructure struct {
	Walls   []Wall        `json:"walls"`
	Doors   []Door        `json:"doors"`
	Windows []Window      `json:"windows"`
	Objects []BoundingBox `json:"objects"`
}

// Metadata — сопутствующие данные инференса, хранятся рядом со сценой.
type Metadata struct {
	InferenceTime float64 `json:"inference_time"`
	ModelVersion  string  `json:"model_version"`
	PointCount    int     `json:"point_count"`
}

// SceneIDFromFilename выводит идентификатор сцены из имени загруженного
// файла: базовое имя без расширения.
func SceneIDFromFilename(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
