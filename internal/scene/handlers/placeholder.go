package handlers

import "scene-api/internal/scene/models"

// ============================================================
// Placeholder Scene
// ============================================================

// PlaceholderScene — синтетическая комната, отдаётся когда для сцены нет
// предрасчитанного результата: четыре стены, дверь, окно и два объекта.
func PlaceholderScene() *models.SceneStructure {
	return &models.SceneStructure{
		Walls: []models.Wall{
			{
				ID:     "wall_0",
				Start:  models.Point3D{X: 0.0, Y: 0.0, Z: 0.0},
				End:    models.Point3D{X: 5.0, Y: 0.0, Z: 0.0},
				Height: 2.5,
			},
			{
				ID:     "wall_1",
				Start:  models.Point3D{X: 5.0, Y: 0.0, Z: 0.0},
				End:    models.Point3D{X: 5.0, Y: 4.0, Z: 0.0},
				Height: 2.5,
			},
			{
				ID:     "wall_2",
				Start:  models.Point3D{X: 5.0, Y: 4.0, Z: 0.0},
				End:    models.Point3D{X: 0.0, Y: 4.0, Z: 0.0},
				Height: 2.5,
			},
			{
				ID:     "wall_3",
				Start:  models.Point3D{X: 0.0, Y: 4.0, Z: 0.0},
				End:    models.Point3D{X: 0.0, Y: 0.0, Z: 0.0},
				Height: 2.5,
			},
		},
		Doors: []models.Door{
			{
				ID:       "door_0",
				WallID:   "wall_0",
				Position: models.Point3D{X: 2.5, Y: 0.0, Z: 0.0},
				Width:    0.9,
				Height:   2.1,
			},
		},
		Windows: []models.Window{
			{
				ID:       "window_0",
				WallID:   "wall_1",
				Position: models.Point3D{X: 5.0, Y: 2.0, Z: 1.0},
				Width:    1.2,
				Height:   1.5,
			},
		},
		Objects: []models.BoundingBox{
			{
				ID:          "bbox_0",
				ObjectClass: "sofa",
				Position:    models.Point3D{X: 1.5, Y: 2.0, Z: 0.5},
				Rotation:    0.0,
				Scale:       models.Point3D{X: 2.0, Y: 0.9, Z: 0.8},
				Confidence:  0.95,
			},
			{
				ID:          "bbox_1",
				ObjectClass: "coffee_table",
				Position:    models.Point3D{X: 2.5, Y: 2.5, Z: 0.4},
				Rotation:    0.0,
				Scale:       models.Point3D{X: 1.2, Y: 0.6, Z: 0.45},
				Confidence:  0.89,
			},
		},
	}
}
