package mapper

import (
	"scene-api/internal/scene/models"
	"scene-api/internal/scene/parser"
)

// ============================================================
// Scene Assembler
// ============================================================

// Assemble группирует разобранные записи по видам, сохраняя порядок
// появления внутри каждого вида. Повторный id внутри вида — всегда ошибка.
// В строгом режиме дополнительно проверяются ссылки дверей и окон на стены;
// стена, встреченная позже проёма, считается существующей.
func Assemble(records []parser.Record, strict bool) (*models.SceneStructure, error) {
	scene := &models.SceneStructure{
		Walls:   []models.Wall{},
		Doors:   []models.Door{},
		Windows: []models.Window{},
		Objects: []models.BoundingBox{},
	}

	seen := map[parser.Kind]map[string]bool{
		parser.KindWall:   {},
		parser.KindDoor:   {},
		parser.KindWindow: {},
		parser.KindBbox:   {},
	}

	for _, rec := range records {
		id := rec.ID()
		if seen[rec.Kind][id] {
			return nil, &DuplicateIDError{Kind: string(rec.Kind), ID: id}
		}
		seen[rec.Kind][id] = true

		switch v := rec.Value.(type) {
		case models.Wall:
			scene.Walls = append(scene.Walls, v)
		case models.Door:
			scene.Doors = append(scene.Doors, v)
		case models.Window:
			scene.Windows = append(scene.Windows, v)
		case models.BoundingBox:
			scene.Objects = append(scene.Objects, v)
		}
	}

	if strict {
		if err := checkReferences(scene); err != nil {
			return nil, err
		}
	}

	return scene, nil
}

// checkReferences проверяет, что каждая дверь и окно привязаны к стене,
// присутствующей в сцене.
func checkReferences(scene *models.SceneStructure) error {
	walls := make(map[string]bool, len(scene.Walls))
	for _, w := range scene.Walls {
		walls[w.ID] = true
	}

	for _, d := range scene.Doors {
		if !walls[d.WallID] {
			return &DanglingReferenceError{RecordID: d.ID, WallID: d.WallID}
		}
	}
	for _, w := range scene.Windows {
		if !walls[w.WallID] {
			return &DanglingReferenceError{RecordID: w.ID, WallID: w.WallID}
		}
	}
	return nil
}
