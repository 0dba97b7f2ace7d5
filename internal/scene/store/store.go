package store

import (
	"context"
	"fmt"
	"strings"

	"scene-api/internal/scene/models"
)

// ============================================================
// Scene Store
// ============================================================

// Store хранит собранные сцены по идентификатору. Записи неизменяемы:
// Put заменяет запись целиком, читатель никогда не видит частичную запись.
type Store interface {
	Put(ctx context.Context, sceneID string, scene *models.SceneStructure, meta models.Metadata) error
	Get(ctx context.Context, sceneID string) (*models.SceneStructure, models.Metadata, error)
	ListIDs(ctx context.Context) ([]string, error)
}

// NotFoundError — сцены с таким идентификатором нет. Штатный исход
// поиска, не ошибка разбора; несёт список доступных идентификаторов
// для диагностики.
type NotFoundError struct {
	SceneID      string
	AvailableIDs []string
}

func (e *NotFoundError) Error() string {
	if len(e.AvailableIDs) == 0 {
		return fmt.Sprintf("scene %q not found, store is empty", e.SceneID)
	}
	return fmt.Sprintf("scene %q not found, available: %s", e.SceneID, strings.Join(e.AvailableIDs, ", "))
}
