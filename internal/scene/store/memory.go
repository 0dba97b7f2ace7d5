package store

import (
	"context"
	"sort"
	"sync"

	"scene-api/internal/scene/models"
)

// ============================================================
// In-memory Store
// ============================================================

// Memory хранит сцены в памяти; для тестов и запуска без базы.
type Memory struct {
	mu     sync.RWMutex
	scenes map[string]memoryEntry
}

type memoryEntry struct {
	scene models.SceneStructure
	meta  models.Metadata
}

func NewMemory() *Memory {
	return &Memory{scenes: make(map[string]memoryEntry)}
}

func (m *Memory) Put(ctx context.Context, sceneID string, scene *models.SceneStructure, meta models.Metadata) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.scenes[sceneID] = memoryEntry{scene: *scene, meta: meta}
	return nil
}

func (m *Memory) Get(ctx context.Context, sceneID string) (*models.SceneStructure, models.Metadata, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.scenes[sceneID]
	if !ok {
		return nil, models.Metadata{}, &NotFoundError{SceneID: sceneID, AvailableIDs: m.idsLocked()}
	}
	scene := entry.scene
	return &scene, entry.meta, nil
}

func (m *Memory) ListIDs(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.idsLocked(), nil
}

func (m *Memory) idsLocked() []string {
	ids := make([]string, 0, len(m.scenes))
	for id := range m.scenes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
