package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"scene-api/internal/scene/models"
)

// ============================================================
// SQLite Store
// ============================================================

type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Init запускает миграции.
func (s *SQLite) Init(migrationsPath string) error {
	data, err := os.ReadFile(migrationsPath)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := s.db.Exec(string(data)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// Put сохраняет сцену в каноническом JSON, заменяя прежнюю запись целиком.
func (s *SQLite) Put(ctx context.Context, sceneID string, scene *models.SceneStructure, meta models.Metadata) error {
	payload, err := json.Marshal(scene)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO scenes (id, scene, inference_time, model_version, point_count)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            scene          = excluded.scene,
            inference_time = excluded.inference_time,
            model_version  = excluded.model_version,
            point_count    = excluded.point_count
    `, sceneID, string(payload), meta.InferenceTime, meta.ModelVersion, meta.PointCount)
	if err != nil {
		return fmt.Errorf("put scene: %w", err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, sceneID string) (*models.SceneStructure, models.Metadata, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT scene, inference_time, model_version, point_count
        FROM scenes
        WHERE id = ?
    `, sceneID)

	var (
		payload string
		meta    models.Metadata
	)
	if err := row.Scan(&payload, &meta.InferenceTime, &meta.ModelVersion, &meta.PointCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			ids, lerr := s.ListIDs(ctx)
			if lerr != nil {
				ids = nil
			}
			return nil, models.Metadata{}, &NotFoundError{SceneID: sceneID, AvailableIDs: ids}
		}
		return nil, models.Metadata{}, err
	}

	var scene models.SceneStructure
	if err := json.Unmarshal([]byte(payload), &scene); err != nil {
		return nil, models.Metadata{}, fmt.Errorf("unmarshal scene: %w", err)
	}
	return &scene, meta, nil
}

func (s *SQLite) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM scenes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Open открывает sqlite по указанному пути.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
