package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// Upload Storage
// ============================================================

// UploadStorage раскладывает принятые файлы по каталогам сцен.
type UploadStorage struct {
	root string
}

func NewUploadStorage(root string) *UploadStorage {
	return &UploadStorage{root: root}
}

func (s *UploadStorage) SceneDir(sceneID string) string {
	return filepath.Join(s.root, sceneID)
}

// PointCloudPath — путь к загруженному point cloud сцены.
func (s *UploadStorage) PointCloudPath(sceneID string) string {
	return filepath.Join(s.SceneDir(sceneID), "cloud.ply")
}

// NotationPath — путь к сырому выводу модели для сцены.
func (s *UploadStorage) NotationPath(sceneID string) string {
	return filepath.Join(s.SceneDir(sceneID), "notation.txt")
}

func (s *UploadStorage) EnsureDir(sceneID string) error {
	if err := os.MkdirAll(s.SceneDir(sceneID), 0o755); err != nil {
		return fmt.Errorf("mkdir scene dir: %w", err)
	}
	return nil
}

func (s *UploadStorage) SaveFile(sceneID, target string, data []byte) error {
	if err := s.EnsureDir(sceneID); err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}
