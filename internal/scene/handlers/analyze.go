package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"scene-api/internal/scene/models"
	"scene-api/internal/scene/service"
	"scene-api/internal/scene/store"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ============================================================
// Analyze Handler
// ============================================================

type AnalyzeHandler struct {
	store        store.Store
	storage      *service.UploadStorage
	modelVersion string
}

func NewAnalyzeHandler(st store.Store, storage *service.UploadStorage, modelVersion string) *AnalyzeHandler {
	return &AnalyzeHandler{store: st, storage: storage, modelVersion: modelVersion}
}

type analyzeRequest struct {
	PointCloudURL    string   `json:"point_cloud_url"`
	DetectWalls      bool     `json:"detect_walls"`
	DetectDoors      bool     `json:"detect_doors"`
	DetectWindows    bool     `json:"detect_windows"`
	DetectObjects    bool     `json:"detect_objects"`
	ObjectCategories []string `json:"object_categories"`
}

type analysisResponse struct {
	Scene         *models.SceneStructure `json:"scene"`
	InferenceTime float64                `json:"inference_time"`
	ModelVersion  string                 `json:"model_version"`
	PointCount    int                    `json:"point_count"`
}

// Analyze отвечает синтетической сценой: инференс выполняется оффлайн,
// этот маршрут оставлен для совместимости с клиентами.
func (h *AnalyzeHandler) Analyze(c fiber.Ctx) error {
	var req analyzeRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
	}
	log.Printf("[ANALYZE] Analyze request, point_cloud_url=%q", req.PointCloudURL)

	return c.JSON(analysisResponse{
		Scene:         PlaceholderScene(),
		InferenceTime: 2.5,
		ModelVersion:  h.modelVersion + " (mock)",
		PointCount:    50000,
	})
}

// AnalyzeFile принимает .ply, выводит идентификатор сцены из имени файла
// и отдаёт предрасчитанный результат из хранилища. При промахе возвращает
// синтетическую сцену: хранилище само ничего не фабрикует.
func (h *AnalyzeHandler) AnalyzeFile(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "file required in multipart/form-data",
		})
	}

	log.Printf("[ANALYZE] File received: %s, size: %d", fileHeader.Filename, fileHeader.Size)

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".ply" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "only .ply files are accepted",
		})
	}

	sceneID := models.SceneIDFromFilename(fileHeader.Filename)
	if sceneID == "" {
		sceneID = uuid.NewString()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to open file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read file"})
	}

	if err := h.storage.SaveFile(sceneID, h.storage.PointCloudPath(sceneID), data); err != nil {
		log.Printf("[ANALYZE] save upload %q error: %v", sceneID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
	}

	scene, meta, err := h.store.Get(context.Background(), sceneID)
	if err != nil {
		var nf *store.NotFoundError
		if !errors.As(err, &nf) {
			log.Printf("[ANALYZE] lookup %q error: %v", sceneID, err)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load scene"})
		}

		log.Printf("[ANALYZE] No precomputed scene for %q, serving placeholder", sceneID)
		return c.JSON(analysisResponse{
			Scene:         PlaceholderScene(),
			InferenceTime: 3.2,
			ModelVersion:  h.modelVersion + " (mock)",
			PointCount:    75000,
		})
	}

	log.Printf("[ANALYZE] Serving precomputed scene %q", sceneID)
	return c.JSON(analysisResponse{
		Scene:         scene,
		InferenceTime: meta.InferenceTime,
		ModelVersion:  meta.ModelVersion,
		PointCount:    meta.PointCount,
	})
}
