package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"scene-api/internal/scene/mapper"
	"scene-api/internal/scene/models"
	"scene-api/internal/scene/store"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Scene Handler
// ============================================================

type SceneHandler struct {
	store        store.Store
	modelVersion string
}

func NewSceneHandler(st store.Store, modelVersion string) *SceneHandler {
	return &SceneHandler{store: st, modelVersion: modelVersion}
}

// GetScene возвращает сохранённую сцену по идентификатору.
func (h *SceneHandler) GetScene(c fiber.Ctx) error {
	sceneID := c.Params("id")

	scene, meta, err := h.store.Get(context.Background(), sceneID)
	if err != nil {
		var nf *store.NotFoundError
		if errors.As(err, &nf) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{
				"error":         "scene not found",
				"scene_id":      nf.SceneID,
				"available_ids": nf.AvailableIDs,
			})
		}
		log.Printf("[SCENES] get %q error: %v", sceneID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load scene",
		})
	}

	return c.JSON(analysisResponse{
		Scene:         scene,
		InferenceTime: meta.InferenceTime,
		ModelVersion:  meta.ModelVersion,
		PointCount:    meta.PointCount,
	})
}

// ListScenes возвращает идентификаторы всех сохранённых сцен.
func (h *SceneHandler) ListScenes(c fiber.Ctx) error {
	ids, err := h.store.ListIDs(context.Background())
	if err != nil {
		log.Printf("[SCENES] list error: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list scenes",
		})
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(fiber.Map{"scenes": ids})
}

type ingestRequest struct {
	Notation      string  `json:"notation"`
	InferenceTime float64 `json:"inference_time"`
	ModelVersion  string  `json:"model_version"`
	PointCount    int     `json:"point_count"`
}

// IngestScene конвертирует нотацию и сохраняет сцену целиком, заменяя
// прежнюю версию.
func (h *SceneHandler) IngestScene(c fiber.Ctx) error {
	sceneID := c.Params("id")
	log.Printf("[SCENES] Ingest request for %q", sceneID)

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var req ingestRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	if strings.TrimSpace(req.Notation) == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "notation required"})
	}

	converter := mapper.NewWithOptions(mapper.Options{
		Strict:        c.Query("strict") == "true",
		SkipMalformed: c.Query("skip_malformed") == "true",
	})

	result, err := converter.Convert(req.Notation)
	if err != nil {
		log.Printf("[SCENES] Conversion error for %q: %v", sceneID, err)
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	meta := models.Metadata{
		InferenceTime: req.InferenceTime,
		ModelVersion:  req.ModelVersion,
		PointCount:    req.PointCount,
	}
	if meta.ModelVersion == "" {
		meta.ModelVersion = h.modelVersion
	}

	if err := h.store.Put(context.Background(), sceneID, result.Scene, meta); err != nil {
		log.Printf("[SCENES] put %q error: %v", sceneID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save scene"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"scene_id": sceneID,
		"walls":    len(result.Scene.Walls),
		"doors":    len(result.Scene.Doors),
		"windows":  len(result.Scene.Windows),
		"objects":  len(result.Scene.Objects),
		"skipped":  len(result.Skipped),
	})
}
