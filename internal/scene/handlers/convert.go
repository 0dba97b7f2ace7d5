package handlers

import (
	"log"
	"net/http"

	"scene-api/internal/scene/mapper"
	"scene-api/internal/scene/models"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Convert Handler
// ============================================================

type convertResponse struct {
	Scene   *models.SceneStructure `json:"scene"`
	Skipped []mapper.SkippedLine   `json:"skipped,omitempty"`
}

// ConvertNotation конвертирует сырой вывод модели в структуру сцены.
// Query-флаги strict и skip_malformed выбирают режим конвертации.
func ConvertNotation(c fiber.Ctx) error {
	log.Printf("[CONVERTER] Received request, size: %d bytes", len(c.Body()))

	if len(c.Body()) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "notation text required in body",
		})
	}

	converter := mapper.NewWithOptions(mapper.Options{
		Strict:        c.Query("strict") == "true",
		SkipMalformed: c.Query("skip_malformed") == "true",
	})

	result, err := converter.Convert(string(c.Body()))
	if err != nil {
		log.Printf("[CONVERTER] Conversion error: %v", err)
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("[CONVERTER] Converted: %d walls, %d doors, %d windows, %d objects, %d skipped",
		len(result.Scene.Walls), len(result.Scene.Doors), len(result.Scene.Windows), len(result.Scene.Objects), len(result.Skipped))

	return c.JSON(convertResponse{Scene: result.Scene, Skipped: result.Skipped})
}
