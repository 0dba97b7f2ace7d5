package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"scene-api/internal/scene/mapper"
	"scene-api/internal/scene/models"
	"scene-api/internal/scene/store"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// Precompute CLI
// ============================================================

// Оффлайн-конвертация вывода модели в хранилище сцен:
//
//	precompute -input results/scene0000_00.txt -db data/db/scenes.db

func main() {
	var (
		input         = flag.String("input", "", "входной .txt с выводом модели")
		sceneID       = flag.String("id", "", "идентификатор сцены (по умолчанию имя файла без расширения)")
		dbPath        = flag.String("db", "data/db/scenes.db", "путь к базе сцен")
		migrations    = flag.String("migrations", "migrations/001_init_scenes.sql", "путь к миграции")
		strict        = flag.Bool("strict", false, "отклонять висячие ссылки на стены")
		skipMalformed = flag.Bool("skip-malformed", false, "пропускать неразборные строки")
		inferenceTime = flag.Float64("inference-time", 0, "время инференса, сек")
		modelVersion  = flag.String("model-version", "SpatialLM1.1-Qwen-0.5B", "версия модели")
		pointCount    = flag.Int("point-count", 0, "число точек во входном point cloud")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	id := *sceneID
	if id == "" {
		id = models.SceneIDFromFilename(*input)
	}

	converter := mapper.NewWithOptions(mapper.Options{
		Strict:        *strict,
		SkipMalformed: *skipMalformed,
	})
	result, err := converter.Convert(string(data))
	if err != nil {
		log.Fatalf("convert: %v", err)
	}

	fmt.Printf("Processing: %s\n", *input)
	fmt.Printf("Found:\n")
	fmt.Printf("  - %d walls\n", len(result.Scene.Walls))
	fmt.Printf("  - %d doors\n", len(result.Scene.Doors))
	fmt.Printf("  - %d windows\n", len(result.Scene.Windows))
	fmt.Printf("  - %d objects\n", len(result.Scene.Objects))
	for _, s := range result.Skipped {
		fmt.Printf("  skipped line %d: %s\n", s.Line, s.Error)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	scenes := store.NewSQLite(db)
	if err := scenes.Init(*migrations); err != nil {
		log.Fatalf("init db: %v", err)
	}

	meta := models.Metadata{
		InferenceTime: *inferenceTime,
		ModelVersion:  *modelVersion,
		PointCount:    *pointCount,
	}
	if err := scenes.Put(context.Background(), id, result.Scene, meta); err != nil {
		log.Fatalf("put scene: %v", err)
	}

	fmt.Printf("Saved scene %q to %s\n", id, *dbPath)
}
