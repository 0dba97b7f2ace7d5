package mapper

import (
	"fmt"
	"strings"

	"scene-api/internal/scene/models"
	"scene-api/internal/scene/parser"
)

// ============================================================
// Converter
// ============================================================

// Options — режимы конвертации нотации.
type Options struct {
	// Strict — отклонять висячие ссылки дверей и окон на стены.
	// По умолчанию ссылки сохраняются как есть.
	Strict bool
	// SkipMalformed — пропускать неразборные строки, фиксируя их в
	// результате, вместо прерывания всей конвертации.
	SkipMalformed bool
	// DefaultConfidence — confidence для bbox; 0 означает
	// models.DefaultConfidence.
	DefaultConfidence float64
}

// SkippedLine — строка, пропущенная в режиме SkipMalformed.
type SkippedLine struct {
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

// Result — итог конвертации.
type Result struct {
	Scene   *models.SceneStructure
	Skipped []SkippedLine
}

type Converter struct {
	opts Options
}

func New() *Converter {
	return NewWithOptions(Options{})
}

func NewWithOptions(opts Options) *Converter {
	if opts.DefaultConfidence == 0 {
		opts.DefaultConfidence = models.DefaultConfidence
	}
	return &Converter{opts: opts}
}

// Convert разбирает вывод модели и собирает сцену. Чистая функция входного
// текста: повторный вызов даёт тот же результат.
func (c *Converter) Convert(text string) (*Result, error) {
	var (
		records []parser.Record
		skipped []SkippedLine
	)

	for n, raw := range strings.Split(text, "\n") {
		line := n + 1

		tok, ok, err := parser.TokenizeLine(raw, line)
		if err != nil {
			if c.opts.SkipMalformed {
				skipped = append(skipped, SkippedLine{Line: line, Text: strings.TrimSpace(raw), Error: err.Error()})
				continue
			}
			return nil, err
		}
		if !ok {
			continue
		}

		rec, err := parser.ParseRecord(tok, c.opts.DefaultConfidence)
		if err != nil {
			if c.opts.SkipMalformed {
				skipped = append(skipped, SkippedLine{Line: line, Text: strings.TrimSpace(raw), Error: err.Error()})
				continue
			}
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, rec)
	}

	scene, err := Assemble(records, c.opts.Strict)
	if err != nil {
		return nil, err
	}

	return &Result{Scene: scene, Skipped: skipped}, nil
}
