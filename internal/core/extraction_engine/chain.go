package extraction_engine

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/markdave123-py/docextract/internal/models"
)

const (
	// DefaultMinTextLength is the trimmed rune count a strategy must exceed to be accepted.
	DefaultMinTextLength = 50

	MethodNone = "none"

	pdfFailureMessage = "Unable to extract text from PDF. The file may be corrupted, password-protected, or contain only images."
)

// ExtractorChain tries its strategies in order and stops at the first one whose
// output clears the acceptance threshold.
type ExtractorChain struct {
	logger        *zap.Logger
	minTextLength int
	strategies    []Strategy
}

// NewExtractorChain builds a chain. A non-positive minTextLength falls back to DefaultMinTextLength.
func NewExtractorChain(logger *zap.Logger, minTextLength int, strategies ...Strategy) *ExtractorChain {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExtractorChain{logger: logger, minTextLength: minTextLength, strategies: strategies}
}

// NewPDFChain returns the chain used for PDF uploads, most robust reader first.
func NewPDFChain(logger *zap.Logger, minTextLength int) *ExtractorChain {
	return NewExtractorChain(logger, minTextLength,
		MuPDFStrategy(),
		LayoutStrategy(),
		PlainStrategy(),
	)
}

// Run returns the first acceptable extraction, or the fixed PDF failure result.
func (c *ExtractorChain) Run(data []byte, fields ...zap.Field) models.ExtractionResult {
	log := c.logger.With(fields...)

	for _, s := range c.strategies {
		log.Info("trying extraction strategy", zap.String("strategy", s.Name))

		text, ok := c.attempt(log, s, data)
		if !ok {
			continue
		}

		text = strings.TrimSpace(text)
		n := utf8.RuneCountInString(text)
		if n <= c.minTextLength {
			log.Info("strategy output below threshold",
				zap.String("strategy", s.Name),
				zap.Int("chars", n),
				zap.Int("threshold", c.minTextLength))
			continue
		}

		log.Info("extracted text", zap.String("strategy", s.Name), zap.Int("chars", n))
		return models.ExtractionResult{Success: true, Text: text, Method: s.Name}
	}

	log.Error("all PDF extraction strategies failed", zap.Int("strategies", len(c.strategies)))
	return models.ExtractionResult{Success: false, Text: pdfFailureMessage, Method: MethodNone}
}

// attempt runs one strategy; ok is false when it produced nothing usable.
func (c *ExtractorChain) attempt(log *zap.Logger, s Strategy, data []byte) (string, bool) {
	text, err := s.run(data)
	if err != nil {
		log.Warn("extraction strategy failed", zap.String("strategy", s.Name), zap.Error(err))
		return "", false
	}
	return text, true
}
