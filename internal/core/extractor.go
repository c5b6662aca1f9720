package core

import (
	"context"

	"github.com/markdave123-py/docextract/internal/models"
)

// DocumentExtractor turns an uploaded file into text.
// Extraction failures are reported inside the result; the error return is reserved for
// requests that cannot be attempted at all (e.g. an unsupported file type).
type DocumentExtractor interface {
	Extract(ctx context.Context, req models.ExtractionRequest) (models.ExtractionResult, error)
}
