package extraction_engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/markdave123-py/docextract/internal/core"
	"github.com/markdave123-py/docextract/internal/models"
)

var _ core.DocumentExtractor = (*Dispatcher)(nil)

// Dispatcher routes an upload to the PDF chain, the DOCX strategy or the plain-text passthrough.
type Dispatcher struct {
	logger *zap.Logger
	pdf    *ExtractorChain
	docx   Strategy
}

func NewDispatcher(logger *zap.Logger, pdf *ExtractorChain, docx Strategy) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{logger: logger, pdf: pdf, docx: docx}
}

// NewDefaultDispatcher wires the production PDF chain and docconv for DOCX.
func NewDefaultDispatcher(logger *zap.Logger, minTextLength int) *Dispatcher {
	return NewDispatcher(logger, NewPDFChain(logger, minTextLength), DocxStrategy())
}

// Extract classifies the request and runs the matching pipeline. The only error it
// returns is *UnsupportedFileTypeError.
func (d *Dispatcher) Extract(ctx context.Context, req models.ExtractionRequest) (models.ExtractionResult, error) {
	fields := []zap.Field{
		zap.String("request_id", req.RequestID),
		zap.String("filename", req.Filename),
	}
	d.logger.Info("Processing file",
		append(fields, zap.String("content_type", req.ContentType), zap.Int("size", len(req.Data)))...)

	switch classify(req.ContentType, req.Filename) {
	case kindPDF:
		return d.pdf.Run(req.Data, fields...), nil
	case kindDocx:
		return d.extractDocx(req.Data, fields), nil
	case kindPlain:
		return models.ExtractionResult{Success: true, Text: decodePlainText(req.Data), Method: MethodPlainText}, nil
	default:
		return models.ExtractionResult{}, &UnsupportedFileTypeError{ContentType: req.ContentType}
	}
}

func (d *Dispatcher) extractDocx(data []byte, fields []zap.Field) models.ExtractionResult {
	text, err := d.docx.run(data)
	if err != nil {
		d.logger.Error("DOCX extraction failed", append(fields, zap.Error(err))...)
		return models.ExtractionResult{
			Success: false,
			Text:    fmt.Sprintf("Unable to extract text from DOCX file: %v", err),
			Method:  MethodNone,
		}
	}
	return models.ExtractionResult{Success: true, Text: strings.TrimSpace(text), Method: d.docx.Name}
}
