package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/docextract/internal/config"
	"github.com/markdave123-py/docextract/internal/core"
	"github.com/markdave123-py/docextract/internal/core/extraction_engine"
	"github.com/markdave123-py/docextract/internal/models"
)

var (
	errNoFile         = errors.New("No file provided")
	errNoFileSelected = errors.New("No file selected")
)

// upload is the first "file" part that carried a filename parameter.
type upload struct {
	filename    string
	contentType string
	data        []byte
}

type ExtractHandler struct {
	extractor core.DocumentExtractor
	logger    *zap.Logger
	cfg       *config.Config
}

func NewExtractHandler(extractor core.DocumentExtractor, logger *zap.Logger, cfg *config.Config) *ExtractHandler {
	return &ExtractHandler{extractor: extractor, logger: logger, cfg: cfg}
}

// Extract reads the multipart "file" field and returns the extraction result.
// Request-level problems get a 4xx/5xx with an "error" field; extraction failures are a 200 with success=false.
func (h *ExtractHandler) Extract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes())

	up, err := readUpload(r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			WriteError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File too large: maximum upload size is %d MB", h.cfg.MaxUploadMB))
		case errors.Is(err, errNoFileSelected):
			WriteError(w, http.StatusBadRequest, errNoFileSelected.Error())
		case errors.Is(err, errNoFile):
			h.logger.Warn("upload rejected", zap.Error(err))
			WriteError(w, http.StatusBadRequest, errNoFile.Error())
		default:
			h.serverError(w, err)
		}
		return
	}

	requestID := middleware.GetReqID(r.Context())
	if requestID == "" {
		requestID = uuid.NewString()
	}

	result, err := h.extractor.Extract(r.Context(), models.ExtractionRequest{
		RequestID:   requestID,
		Filename:    up.filename,
		ContentType: up.contentType,
		Data:        up.data,
	})
	if err != nil {
		var unsupported *extraction_engine.UnsupportedFileTypeError
		if errors.As(err, &unsupported) {
			WriteError(w, http.StatusBadRequest, unsupported.Error())
			return
		}
		h.serverError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// readUpload streams the multipart body looking for a part named "file" that has a
// filename parameter. A part without that parameter is a plain form field, not a file;
// a part with filename="" is an empty file input.
func readUpload(r *http.Request) (*upload, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNoFile, err)
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, errNoFile
		}
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", errNoFile, err)
		}

		if part.FormName() != "file" {
			part.Close()
			continue
		}
		_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			part.Close()
			continue
		}
		filename, isFile := params["filename"]
		if !isFile {
			part.Close()
			continue
		}
		if filename == "" {
			part.Close()
			return nil, errNoFileSelected
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, err
			}
			return nil, fmt.Errorf("read upload: %w", err)
		}

		return &upload{
			filename:    filename,
			contentType: part.Header.Get("Content-Type"),
			data:        data,
		}, nil
	}
}

func (h *ExtractHandler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error("Unexpected error", zap.Error(err))
	WriteError(w, http.StatusInternalServerError, "Server error: "+err.Error())
}
