package handlers

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/markdave123-py/docextract/internal/config"
	"github.com/markdave123-py/docextract/internal/core/extraction_engine"
	"github.com/markdave123-py/docextract/internal/models"
)

type fakeExtractor struct {
	result models.ExtractionResult
	err    error
	got    models.ExtractionRequest
	calls  int
}

func (f *fakeExtractor) Extract(_ context.Context, req models.ExtractionRequest) (models.ExtractionResult, error) {
	f.calls++
	f.got = req
	return f.result, f.err
}

func testConfig() *config.Config {
	return &config.Config{MaxUploadMB: 1}
}

// uploadRequest builds a multipart POST with a single part named field.
func uploadRequest(t *testing.T, field, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestExtractHandler_PassesUploadToExtractor(t *testing.T) {
	fake := &fakeExtractor{result: models.ExtractionResult{Success: true, Text: "resume text", Method: "mupdf"}}
	h := NewExtractHandler(fake, zap.NewNop(), testConfig())

	rec := httptest.NewRecorder()
	h.Extract(rec, uploadRequest(t, "file", "cv.pdf", "application/pdf", []byte("%PDF-1.7")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "text": "resume text", "method": "mupdf"}`, rec.Body.String())
	assert.Equal(t, "cv.pdf", fake.got.Filename)
	assert.Equal(t, "application/pdf", fake.got.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), fake.got.Data)
	assert.NotEmpty(t, fake.got.RequestID)
}

func TestExtractHandler_ExtractionFailureIsStill200(t *testing.T) {
	fake := &fakeExtractor{result: models.ExtractionResult{Success: false, Text: "Unable to extract text from PDF.", Method: "none"}}
	h := NewExtractHandler(fake, zap.NewNop(), testConfig())

	rec := httptest.NewRecorder()
	h.Extract(rec, uploadRequest(t, "file", "scan.pdf", "application/pdf", []byte("%PDF")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": false, "text": "Unable to extract text from PDF.", "method": "none"}`, rec.Body.String())
}

func TestExtractHandler_RequestErrors(t *testing.T) {
	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		extractErr error
		wantStatus int
		wantBody   string
	}{
		{
			name: "wrong field name",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "document", "cv.pdf", "application/pdf", []byte("x"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success": false, "error": "No file provided"}`,
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader(`{"file": "x"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success": false, "error": "No file provided"}`,
		},
		{
			name: "empty filename",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "", "application/octet-stream", nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success": false, "error": "No file selected"}`,
		},
		{
			name: "text field named file",
			req: func(t *testing.T) *http.Request {
				var body bytes.Buffer
				mw := multipart.NewWriter(&body)
				require.NoError(t, mw.WriteField("file", "just a string"))
				require.NoError(t, mw.Close())
				req := httptest.NewRequest(http.MethodPost, "/extract", &body)
				req.Header.Set("Content-Type", mw.FormDataContentType())
				return req
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success": false, "error": "No file provided"}`,
		},
		{
			name: "file part after a text field of the same name",
			req: func(t *testing.T) *http.Request {
				var body bytes.Buffer
				mw := multipart.NewWriter(&body)
				require.NoError(t, mw.WriteField("file", "just a string"))
				part, err := mw.CreateFormFile("file", "")
				require.NoError(t, err)
				_, err = part.Write([]byte("x"))
				require.NoError(t, err)
				require.NoError(t, mw.Close())
				req := httptest.NewRequest(http.MethodPost, "/extract", &body)
				req.Header.Set("Content-Type", mw.FormDataContentType())
				return req
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success": false, "error": "No file selected"}`,
		},
		{
			name: "unsupported type",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "photo.png", "image/png", []byte("png"))
			},
			extractErr: &extraction_engine.UnsupportedFileTypeError{ContentType: "image/png"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success": false, "error": "Unsupported file type: image/png. Please use PDF, DOCX, or TXT files."}`,
		},
		{
			name: "unexpected error",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "cv.pdf", "application/pdf", []byte("x"))
			},
			extractErr: errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success": false, "error": "Server error: disk on fire"}`,
		},
		{
			name: "too large",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "file", "big.txt", "text/plain", bytes.Repeat([]byte("a"), 2<<20))
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"success": false, "error": "File too large: maximum upload size is 1 MB"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExtractor{err: tt.extractErr}
			h := NewExtractHandler(fake, zap.NewNop(), testConfig())

			rec := httptest.NewRecorder()
			h.Extract(rec, tt.req(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestExtractHandler_LogsRejectedUpload(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fake := &fakeExtractor{}
	h := NewExtractHandler(fake, zap.New(core), testConfig())

	req := httptest.NewRequest(http.MethodPost, "/extract", strings.NewReader("plain body"))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()
	h.Extract(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.calls)
	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "upload rejected", warnings[0].Message)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy", "service": "PDF/DOCX Text Extraction Service"}`, rec.Body.String())
}
