package extraction_engine

import (
	"fmt"
	"mime"
	"strings"
)

const (
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlain = "text/plain"
)

type fileKind int

const (
	kindUnsupported fileKind = iota
	kindPDF
	kindDocx
	kindPlain
)

// UnsupportedFileTypeError is returned when neither the content type nor the filename
// matches a known pipeline.
type UnsupportedFileTypeError struct {
	ContentType string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("Unsupported file type: %s. Please use PDF, DOCX, or TXT files.", e.ContentType)
}

// classify picks the pipeline. PDF wins over DOCX, DOCX over plain text; within each
// step either the media type or the file extension is enough.
func classify(contentType, filename string) fileKind {
	media := mediaType(contentType)
	name := strings.ToLower(filename)

	switch {
	case media == MimePDF || strings.HasSuffix(name, ".pdf"):
		return kindPDF
	case media == MimeDocx || strings.HasSuffix(name, ".docx"):
		return kindDocx
	case media == MimePlain || strings.HasSuffix(name, ".txt"):
		return kindPlain
	default:
		return kindUnsupported
	}
}

// mediaType drops parameters such as "; charset=utf-8".
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}
