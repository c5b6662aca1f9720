package extraction_engine

import (
	"bytes"
	"fmt"
	"strings"

	dpdf "github.com/dslipak/pdf"
)

const MethodPlain = "pdf_plain"

// PlainStrategy is the basic content-stream reader. It gives up on encrypted or
// structurally broken files, which is why it runs last.
func PlainStrategy() Strategy {
	return Strategy{Name: MethodPlain, Extract: extractWithPlain}
}

func extractWithPlain(data []byte) (string, error) {
	r, err := dpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
