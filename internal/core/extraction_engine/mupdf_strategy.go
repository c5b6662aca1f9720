package extraction_engine

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

const MethodMuPDF = "mupdf"

// MuPDFStrategy renders every page through MuPDF and joins the page texts with newlines.
// It copes best with damaged cross-reference tables and unusual font encodings.
func MuPDFStrategy() Strategy {
	return Strategy{Name: MethodMuPDF, Extract: extractWithMuPDF}
}

func extractWithMuPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i+1, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
