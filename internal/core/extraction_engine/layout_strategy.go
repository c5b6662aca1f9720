package extraction_engine

import (
	"bytes"
	"fmt"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

const MethodLayout = "pdf_layout"

// wordGapRatio is the horizontal gap, relative to font size, that separates two glyph runs with a space.
const wordGapRatio = 0.2

// LayoutStrategy rebuilds each page line by line from positioned glyph runs.
// Pages without any text are skipped entirely.
func LayoutStrategy() Strategy {
	return Strategy{Name: MethodLayout, Extract: extractWithLayout}
}

func extractWithLayout(data []byte) (string, error) {
	r, err := lpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}

		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			if line := rowText(row); strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}

		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// rowText joins the glyph runs of one row left to right, inserting a space where runs are visibly apart.
func rowText(row *lpdf.Row) string {
	var (
		sb      strings.Builder
		prevEnd float64
		spaced  = true
	)
	for i, t := range row.Content {
		if t.S == "" {
			continue
		}
		if i > 0 && !spaced && !strings.HasPrefix(t.S, " ") && t.X-prevEnd > t.FontSize*wordGapRatio {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		prevEnd = t.X + t.W
		spaced = strings.HasSuffix(t.S, " ")
	}
	return sb.String()
}
