package extraction_engine

import (
	"bytes"

	"code.sajari.com/docconv"
)

const MethodDocx = "docx_extractor"

// DocxStrategy reads word/document.xml through docconv.
func DocxStrategy() Strategy {
	return Strategy{Name: MethodDocx, Extract: extractDocx}
}

func extractDocx(data []byte) (string, error) {
	text, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return text, nil
}
