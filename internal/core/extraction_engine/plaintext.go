package extraction_engine

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const MethodPlainText = "plain_text"

// decodePlainText never fails: a UTF-16 BOM switches the decoder, invalid UTF-8
// sequences become U+FFFD.
func decodePlainText(data []byte) string {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}
