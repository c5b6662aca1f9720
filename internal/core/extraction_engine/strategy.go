package extraction_engine

import (
	"fmt"
)

// Strategy is one independent way of pulling text out of a document.
//
// Name:    identifier reported as ExtractionResult.Method when the strategy wins.
// Extract: parses the raw bytes; it must not keep state between calls.
type Strategy struct {
	Name    string
	Extract func(data []byte) (string, error)
}

// run invokes the strategy and converts both errors and panics into an error value.
// The PDF readers panic on some malformed inputs, so nothing may escape this boundary.
func (s Strategy) run(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%s panicked: %v", s.Name, r)
		}
	}()

	return s.Extract(data)
}
