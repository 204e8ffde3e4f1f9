package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrFetchFailed      = errors.New("fetch failed")
	ErrMalformedPayload = errors.New("payload is not a json array")
)

// CountProperties returns the number of top-level elements of a JSON array
// without decoding the elements themselves.
func CountProperties(payload string) (int, error) {
	dec := json.NewDecoder(strings.NewReader(payload))

	tok, err := dec.Token()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return 0, ErrMalformedPayload
	}

	count := 0
	for dec.More() {
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return 0, fmt.Errorf("%w: element #%d: %w", ErrMalformedPayload, count+1, err)
		}
		count++
	}

	if _, err := dec.Token(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: trailing data after array", ErrMalformedPayload)
	}

	return count, nil
}

func StatusMessage(count int) string {
	return fmt.Sprintf("Success: %d Mars properties retrieved", count)
}
