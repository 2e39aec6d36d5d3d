// Package codec wraps the base64 text encoding used for every payload.
package codec

import (
	"encoding/base64"

	"github.com/FocuswithJustin/fileencoder/core/errors"
)

// Encode returns the standard, padded, unwrapped base64 form of data.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode parses standard padded base64. Foreign characters and bad padding
// fail with ErrMalformedInput.
func Decode(text string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, &errors.ParseError{Format: "base64", Message: err.Error(), Err: err}
	}
	return data, nil
}
