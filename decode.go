package fundtrend

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode returns the text of an export. UTF-8 content is used as is (without BOM),
// anything else is decoded as Shift_JIS, the brokerage's default export encoding.
func Decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	text, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("failed to decode Shift_JIS content: %w", err)
	}
	return string(text), nil
}
