package secret

import (
	"errors"
	"fmt"
)

// Style selects a generation mode. The meaning of a request's length depends
// on the style: characters for Random and Pin, bytes for Hex and Base64,
// word count for Passphrase.
type Style string

const (
	StyleRandom     Style = "random"
	StylePin        Style = "pin"
	StyleHex        Style = "hex"
	StyleBase64     Style = "base64"
	StylePassphrase Style = "passphrase"
)

var ErrUnknownStyle = errors.New("unknown style")

// ParseStyle converts a style name into a Style, failing on anything outside
// the five recognized modes.
func ParseStyle(name string) (Style, error) {
	switch Style(name) {
	case StyleRandom, StylePin, StyleHex, StyleBase64, StylePassphrase:
		return Style(name), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownStyle, name)
	}
}

// String returns the style name.
func (s Style) String() string {
	return string(s)
}
