package secret

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

// defaultPrintable is the fixed pool used by the random style. Its length is
// also the charset-size hint for that style.
const defaultPrintable = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*()-_=+[]{};:,.<>?/`~"

// ambiguousChars are visually confusable characters removed when a caller
// asks for no-ambiguous output.
const ambiguousChars = "1lI0O|"

// Per-class charset contributions used by the estimator. These are fixed
// approximations, not exact counts of distinct symbols seen.
const (
	lowerClassSize  = 26
	upperClassSize  = 26
	digitClassSize  = 10
	symbolClassSize = 32
)

// assumedWordlistSize is what the estimator assumes for passphrases
// regardless of the wordlist actually used at generation time.
const assumedWordlistSize = 2048

var ErrEntropyUndetermined = errors.New("cannot determine charset size for entropy estimation")

// CharsetSize returns a conservative charset-size hint for a style. The
// second return is false for styles without a fixed charset (passphrase) and
// for unrecognized styles.
func CharsetSize(style Style, noAmbiguous bool) (int, bool) {
	switch style {
	case StyleRandom:
		size := utf8.RuneCountInString(defaultPrintable)
		if noAmbiguous {
			size -= len(ambiguousChars)
		}
		return size, true
	case StylePin:
		return 10, true
	case StyleHex:
		return 16, true
	case StyleBase64:
		return 64, true
	default:
		return 0, false
	}
}

// Profile is the detailed result of an entropy estimate.
type Profile struct {
	// Bits is the estimated total entropy.
	Bits float64
	// CharsetSize is the detected or hinted charset size. For passphrases it
	// is the assumed wordlist size.
	CharsetSize int
	// PerUnit is the entropy per character, or per word for passphrases.
	PerUnit float64
	// Length counts characters, or words for passphrases.
	Length int

	// Character classes observed in the input. Always false for passphrases.
	HasLower  bool
	HasUpper  bool
	HasDigit  bool
	HasSymbol bool

	// Populated for passphrase style only.
	WordCount           int
	AssumedWordlistSize int
}

// Estimate returns the estimated entropy of s in bits, using word counting
// for the passphrase style and character-class detection otherwise.
func Estimate(s string, style Style) (float64, error) {
	p, err := EstimateDetailed(s, style)
	if err != nil {
		return 0, err
	}
	return p.Bits, nil
}

// EstimateDetailed computes the full entropy profile for s.
//
// The heuristic is deliberately crude: detected character classes contribute
// fixed sizes (26/26/10/32) and passphrases assume a 2048-word list. It is
// meant for fast interactive feedback, not password auditing.
func EstimateDetailed(s string, style Style) (Profile, error) {
	if style == StylePassphrase {
		words := 0
		for _, w := range strings.Split(s, "-") {
			if w != "" {
				words++
			}
		}
		perWord := math.Log2(assumedWordlistSize)
		return Profile{
			Bits:                perWord * float64(words),
			CharsetSize:         assumedWordlistSize,
			PerUnit:             perWord,
			Length:              words,
			WordCount:           words,
			AssumedWordlistSize: assumedWordlistSize,
		}, nil
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z':
			hasLower = true
		case ch >= 'A' && ch <= 'Z':
			hasUpper = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		default:
			// space, punctuation, non-ASCII — all count as one symbol class
			hasSymbol = true
		}
	}

	charset := 0
	if hasLower {
		charset += lowerClassSize
	}
	if hasUpper {
		charset += upperClassSize
	}
	if hasDigit {
		charset += digitClassSize
	}
	if hasSymbol {
		charset += symbolClassSize
	}

	// Detection failed (e.g. empty input): fall back to the style hint.
	if charset < 2 {
		if hint, ok := CharsetSize(style, false); ok {
			charset = hint
		}
	}
	if charset < 2 {
		return Profile{}, ErrEntropyUndetermined
	}

	perChar := math.Log2(float64(charset))
	length := utf8.RuneCountInString(s)
	return Profile{
		Bits:        perChar * float64(length),
		CharsetSize: charset,
		PerUnit:     perChar,
		Length:      length,
		HasLower:    hasLower,
		HasUpper:    hasUpper,
		HasDigit:    hasDigit,
		HasSymbol:   hasSymbol,
	}, nil
}

// Verdict maps an entropy estimate to a human-readable strength label.
func Verdict(bits float64) string {
	switch {
	case bits < 40:
		return "very weak"
	case bits < 64:
		return "weak"
	case bits < 80:
		return "fair"
	case bits < 128:
		return "strong"
	default:
		return "very strong"
	}
}
