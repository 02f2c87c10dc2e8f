package secret

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"strings"
)

var (
	ErrInvalidCharset = errors.New("invalid charset size for entropy calculation")
	ErrEmptyWordlist  = errors.New("wordlist is empty")
	ErrNegativeLength = errors.New("length must not be negative")
	ErrNegativeCount  = errors.New("count must not be negative")
)

// WordSource supplies candidate words for passphrase generation.
type WordSource interface {
	Words() ([]string, error)
}

// builtinWords is the fallback list used when no word source is given. Small
// on purpose — good enough for smoke tests, not for real passphrases.
var builtinWords = []string{
	"alpha", "bravo", "charlie", "delta", "echo",
	"foxtrot", "golf", "hotel", "india", "juliet",
}

// Options configures a GenerateMany call.
type Options struct {
	Style Style
	// Length counts characters for Random/Pin, bytes for Hex/Base64, words
	// for Passphrase.
	Length int
	// Count is the number of independent items to produce. Zero yields an
	// empty result.
	Count int
	// Words optionally supplies the passphrase wordlist. Nil falls back to
	// the builtin list.
	Words WordSource
	// NoAmbiguous removes visually confusable characters from the random
	// pool.
	NoAmbiguous bool
	// MinEntropyBits, when non-nil, may grow Length so the output reaches the
	// target. Not enforced for passphrases (no fixed charset).
	MinEntropyBits *float64
}

// GenerateMany produces opts.Count independently generated secrets. Items are
// not deduplicated across the batch.
func GenerateMany(opts Options) ([]string, error) {
	// The length and count fields are plain ints, so negatives are
	// representable; reject them before any allocation sizes off them.
	if opts.Length < 0 {
		return nil, ErrNegativeLength
	}
	if opts.Count < 0 {
		return nil, ErrNegativeCount
	}

	length := opts.Length

	if opts.MinEntropyBits != nil {
		if charset, ok := CharsetSize(opts.Style, opts.NoAmbiguous); ok {
			perUnit := math.Log2(float64(charset))
			if perUnit <= 0 {
				return nil, ErrInvalidCharset
			}
			needed := int(math.Ceil(*opts.MinEntropyBits / perUnit))
			if needed > length {
				slog.Info("increasing length to satisfy min-entropy target",
					"from", length, "to", needed, "min_entropy_bits", *opts.MinEntropyBits)
				length = needed
			}
		}
	}

	items := make([]string, 0, opts.Count)

	switch opts.Style {
	case StyleRandom:
		for i := 0; i < opts.Count; i++ {
			s, err := randomString(length, opts.NoAmbiguous)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	case StylePin:
		for i := 0; i < opts.Count; i++ {
			s, err := pinString(length)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	case StyleHex:
		for i := 0; i < opts.Count; i++ {
			s, err := hexString(length)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	case StyleBase64:
		for i := 0; i < opts.Count; i++ {
			s, err := base64String(length)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	case StylePassphrase:
		words, err := resolveWords(opts.Words)
		if err != nil {
			return nil, err
		}
		for i := 0; i < opts.Count; i++ {
			s, err := passphraseFrom(words, length)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStyle, opts.Style)
	}

	return items, nil
}

// randomString draws length characters uniformly from the printable pool,
// optionally with ambiguous characters removed. An exhausted pool yields an
// empty string, not an error.
func randomString(length int, noAmbiguous bool) (string, error) {
	pool := []rune(defaultPrintable)
	if noAmbiguous {
		kept := pool[:0]
		for _, c := range pool {
			if !strings.ContainsRune(ambiguousChars, c) {
				kept = append(kept, c)
			}
		}
		pool = kept
	}
	if len(pool) == 0 {
		return "", nil
	}

	out := make([]rune, length)
	for i := range out {
		n, err := randIndex(len(pool))
		if err != nil {
			return "", err
		}
		out[i] = pool[n]
	}
	return string(out), nil
}

// pinString draws length decimal digits. Leading zeros are kept.
func pinString(length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		n, err := randIndex(10)
		if err != nil {
			return "", err
		}
		out[i] = byte('0' + n)
	}
	return string(out), nil
}

// hexString renders byteLen random bytes as lowercase hex.
func hexString(byteLen int) (string, error) {
	buf, err := randBytes(byteLen)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// base64String renders byteLen random bytes as standard padded base64.
func base64String(byteLen int) (string, error) {
	buf, err := randBytes(byteLen)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// resolveWords returns the words from src, or the builtin fallback for a nil
// source. An empty resolved list is an error.
func resolveWords(src WordSource) ([]string, error) {
	words := builtinWords
	if src != nil {
		var err error
		words, err = src.Words()
		if err != nil {
			return nil, err
		}
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordlist
	}
	return words, nil
}

// passphraseFrom joins wordCount words drawn with replacement.
func passphraseFrom(words []string, wordCount int) (string, error) {
	picked := make([]string, wordCount)
	for i := range picked {
		n, err := randIndex(len(words))
		if err != nil {
			return "", err
		}
		picked[i] = words[n]
	}
	return strings.Join(picked, "-"), nil
}

// randIndex returns a uniform value in [0, n) using crypto/rand.
func randIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// randBytes fills a fresh buffer of size n from crypto/rand.
func randBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("reading random bytes: %w", err)
	}
	return buf, nil
}
