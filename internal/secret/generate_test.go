package secret

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

type staticWords []string

func (s staticWords) Words() ([]string, error) { return s, nil }

type failingWords struct{ err error }

func (f failingWords) Words() ([]string, error) { return nil, f.err }

func TestGenerateManyCount(t *testing.T) {
	for _, style := range []Style{StyleRandom, StylePin, StyleHex, StyleBase64, StylePassphrase} {
		items, err := GenerateMany(Options{Style: style, Length: 8, Count: 5})
		if err != nil {
			t.Fatalf("GenerateMany(%q) unexpected error: %v", style, err)
		}
		if len(items) != 5 {
			t.Errorf("GenerateMany(%q) returned %d items, want 5", style, len(items))
		}
	}
}

func TestGenerateManyZeroCount(t *testing.T) {
	items, err := GenerateMany(Options{Style: StyleRandom, Length: 8, Count: 0})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("GenerateMany() with count 0 returned %d items", len(items))
	}
}

func TestGenerateManyNegativeLength(t *testing.T) {
	for _, style := range []Style{StyleRandom, StylePin, StyleHex, StyleBase64, StylePassphrase} {
		_, err := GenerateMany(Options{Style: style, Length: -1, Count: 1})
		if !errors.Is(err, ErrNegativeLength) {
			t.Errorf("GenerateMany(%q, length -1) error = %v, want ErrNegativeLength", style, err)
		}
	}
}

func TestGenerateManyNegativeCount(t *testing.T) {
	_, err := GenerateMany(Options{Style: StylePin, Length: 6, Count: -1})
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("GenerateMany(count -1) error = %v, want ErrNegativeCount", err)
	}
}

func TestGenerateRandomLength(t *testing.T) {
	items, err := GenerateMany(Options{Style: StyleRandom, Length: 16, Count: 3})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		if len(item) != 16 {
			t.Errorf("random item length = %d, want 16", len(item))
		}
		for _, ch := range item {
			if !strings.ContainsRune(defaultPrintable, ch) {
				t.Errorf("random item contains %q outside the printable pool", ch)
			}
		}
	}
}

func TestGenerateRandomNoAmbiguous(t *testing.T) {
	// Enough draws that an ambiguous character would almost surely appear if
	// the filter were broken.
	items, err := GenerateMany(Options{Style: StyleRandom, Length: 512, Count: 2, NoAmbiguous: true})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		if strings.ContainsAny(item, ambiguousChars) {
			t.Errorf("no-ambiguous item contains an ambiguous character: %q", item)
		}
	}
}

func TestGeneratePin(t *testing.T) {
	items, err := GenerateMany(Options{Style: StylePin, Length: 6, Count: 4})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		if len(item) != 6 {
			t.Errorf("pin length = %d, want 6", len(item))
		}
		for _, ch := range item {
			if ch < '0' || ch > '9' {
				t.Errorf("pin contains non-digit %q", ch)
			}
		}
	}
}

func TestGenerateHex(t *testing.T) {
	items, err := GenerateMany(Options{Style: StyleHex, Length: 4, Count: 2})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		if len(item) != 8 {
			t.Errorf("hex item length = %d, want 8 (2 per byte)", len(item))
		}
		if _, err := hex.DecodeString(item); err != nil {
			t.Errorf("hex item %q does not decode: %v", item, err)
		}
		if item != strings.ToLower(item) {
			t.Errorf("hex item %q is not lowercase", item)
		}
	}
}

func TestGenerateBase64(t *testing.T) {
	items, err := GenerateMany(Options{Style: StyleBase64, Length: 3, Count: 2})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		if len(item) < 4 {
			t.Errorf("base64 item length = %d, want >= 4", len(item))
		}
		buf, err := base64.StdEncoding.DecodeString(item)
		if err != nil {
			t.Errorf("base64 item %q does not decode: %v", item, err)
		}
		if len(buf) != 3 {
			t.Errorf("base64 item decodes to %d bytes, want 3", len(buf))
		}
	}
}

func TestGeneratePassphraseBuiltinFallback(t *testing.T) {
	items, err := GenerateMany(Options{Style: StylePassphrase, Length: 4, Count: 3})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		words := strings.Split(item, "-")
		if len(words) != 4 {
			t.Errorf("passphrase %q has %d words, want 4", item, len(words))
		}
		for _, w := range words {
			found := false
			for _, b := range builtinWords {
				if w == b {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("passphrase word %q not in builtin list", w)
			}
		}
	}
}

func TestGeneratePassphraseCustomSource(t *testing.T) {
	items, err := GenerateMany(Options{
		Style:  StylePassphrase,
		Length: 3,
		Count:  2,
		Words:  staticWords{"one", "two", "three"},
	})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	for _, item := range items {
		for _, w := range strings.Split(item, "-") {
			if w != "one" && w != "two" && w != "three" {
				t.Errorf("unexpected word %q from custom source", w)
			}
		}
	}
}

func TestGeneratePassphraseEmptyWordlist(t *testing.T) {
	_, err := GenerateMany(Options{Style: StylePassphrase, Length: 4, Count: 1, Words: staticWords{}})
	if !errors.Is(err, ErrEmptyWordlist) {
		t.Errorf("GenerateMany() error = %v, want ErrEmptyWordlist", err)
	}
}

func TestGeneratePassphraseSourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := GenerateMany(Options{Style: StylePassphrase, Length: 4, Count: 1, Words: failingWords{err: boom}})
	if !errors.Is(err, boom) {
		t.Errorf("GenerateMany() error = %v, want wrapped source error", err)
	}
}

func TestGenerateUnknownStyle(t *testing.T) {
	_, err := GenerateMany(Options{Style: Style("bogus"), Length: 8, Count: 1})
	if !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("GenerateMany() error = %v, want ErrUnknownStyle", err)
	}
	if err != nil && !strings.Contains(err.Error(), "bogus") {
		t.Errorf("GenerateMany() error %q should name the style", err)
	}
}

func TestGenerateMinEntropyGrowsLength(t *testing.T) {
	// ceil(40 / log2(10)) = 13 digits.
	bits := 40.0
	items, err := GenerateMany(Options{Style: StylePin, Length: 6, Count: 1, MinEntropyBits: &bits})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("GenerateMany() returned %d items, want 1", len(items))
	}
	if len(items[0]) < 13 {
		t.Errorf("pin length = %d, want >= 13 for 40-bit target", len(items[0]))
	}
}

func TestGenerateMinEntropyKeepsLongerLength(t *testing.T) {
	// Already long enough: the request is not shrunk.
	bits := 10.0
	items, err := GenerateMany(Options{Style: StylePin, Length: 20, Count: 1, MinEntropyBits: &bits})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	if len(items[0]) != 20 {
		t.Errorf("pin length = %d, want 20", len(items[0]))
	}
}

func TestGenerateMinEntropySkippedForPassphrase(t *testing.T) {
	// Passphrases have no charset hint, so the target is ignored.
	bits := 500.0
	items, err := GenerateMany(Options{Style: StylePassphrase, Length: 2, Count: 1, MinEntropyBits: &bits})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	if got := len(strings.Split(items[0], "-")); got != 2 {
		t.Errorf("passphrase words = %d, want 2 (min-entropy not applied)", got)
	}
}

func TestGenerateItemsAreIndependent(t *testing.T) {
	items, err := GenerateMany(Options{Style: StyleRandom, Length: 24, Count: 20})
	if err != nil {
		t.Fatalf("GenerateMany() unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	dupes := 0
	for _, item := range items {
		if seen[item] {
			dupes++
		}
		seen[item] = true
	}
	// Duplicates at this length would indicate a broken randomness source.
	if dupes > 0 {
		t.Errorf("found %d duplicate 24-char secrets in 20 draws", dupes)
	}
}
