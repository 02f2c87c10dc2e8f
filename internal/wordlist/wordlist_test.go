package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp wordlist: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempList(t, "apple\nbanana\ncherry\n")

	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	if len(words) != len(want) {
		t.Fatalf("Load() returned %d words, want %d", len(words), len(want))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("words[%d] = %q, want %q", i, words[i], w)
		}
	}
}

func TestLoadTrimsAndDropsBlanks(t *testing.T) {
	path := writeTempList(t, "  apple  \n\n\t\nbanana\n   \n")

	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(words) != 2 || words[0] != "apple" || words[1] != "banana" {
		t.Errorf("Load() = %v, want [apple banana]", words)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTempList(t, "")

	words, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Load() = %v, want empty", words)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Load() error = %v, want ErrUnreadable", err)
	}
}

func TestFileSource(t *testing.T) {
	path := writeTempList(t, "one\ntwo\n")

	words, err := File{Path: path}.Words()
	if err != nil {
		t.Fatalf("Words() unexpected error: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("Words() returned %d words, want 2", len(words))
	}
}

func TestStaticSource(t *testing.T) {
	words, err := Static{"one", "two"}.Words()
	if err != nil {
		t.Fatalf("Words() unexpected error: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("Words() returned %d words, want 2", len(words))
	}
}
