package repository

import "testing"

func TestNewWordlistRepository(t *testing.T) {
	repo := NewWordlistRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil WordlistRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestJoinSplitWordsRoundTrip(t *testing.T) {
	words := []string{"apple", "banana", "cherry"}
	got := splitWords(joinWords(words))
	if len(got) != len(words) {
		t.Fatalf("round trip returned %d words, want %d", len(got), len(words))
	}
	for i, w := range words {
		if got[i] != w {
			t.Errorf("words[%d] = %q, want %q", i, got[i], w)
		}
	}
}

func TestSplitWordsDropsBlanks(t *testing.T) {
	got := splitWords("apple\n\n  \nbanana\n")
	if len(got) != 2 || got[0] != "apple" || got[1] != "banana" {
		t.Errorf("splitWords() = %v, want [apple banana]", got)
	}
}

func TestSplitWordsEmpty(t *testing.T) {
	if got := splitWords(""); len(got) != 0 {
		t.Errorf("splitWords(\"\") = %v, want empty", got)
	}
}
