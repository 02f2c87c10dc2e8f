// Package wordlist loads candidate words for passphrase generation from
// newline-delimited files and adapts them to the generator's WordSource
// contract.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrUnreadable = errors.New("wordlist unreadable")

// Load reads a newline-delimited wordlist. Lines are trimmed and blank lines
// dropped; order is preserved.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w != "" {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	return words, nil
}

// File is a WordSource backed by a file on disk, read fresh on each use.
type File struct {
	Path string
}

// Words loads the file contents.
func (f File) Words() ([]string, error) {
	return Load(f.Path)
}

// Static is a WordSource over an in-memory list.
type Static []string

// Words returns the list as-is.
func (s Static) Words() ([]string, error) {
	return s, nil
}
