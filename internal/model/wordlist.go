package model

import "time"

// Wordlist represents a stored custom wordlist in the database. Words are
// kept newline-joined in a single column and split on read.
type Wordlist struct {
	ID        int64
	UserID    int64
	Name      string
	Words     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateWordlistRequest uploads a named wordlist.
type CreateWordlistRequest struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// WordlistResponse is the full view of a stored wordlist.
type WordlistResponse struct {
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"created_at"`
}

// WordlistSummary omits the words themselves for listing.
type WordlistSummary struct {
	Name      string    `json:"name"`
	WordCount int       `json:"word_count"`
	CreatedAt time.Time `json:"created_at"`
}
