package model

// GenerateRequest represents a secret generation request.
type GenerateRequest struct {
	// Style is one of random, pin, hex, base64, passphrase. Empty defaults
	// to random.
	Style string `json:"style"`
	// Length counts characters for random/pin, bytes for hex/base64, words
	// for passphrase. Zero defaults to 20.
	Length int `json:"length"`
	// Count is how many secrets to produce. Zero defaults to 1.
	Count int `json:"count"`
	// Wordlist names a stored custom wordlist for passphrase style.
	Wordlist string `json:"wordlist,omitempty"`
	// NoAmbiguous removes visually confusable characters for random style.
	NoAmbiguous bool `json:"no_ambiguous"`
	// MinEntropyBits may grow the requested length. Pointer distinguishes
	// absent from zero.
	MinEntropyBits *float64 `json:"min_entropy_bits,omitempty"`
}

// GenerateResponse represents a secret generation response.
type GenerateResponse struct {
	Style   string   `json:"style"`
	Count   int      `json:"count"`
	Secrets []string `json:"secrets"`
	// EntropyBits estimates the strength of each produced secret, computed
	// from the first one.
	EntropyBits float64 `json:"entropy_bits"`
	Verdict     string  `json:"verdict"`
}
