package model

// EstimateRequest asks for an entropy estimate of a caller-supplied string.
type EstimateRequest struct {
	Input string `json:"input"`
	// Style is an optional hint. Empty defaults to random.
	Style string `json:"style,omitempty"`
}

// EntropyCheckResponse is the short form: bits and a verdict.
type EntropyCheckResponse struct {
	Bits    float64 `json:"bits"`
	Verdict string  `json:"verdict"`
}

// EntropyProfileResponse is the detailed breakdown behind an estimate.
type EntropyProfileResponse struct {
	Bits        float64 `json:"bits"`
	Verdict     string  `json:"verdict"`
	CharsetSize int     `json:"charset_size"`
	PerUnit     float64 `json:"per_unit_bits"`
	Length      int     `json:"length"`

	HasLower  bool `json:"has_lower"`
	HasUpper  bool `json:"has_upper"`
	HasDigit  bool `json:"has_digit"`
	HasSymbol bool `json:"has_symbol"`

	// Present for passphrase style only.
	WordCount           *int `json:"word_count,omitempty"`
	AssumedWordlistSize *int `json:"assumed_wordlist_size,omitempty"`
}
