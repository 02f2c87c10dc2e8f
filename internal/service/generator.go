package service

import (
	"context"
	"errors"

	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/repository"
	"github.com/genix/genix-go/internal/secret"
	"github.com/genix/genix-go/internal/wordlist"
)

var (
	ErrWordlistsUnavailable  = errors.New("wordlist storage is unavailable")
	ErrWordlistAuthRequired  = errors.New("authentication required to use a stored wordlist")
	ErrNamedWordlistNotFound = errors.New("wordlist not found")
)

const (
	defaultLength = 20
	defaultCount  = 1
)

// GeneratorService handles secret generation business logic.
type GeneratorService struct {
	wordlists *repository.WordlistRepository
}

// NewGeneratorService creates a new GeneratorService. The wordlist repository
// may be nil when the server runs without a database.
func NewGeneratorService(wordlists *repository.WordlistRepository) *GeneratorService {
	return &GeneratorService{wordlists: wordlists}
}

// Generate produces secrets per the request. userID is zero for anonymous
// callers; it is only needed when the request names a stored wordlist.
func (s *GeneratorService) Generate(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	styleName := req.Style
	if styleName == "" {
		styleName = string(secret.StyleRandom)
	}
	style, err := secret.ParseStyle(styleName)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	length := req.Length
	if length == 0 {
		length = defaultLength
	}
	count := req.Count
	if count == 0 {
		count = defaultCount
	}

	var words secret.WordSource
	if style == secret.StylePassphrase && req.Wordlist != "" {
		words, err = s.resolveStoredWordlist(ctx, userID, req.Wordlist)
		if err != nil {
			return model.GenerateResponse{}, err
		}
	}

	secrets, err := secret.GenerateMany(secret.Options{
		Style:          style,
		Length:         length,
		Count:          count,
		Words:          words,
		NoAmbiguous:    req.NoAmbiguous,
		MinEntropyBits: req.MinEntropyBits,
	})
	if err != nil {
		return model.GenerateResponse{}, err
	}

	resp := model.GenerateResponse{
		Style:   style.String(),
		Count:   len(secrets),
		Secrets: secrets,
	}
	if len(secrets) > 0 {
		bits, err := secret.Estimate(secrets[0], style)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		resp.EntropyBits = bits
		resp.Verdict = secret.Verdict(bits)
	}

	return resp, nil
}

// resolveStoredWordlist turns a named wordlist into a word source for the
// generator.
func (s *GeneratorService) resolveStoredWordlist(ctx context.Context, userID int64, name string) (secret.WordSource, error) {
	if s.wordlists == nil {
		return nil, ErrWordlistsUnavailable
	}
	if userID == 0 {
		return nil, ErrWordlistAuthRequired
	}

	wl, err := s.wordlists.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return nil, ErrNamedWordlistNotFound
		}
		return nil, err
	}

	return wordlist.Static(wl.Words), nil
}
