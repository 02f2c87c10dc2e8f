package service

import (
	"context"
	"errors"
	"strings"

	"github.com/genix/genix-go/internal/model"
	"github.com/genix/genix-go/internal/repository"
)

var (
	ErrWordlistNameRequired = errors.New("wordlist name is required")
	ErrWordlistNameTooLong  = errors.New("wordlist name must be at most 64 characters")
	ErrWordlistEmpty        = errors.New("wordlist must contain at least one word")
	ErrWordlistNotFound     = errors.New("wordlist not found")
	ErrWordlistNameTaken    = errors.New("wordlist name already taken")
)

const maxWordlistNameLen = 64

// WordlistService handles stored wordlist business logic.
type WordlistService struct {
	repo *repository.WordlistRepository
}

// NewWordlistService creates a new WordlistService.
func NewWordlistService(repo *repository.WordlistRepository) *WordlistService {
	return &WordlistService{repo: repo}
}

// Create validates and stores a named wordlist for a user.
func (s *WordlistService) Create(ctx context.Context, userID int64, req model.CreateWordlistRequest) (model.WordlistResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.WordlistResponse{}, ErrWordlistNameRequired
	}
	if len(name) > maxWordlistNameLen {
		return model.WordlistResponse{}, ErrWordlistNameTooLong
	}

	words := cleanWords(req.Words)
	if len(words) == 0 {
		return model.WordlistResponse{}, ErrWordlistEmpty
	}

	wl := &model.Wordlist{
		UserID: userID,
		Name:   name,
		Words:  words,
	}
	if err := s.repo.Create(ctx, wl); err != nil {
		if errors.Is(err, repository.ErrDuplicateWordlist) {
			return model.WordlistResponse{}, ErrWordlistNameTaken
		}
		return model.WordlistResponse{}, err
	}

	return wordlistToResponse(wl), nil
}

// Get returns one of a user's wordlists by name.
func (s *WordlistService) Get(ctx context.Context, userID int64, name string) (model.WordlistResponse, error) {
	wl, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, repository.ErrWordlistNotFound) {
			return model.WordlistResponse{}, ErrWordlistNotFound
		}
		return model.WordlistResponse{}, err
	}

	return wordlistToResponse(wl), nil
}

// List returns summaries of all of a user's wordlists.
func (s *WordlistService) List(ctx context.Context, userID int64) ([]model.WordlistSummary, error) {
	lists, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.WordlistSummary, 0, len(lists))
	for _, wl := range lists {
		summaries = append(summaries, model.WordlistSummary{
			Name:      wl.Name,
			WordCount: len(wl.Words),
			CreatedAt: wl.CreatedAt,
		})
	}

	return summaries, nil
}

// Delete removes one of a user's wordlists by name.
func (s *WordlistService) Delete(ctx context.Context, userID int64, name string) error {
	err := s.repo.Delete(ctx, userID, name)
	if errors.Is(err, repository.ErrWordlistNotFound) {
		return ErrWordlistNotFound
	}
	return err
}

// cleanWords trims entries and drops blanks, mirroring the file loader.
func cleanWords(words []string) []string {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}
	return cleaned
}

func wordlistToResponse(wl *model.Wordlist) model.WordlistResponse {
	return model.WordlistResponse{
		Name:      wl.Name,
		WordCount: len(wl.Words),
		Words:     wl.Words,
		CreatedAt: wl.CreatedAt,
	}
}
