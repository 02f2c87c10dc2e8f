package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/genix/genix-go/internal/model"
)

var (
	ErrWordlistNotFound  = errors.New("wordlist not found")
	ErrDuplicateWordlist = errors.New("wordlist name already exists")
)

// WordlistRepository handles stored custom wordlist persistence.
type WordlistRepository struct {
	db *sql.DB
}

// NewWordlistRepository creates a new WordlistRepository.
func NewWordlistRepository(db *sql.DB) *WordlistRepository {
	return &WordlistRepository{db: db}
}

// Create inserts a new wordlist and sets the generated ID. Names are unique
// per user.
func (r *WordlistRepository) Create(ctx context.Context, wl *model.Wordlist) error {
	query := `INSERT INTO wordlists (user_id, name, words) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, wl.UserID, wl.Name, joinWords(wl.Words))
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateWordlist
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	wl.ID = id
	return nil
}

// GetByName retrieves one of a user's wordlists by name.
func (r *WordlistRepository) GetByName(ctx context.Context, userID int64, name string) (*model.Wordlist, error) {
	query := `SELECT id, user_id, name, words, created_at, updated_at
		FROM wordlists WHERE user_id = ? AND name = ?`

	wl := &model.Wordlist{}
	var raw string
	err := r.db.QueryRowContext(ctx, query, userID, name).Scan(
		&wl.ID, &wl.UserID, &wl.Name, &raw, &wl.CreatedAt, &wl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWordlistNotFound
		}
		return nil, err
	}

	wl.Words = splitWords(raw)
	return wl, nil
}

// ListByUser returns all of a user's wordlists, words included.
func (r *WordlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.Wordlist, error) {
	query := `SELECT id, user_id, name, words, created_at, updated_at
		FROM wordlists WHERE user_id = ? ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []model.Wordlist
	for rows.Next() {
		var wl model.Wordlist
		var raw string
		if err := rows.Scan(&wl.ID, &wl.UserID, &wl.Name, &raw, &wl.CreatedAt, &wl.UpdatedAt); err != nil {
			return nil, err
		}
		wl.Words = splitWords(raw)
		lists = append(lists, wl)
	}

	return lists, rows.Err()
}

// Delete removes one of a user's wordlists by name.
func (r *WordlistRepository) Delete(ctx context.Context, userID int64, name string) error {
	query := `DELETE FROM wordlists WHERE user_id = ? AND name = ?`

	result, err := r.db.ExecContext(ctx, query, userID, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWordlistNotFound
	}

	return nil
}

// joinWords packs words into the single-column storage form.
func joinWords(words []string) string {
	return strings.Join(words, "\n")
}

// splitWords unpacks the storage form, dropping blank lines the same way the
// file loader does.
func splitWords(raw string) []string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		w := strings.TrimSpace(line)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
