package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

// timeLayout sorts lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ScrambleSet is a named, ordered group of scrambles.
type ScrambleSet struct {
	SetID     string
	Name      string
	Kind      string
	CreatedAt time.Time
	Count     int
}

// SetRepository provides CRUD operations for scramble sets.
type SetRepository struct {
	db *DB
}

// NewSetRepository creates a new scramble set repository.
func NewSetRepository(db *DB) *SetRepository {
	return &SetRepository{db: db}
}

// Create stores a new set and returns its ID. The set must hold at least
// one scramble and every scramble must pass scramble.Check; the first
// failure aborts the whole set.
func (r *SetRepository) Create(name, kind string, scrambles []string) (string, error) {
	if name == "" {
		return "", errors.New("storage: scramble set name is required")
	}
	if len(scrambles) == 0 {
		return "", fmt.Errorf("%w: %q", ErrEmptySet, name)
	}

	for i, s := range scrambles {
		if err := scramble.Check(s); err != nil {
			return "", fmt.Errorf("scramble %d: %w", i+1, err)
		}
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scramble_sets (set_id, name, kind, created_at)
			VALUES (?, ?, ?, ?)
		`, id, name, kind, createdAt.Format(timeLayout))
		if err != nil {
			return fmt.Errorf("failed to create scramble set: %w", err)
		}

		for i, s := range scrambles {
			_, err := tx.Exec(`
				INSERT INTO scrambles (set_id, seq, text)
				VALUES (?, ?, ?)
			`, id, i+1, scramble.Format(s))
			if err != nil {
				return fmt.Errorf("failed to insert scramble %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

const selectSet = `
	SELECT s.set_id, s.name, s.kind, s.created_at,
	       (SELECT COUNT(*) FROM scrambles c WHERE c.set_id = s.set_id)
	FROM scramble_sets s
`

// Get retrieves a set by ID.
func (r *SetRepository) Get(setID string) (*ScrambleSet, error) {
	return r.getOne(selectSet+"WHERE s.set_id = ?", setID)
}

// GetByName retrieves a set by its unique name.
func (r *SetRepository) GetByName(name string) (*ScrambleSet, error) {
	return r.getOne(selectSet+"WHERE s.name = ?", name)
}

func (r *SetRepository) getOne(query string, arg string) (*ScrambleSet, error) {
	set, err := scanSet(r.db.QueryRow(query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("scramble set %q: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble set: %w", err)
	}
	return set, nil
}

// List returns up to limit sets, newest first.
func (r *SetRepository) List(limit int) ([]ScrambleSet, error) {
	rows, err := r.db.Query(selectSet+"ORDER BY s.created_at DESC, s.rowid DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scramble sets: %w", err)
	}
	defer rows.Close()

	var sets []ScrambleSet
	for rows.Next() {
		set, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble set: %w", err)
		}
		sets = append(sets, *set)
	}

	return sets, rows.Err()
}

// Scrambles returns the scrambles of a set in stored order.
func (r *SetRepository) Scrambles(setID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT text FROM scrambles
		WHERE set_id = ?
		ORDER BY seq
	`, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to get scrambles: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		out = append(out, text)
	}

	return out, rows.Err()
}

// Delete removes a set and its scrambles.
func (r *SetRepository) Delete(setID string) error {
	result, err := r.db.Exec("DELETE FROM scramble_sets WHERE set_id = ?", setID)
	if err != nil {
		return fmt.Errorf("failed to delete scramble set: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("scramble set %q: %w", setID, ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSet(row rowScanner) (*ScrambleSet, error) {
	var s ScrambleSet
	var createdAt string
	if err := row.Scan(&s.SetID, &s.Name, &s.Kind, &createdAt, &s.Count); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = t

	return &s, nil
}
