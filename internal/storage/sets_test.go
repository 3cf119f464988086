package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubetimer/internal/scramble"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "test.db", filepath.Base(db.Path()))
}

func TestReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestCreateAndReadSet(t *testing.T) {
	repo := NewSetRepository(openTestDB(t))
	g := scramble.New(&scramble.Options{Seed: 21})

	var input []string
	for i := 0; i < 5; i++ {
		input = append(input, g.Competition())
	}

	id, err := repo.Create("round-1", string(scramble.KindCompetition), input)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	set, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "round-1", set.Name)
	assert.Equal(t, "competition", set.Kind)
	assert.Equal(t, 5, set.Count)
	assert.False(t, set.CreatedAt.IsZero())

	byName, err := repo.GetByName("round-1")
	require.NoError(t, err)
	assert.Equal(t, id, byName.SetID)

	got, err := repo.Scrambles(id)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestCreateNormalizesWhitespace(t *testing.T) {
	repo := NewSetRepository(openTestDB(t))
	id, err := repo.Create("messy", "practice", []string{"  R\tU  F'\n"})
	require.NoError(t, err)

	got, err := repo.Scrambles(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"R U F'"}, got)
}

func TestCreateRejectsInvalidScramble(t *testing.T) {
	db := openTestDB(t)
	repo := NewSetRepository(db)

	_, err := repo.Create("bad", "practice", []string{"R U", "R L R"})
	assert.ErrorIs(t, err, scramble.ErrInvalidScramble)

	sets, err := repo.List(10)
	require.NoError(t, err)
	assert.Empty(t, sets, "a rejected set must not be stored")

	_, err = repo.Create("", "practice", nil)
	assert.Error(t, err)
}

func TestDuplicateNameRollsBack(t *testing.T) {
	repo := NewSetRepository(openTestDB(t))
	_, err := repo.Create("dup", "long", []string{"R"})
	require.NoError(t, err)

	_, err = repo.Create("dup", "long", []string{"U"})
	assert.Error(t, err)

	sets, err := repo.List(10)
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestListAndDelete(t *testing.T) {
	repo := NewSetRepository(openTestDB(t))
	a, err := repo.Create("a", "practice", []string{"R U"})
	require.NoError(t, err)
	_, err = repo.Create("b", "practice", []string{"F", "B"})
	require.NoError(t, err)

	sets, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "b", sets[0].Name, "newest first")

	limited, err := repo.List(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, repo.Delete(a))
	_, err = repo.Get(a)
	assert.ErrorIs(t, err, ErrNotFound)

	scrambles, err := repo.Scrambles(a)
	require.NoError(t, err)
	assert.Empty(t, scrambles, "scrambles cascade with their set")

	assert.ErrorIs(t, repo.Delete(a), ErrNotFound)
}

func TestCreateRejectsEmptySet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSetRepository(db)

	_, err := repo.Create("empty", "practice", nil)
	assert.ErrorIs(t, err, ErrEmptySet)
	_, err = repo.Create("empty", "practice", []string{})
	assert.ErrorIs(t, err, ErrEmptySet)

	sets, err := repo.List(10)
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestOpenDefaultUsesHomeDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	db, err := OpenDefault()
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, filepath.Join(home, ".cubetimer", "scrambles.db"), db.Path())
	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
