package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/husnabot/internal/database"
)

// setupImportDB points the global connection at an in-memory database with
// just the names table.
func setupImportDB(t *testing.T) {
	t.Helper()

	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE names (
			id BIGINT PRIMARY KEY,
			number INTEGER UNIQUE NOT NULL,
			transliteration TEXT NOT NULL,
			arabic TEXT NOT NULL,
			meaning TEXT NOT NULL,
			aliases TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		db.Close()
		database.DB = prev
	})
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportNamesFromCSV(t *testing.T) {
	setupImportDB(t)

	csv := "number,name,arabic,meaning,aliases\n" +
		"1,Ar-Rahman,الرحمن,The Most Merciful,\"Rahman, Rahmaan\"\n" +
		"2,Ar-Rahim,الرحيم,The Most Compassionate,Rahim\n" +
		"bad,Nope,,broken,\n" +
		"3,,,missing name and meaning,\n"

	config := DefaultImportConfig()
	config.FilePath = writeTempCSV(t, csv)

	result, err := ImportNames(config)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)

	names, err := database.NewNameRepository().GetAll()
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, "Ar-Rahman", names[0].Transliteration)
	assert.Equal(t, []string{"Rahman", "Rahmaan"}, names[0].Aliases)
}

func TestImportNamesUpsertsExistingNumbers(t *testing.T) {
	setupImportDB(t)

	config := DefaultImportConfig()
	config.FilePath = writeTempCSV(t, "number,name,arabic,meaning,aliases\n1,Ar-Rahman,الرحمن,old meaning,\n")
	_, err := ImportNames(config)
	require.NoError(t, err)

	config.FilePath = writeTempCSV(t, "number,name,arabic,meaning,aliases\n1,Ar-Rahman,الرحمن,new meaning,Rahman\n")
	result, err := ImportNames(config)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)

	got, err := database.NewNameRepository().GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "new meaning", got.Meaning)
	assert.Equal(t, []string{"Rahman"}, got.Aliases)
}

func TestImportNamesMissingFile(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "absent.csv")

	_, err := ImportNames(config)
	assert.Error(t, err)
}
