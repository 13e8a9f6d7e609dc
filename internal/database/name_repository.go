package database

import (
	"fmt"
	"strings"

	"github.com/example/husnabot/pkg/models"
)

// NameRepository handles database operations for catalog names
type NameRepository struct{}

// NewNameRepository creates a new repository instance
func NewNameRepository() *NameRepository {
	return &NameRepository{}
}

// nameRow is the storage form of a Name; aliases live in one TEXT column.
type nameRow struct {
	models.Name
	AliasesRaw string `db:"aliases"`
}

func (r nameRow) toModel() models.Name {
	n := r.Name
	n.Aliases = splitAliases(r.AliasesRaw)
	return n
}

func splitAliases(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinAliases(aliases []string) string {
	return strings.Join(aliases, ",")
}

// GetAll returns the full catalog in traditional order
func (r *NameRepository) GetAll() ([]models.Name, error) {
	var rows []nameRow
	err := DB.Select(&rows, "SELECT * FROM names ORDER BY number")
	if err != nil {
		return nil, fmt.Errorf("failed to get names: %v", err)
	}
	names := make([]models.Name, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.toModel())
	}
	return names, nil
}

// GetByID returns a name by ID
func (r *NameRepository) GetByID(id int64) (*models.Name, error) {
	var row nameRow
	err := DB.Get(&row, DB.Rebind("SELECT * FROM names WHERE id = ?"), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get name by ID: %v", err)
	}
	n := row.toModel()
	return &n, nil
}

// Upsert inserts a name or updates the existing row with the same number
func (r *NameRepository) Upsert(name *models.Name) error {
	query := DB.Rebind(`
		INSERT INTO names (id, number, transliteration, arabic, meaning, aliases)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (number) DO UPDATE SET
			transliteration = EXCLUDED.transliteration,
			arabic = EXCLUDED.arabic,
			meaning = EXCLUDED.meaning,
			aliases = EXCLUDED.aliases,
			updated_at = CURRENT_TIMESTAMP
	`)
	_, err := DB.Exec(query,
		name.ID,
		name.Number,
		name.Transliteration,
		name.Arabic,
		name.Meaning,
		joinAliases(name.Aliases),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert name: %v", err)
	}
	return nil
}

// Seed fills an empty names table from the given catalog snapshot. A table
// that already holds rows is left untouched.
func (r *NameRepository) Seed(names []models.Name) error {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM names"); err != nil {
		return fmt.Errorf("failed to count names: %v", err)
	}
	if count > 0 {
		return nil
	}
	for i := range names {
		if err := r.Upsert(&names[i]); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the catalog size
func (r *NameRepository) Count() (int, error) {
	var count int
	if err := DB.Get(&count, "SELECT COUNT(*) FROM names"); err != nil {
		return 0, fmt.Errorf("failed to count names: %v", err)
	}
	return count, nil
}
