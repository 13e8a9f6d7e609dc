package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/husnabot/internal/database"
	"github.com/example/husnabot/pkg/models"
	"github.com/xuri/excelize/v2"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath     string // Path to the Excel or CSV file
	NumberCol    string // Column with the list position (1-99)
	NameCol      string // Column with the transliteration
	ArabicCol    string // Column with the Arabic script form
	MeaningCol   string // Column with the meaning
	AliasesCol   string // Column with comma-separated aliases
	SheetName    string // Name of the sheet to import
	StartRow     int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		NumberCol:  "A",
		NameCol:    "B",
		ArabicCol:  "C",
		MeaningCol: "D",
		AliasesCol: "E",
		SheetName:  "Sheet1",
		StartRow:   2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// ImportNames imports catalog entries from an Excel or CSV file and upserts
// them into the database.
func ImportNames(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports catalog entries from an Excel file
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %v", config.SheetName, err)
	}

	result := &ImportResult{}
	repo := database.NewNameRepository()

	colIdx := func(col string) int {
		idx, err := excelize.ColumnNameToNumber(col)
		if err != nil {
			return -1
		}
		return idx - 1
	}
	cell := func(row []string, col string) string {
		idx := colIdx(col)
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for i, row := range rows {
		if i+1 < config.StartRow {
			continue
		}
		result.TotalProcessed++

		record := [5]string{
			cell(row, config.NumberCol),
			cell(row, config.NameCol),
			cell(row, config.ArabicCol),
			cell(row, config.MeaningCol),
			cell(row, config.AliasesCol),
		}
		importRecord(repo, record, i+1, result)
	}
	return result, nil
}

// importFromCSV imports catalog entries from a CSV file with the column
// order number, transliteration, arabic, meaning, aliases.
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	f, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{}
	repo := database.NewNameRepository()

	for line := 1; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if line < config.StartRow {
			continue
		}
		result.TotalProcessed++

		var record [5]string
		for i := 0; i < len(record) && i < len(row); i++ {
			record[i] = strings.TrimSpace(row[i])
		}
		importRecord(repo, record, line, result)
	}
	return result, nil
}

// importRecord validates one parsed row and upserts it.
func importRecord(repo *database.NameRepository, record [5]string, line int, result *ImportResult) {
	number, err := strconv.Atoi(record[0])
	if err != nil || number < 1 {
		result.Skipped++
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid number %q", line, record[0]))
		return
	}
	if record[1] == "" || record[3] == "" {
		result.Skipped++
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing transliteration or meaning", line))
		return
	}

	name := models.Name{
		ID:              int64(number),
		Number:          number,
		Transliteration: record[1],
		Arabic:          record[2],
		Meaning:         record[3],
	}
	if record[4] != "" {
		for _, a := range strings.Split(record[4], ",") {
			if a = strings.TrimSpace(a); a != "" {
				name.Aliases = append(name.Aliases, a)
			}
		}
	}

	if err := repo.Upsert(&name); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}
	result.Imported++
}
