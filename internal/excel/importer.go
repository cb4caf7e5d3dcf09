// Package excel imports vocabulary entries from spreadsheet files as an
// alternative to the line-oriented drill format.
package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/vocabtrainer/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath   string // Path to the Excel or CSV file
	TermColumn string // Column with the term
	SheetName  string // Name of the sheet to import
	StartRow   int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		TermColumn: "A",
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

// ImportEntries imports entries from an Excel or CSV file. The term column
// holds the term; every following non-empty cell becomes one phrase, with an
// optional ';'-separated comment inside the cell.
func ImportEntries(config ImportConfig) ([]*models.Entry, *ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel imports entries from an Excel file
func importFromExcel(config ImportConfig) ([]*models.Entry, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	termIdx := columnToIndex(config.TermColumn)

	var entries []*models.Entry
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		entry, err := rowToEntry(row, termIdx)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		entries = append(entries, entry)
		result.Imported++
	}
	return entries, result, nil
}

// importFromCSV imports entries from a CSV file
func importFromCSV(config ImportConfig) ([]*models.Entry, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	termIdx := columnToIndex(config.TermColumn)

	var entries []*models.Entry
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++

		entry, err := rowToEntry(row, termIdx)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		entries = append(entries, entry)
		result.Imported++
	}
	return entries, result, nil
}

// rowToEntry converts one spreadsheet row into an entry
func rowToEntry(row []string, termIdx int) (*models.Entry, error) {
	var term string
	if termIdx < len(row) {
		term = strings.TrimSpace(row[termIdx])
	}
	if term == "" {
		return nil, fmt.Errorf("term cannot be empty")
	}

	var phrases []models.Phrase
	for i, cell := range row {
		if i == termIdx {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		body, comment := cell, ""
		if idx := strings.Index(cell, ";"); idx >= 0 {
			body = cell[:idx]
			comment = cell[idx+1:]
		}
		phrases = append(phrases, models.Phrase{Body: body, Comment: comment})
	}
	return &models.Entry{Term: term, Phrases: phrases}, nil
}

// columnToIndex converts an Excel column letter to a zero-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
