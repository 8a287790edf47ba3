// Package importer parses vocabulary uploads in xlsx or csv form into
// domain words. Parsing is storage-agnostic; callers decide what to do
// with the result.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lexitrain/backend/internal/domain/vocab"
	"github.com/lexitrain/backend/internal/id"
)

// Config defines which spreadsheet columns map onto word fields.
type Config struct {
	TextColumn     string
	MeaningColumn  string
	PhoneticColumn string
	ExampleColumn  string
	AudioColumn    string
	ImageColumn    string
	SheetName      string
	StartRow       int // 1-based, rows above it are treated as headers
}

// DefaultConfig returns the column layout used by the upload template.
func DefaultConfig() Config {
	return Config{
		TextColumn:     "A",
		MeaningColumn:  "B",
		PhoneticColumn: "C",
		ExampleColumn:  "D",
		AudioColumn:    "E",
		ImageColumn:    "F",
		SheetName:      "Sheet1",
		StartRow:       2,
	}
}

// Result summarizes what happened during a parse.
type Result struct {
	TotalProcessed int
	Skipped        int
	Errors         []string
}

// Parse reads words from r. The format is picked by file extension:
// ".csv" is parsed as CSV, everything else as xlsx.
func Parse(r io.Reader, filename string, cfg Config) ([]vocab.Word, *Result, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		return parseCSV(r, cfg)
	}
	return parseExcel(r, cfg)
}

func parseExcel(r io.Reader, cfg Config) ([]vocab.Word, *Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open xlsx file: %w", err)
	}
	defer f.Close()

	sheet := cfg.SheetName
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &Result{Errors: make([]string, 0)}
	words := make([]vocab.Word, 0, len(rows))

	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		result.TotalProcessed++

		word, err := rowToWord(row, cfg)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		words = append(words, word)
	}

	return words, result, nil
}

func parseCSV(r io.Reader, cfg Config) ([]vocab.Word, *Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	result := &Result{Errors: make([]string, 0)}
	var words []vocab.Word

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading csv: %w", err)
		}

		rowNum++
		if rowNum < cfg.StartRow {
			continue
		}
		result.TotalProcessed++

		word, err := rowToWord(row, cfg)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		words = append(words, word)
	}

	return words, result, nil
}

func rowToWord(row []string, cfg Config) (vocab.Word, error) {
	word := vocab.Word{
		ID:       id.GenerateID(),
		Text:     cellValue(row, cfg.TextColumn),
		Meaning:  cellValue(row, cfg.MeaningColumn),
		Phonetic: cellValue(row, cfg.PhoneticColumn),
		Example:  cellValue(row, cfg.ExampleColumn),
		AudioURL: cellValue(row, cfg.AudioColumn),
		ImageURL: cellValue(row, cfg.ImageColumn),
	}

	if word.Text == "" {
		return vocab.Word{}, fmt.Errorf("word text cannot be empty")
	}
	if word.Meaning == "" {
		return vocab.Word{}, fmt.Errorf("meaning cannot be empty")
	}
	return word, nil
}

func cellValue(row []string, column string) string {
	if column == "" {
		return ""
	}
	if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// columnToIndex converts an Excel column letter ("A", "AB") to a zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
