package importer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/lexitrain/backend/internal/importer"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, cell := range row {
			name, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", name, cell))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseExcel(t *testing.T) {
	buf := buildWorkbook(t, [][]string{
		{"Word", "Meaning", "Phonetic", "Example", "Audio", "Image"},
		{"apple", "quả táo", "/ˈæp.əl/", "I ate an apple.", "https://cdn/apple.mp3", ""},
		{"river", "dòng sông"},
		{"", "missing text"},
		{"orphan", ""},
	})

	words, result, err := importer.Parse(buf, "upload.xlsx", importer.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, words, 2)
	assert.Equal(t, "apple", words[0].Text)
	assert.Equal(t, "quả táo", words[0].Meaning)
	assert.Equal(t, "/ˈæp.əl/", words[0].Phonetic)
	assert.Equal(t, "I ate an apple.", words[0].Example)
	assert.Equal(t, "https://cdn/apple.mp3", words[0].AudioURL)
	assert.NotEmpty(t, words[0].ID)
	assert.Equal(t, "river", words[1].Text)

	assert.Equal(t, 4, result.TotalProcessed)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)
}

func TestParseCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"word,meaning,phonetic",
		"cat,con mèo,/kæt/",
		"dog,con chó",
		",no word here",
	}, "\n")

	words, result, err := importer.Parse(strings.NewReader(csvData), "words.csv", importer.DefaultConfig())
	require.NoError(t, err)

	require.Len(t, words, 2)
	assert.Equal(t, "cat", words[0].Text)
	assert.Equal(t, "con mèo", words[0].Meaning)
	assert.Equal(t, "/kæt/", words[0].Phonetic)
	assert.Equal(t, "dog", words[1].Text)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 1, result.Skipped)
}

func TestParseRejectsBrokenWorkbook(t *testing.T) {
	_, _, err := importer.Parse(strings.NewReader("not an xlsx"), "broken.xlsx", importer.DefaultConfig())
	assert.Error(t, err)
}
