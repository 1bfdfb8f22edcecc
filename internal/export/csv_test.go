package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffl-projections/internal/domain"
)

func f(v float64) *float64 { return &v }

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSVHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rows.csv")
	rows := []domain.Row{
		{PlayerID: 1, Name: "Alpha", PositionID: 1, TeamID: 10, Season: 2025, ProjPoints: f(123.4)},
		{PlayerID: 2, Name: "Bravo, Jr.", PositionID: 2, TeamID: 11, Season: 2025},
	}

	require.NoError(t, WriteCSV(path, rows))

	records := readAll(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{"1", "Alpha", "1", "10", "2025", "123.4"}, records[1])
	assert.Equal(t, []string{"2", "Bravo, Jr.", "2", "11", "2025", ""}, records[2])
}

func TestWriteCSVZeroIsNotEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	rows := []domain.Row{
		{PlayerID: 3, Name: "Zed", Season: 2025, ProjPoints: f(0)},
	}

	require.NoError(t, WriteCSV(path, rows))

	records := readAll(t, path)
	assert.Equal(t, "0", records[1][5])
}

func TestWriteCSVOverwritesPriorRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, WriteCSV(path, []domain.Row{{PlayerID: 1, Name: "Old", Season: 2024}}))
	require.NoError(t, WriteCSV(path, []domain.Row{{PlayerID: 2, Name: "New", Season: 2025}}))

	records := readAll(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "New", records[1][1])
}

func TestWriteCSVLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.csv")
	require.NoError(t, WriteCSV(path, nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "rows.csv", entries[0].Name())
}

func TestWriteCSVEmptyRowsStillWritesHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, WriteCSV(path, nil))

	records := readAll(t, path)
	require.Len(t, records, 1)
	assert.Equal(t, Header, records[0])
}
