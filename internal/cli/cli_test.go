package cli

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `{"players":[
 {"player":{"id":7,"fullName":"Starter","defaultPositionId":1,"proTeamId":9,"stats":[
   {"scoringPeriodId":0,"statSplitTypeId":0,"statSourceId":1,"appliedTotal":301.5}]}}
]}`

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	return cmd.Execute()
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestFetchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.Contains(r.URL.RawQuery, "kona_player_info"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "raw.json")
	csvPath := filepath.Join(dir, "rows.csv")

	err := run(t, "fetch",
		"--base-url", srv.URL,
		"--swid", "{S}",
		"--espn-s2", "tok",
		"--season", "2025",
		"--out-json", jsonPath,
		"--out-csv", csvPath,
		"--debug-dir", filepath.Join(dir, "debug"),
	)
	require.NoError(t, err)

	raw, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))

	rows := readRows(t, csvPath)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"7", "Starter", "1", "9", "2025", "301.5"}, rows[1])
}

func TestFetchCommandFailsWithoutCredentials(t *testing.T) {
	t.Setenv("ESPN_SWID", "")
	t.Setenv("ESPN_S2", "")

	dir := t.TempDir()
	err := run(t, "fetch",
		"--season", "2025",
		"--out-json", filepath.Join(dir, "raw.json"),
		"--out-csv", filepath.Join(dir, "rows.csv"),
		"--debug-dir", filepath.Join(dir, "debug"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing credentials")
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "raw.json")
	output := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(input, []byte(payload), 0o644))

	require.NoError(t, run(t, "convert", input, output, "--season", "2025", "--debug-dir", filepath.Join(dir, "debug")))

	rows := readRows(t, output)
	require.Len(t, rows, 2)
	assert.Equal(t, "301.5", rows[1][5])
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("FFL_SEASON", "2024")

	dir := t.TempDir()
	input := filepath.Join(dir, "raw.json")
	output := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(input, []byte(payload), 0o644))

	require.NoError(t, run(t, "convert", input, output, "--season", "2025", "--debug-dir", filepath.Join(dir, "debug")))

	rows := readRows(t, output)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025", rows[1][4], "flag season must win over environment")
}

func TestEnvironmentSeasonUsedWithoutFlag(t *testing.T) {
	t.Setenv("FFL_SEASON", "2024")

	dir := t.TempDir()
	input := filepath.Join(dir, "raw.json")
	output := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(input, []byte(payload), 0o644))

	require.NoError(t, run(t, "convert", input, output, "--debug-dir", filepath.Join(dir, "debug")))

	rows := readRows(t, output)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024", rows[1][4])
}

func TestConvertRequiresInputArgument(t *testing.T) {
	err := run(t, "convert")
	require.Error(t, err)
}
