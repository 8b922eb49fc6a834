package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const gridGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"highway": "residential"},
     "geometry": {"type": "LineString", "coordinates": [[0,0],[1,0],[2,0],[3,0]]}}
  ]
}`

func TestExecute_GraphThenBuild_WritesExpectedFiles(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "grid.geojson")
	require.NoError(t, os.WriteFile(inFile, []byte(gridGeoJSON), 0o644))

	gmpFile := filepath.Join(dir, "grid.gmp")
	code := Execute([]string{"graph", inFile, "-o", gmpFile, "-s", "2"})
	require.Equal(t, exitOK, code)
	require.FileExists(t, gmpFile)

	code = Execute([]string{"build", gmpFile, "-e", "0.25", "-s"})
	require.Equal(t, exitOK, code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var ompCount, smpCount int
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".omp":
			ompCount++
		case ".smp":
			smpCount++
		}
	}
	require.Equal(t, 2, ompCount)
	require.Equal(t, 2, smpCount)
}

func TestExecute_GraphMissingInputFile_ReturnsIOErrorCode(t *testing.T) {
	code := Execute([]string{"graph", "/nonexistent/path/does-not-exist.geojson"})
	require.Equal(t, exitIOError, code)
}

func TestExecute_BuildMissingEpsilon_ReturnsParseErrorCode(t *testing.T) {
	dir := t.TempDir()
	code := Execute([]string{"build", filepath.Join(dir, "missing.gmp")})
	require.Equal(t, exitParse, code)
}

func TestExecute_BuildOnGraphWithNoPOIs_ReturnsBuildErrorCode(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "grid.geojson")
	require.NoError(t, os.WriteFile(inFile, []byte(gridGeoJSON), 0o644))

	gmpFile := filepath.Join(dir, "grid.gmp")
	require.Equal(t, exitOK, Execute([]string{"graph", inFile, "-o", gmpFile}))

	code := Execute([]string{"build", gmpFile, "-e", "0.25"})
	require.Equal(t, exitBuildFail, code)
}

func TestExecute_BenchRunsAgainstBuiltGraph(t *testing.T) {
	dir := t.TempDir()
	inFile := filepath.Join(dir, "grid.geojson")
	require.NoError(t, os.WriteFile(inFile, []byte(gridGeoJSON), 0o644))

	gmpFile := filepath.Join(dir, "grid.gmp")
	require.Equal(t, exitOK, Execute([]string{"graph", inFile, "-o", gmpFile}))

	code := Execute([]string{"bench", gmpFile, "-b", "2"})
	require.Equal(t, exitOK, code)
}
