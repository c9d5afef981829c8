package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ndjsonkit/ndjsonkit/internal/adapters/inbound/cli"
	"github.com/ndjsonkit/ndjsonkit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCommand_WritesCleanedCopy(t *testing.T) {
	outDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"clean", invalid1Fixture, "-o", outDir, "--json"})
	require.NoError(t, cmd.Execute())

	var report domain.RunReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.CleanedFiles, 1)
	assert.Equal(t, 1, report.Summary.TotalErrors)

	data, err := os.ReadFile(report.CleanedFiles[0])
	require.NoError(t, err)
	assert.Equal(t, "{\"name\": \"Bob\", \"age\": 25}\n{\"name\": \"Charlie\", \"age\": 35}\n", string(data))
}

func TestCleanCommand_ValidFileUnchanged(t *testing.T) {
	outDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"clean", validFixture, "-o", outDir, "--json"})
	require.NoError(t, cmd.Execute())

	var report domain.RunReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.CleanedFiles, 1)

	original, err := os.ReadFile(validFixture)
	require.NoError(t, err)
	cleaned, err := os.ReadFile(report.CleanedFiles[0])
	require.NoError(t, err)
	assert.Equal(t, original, cleaned)
}

func TestCleanCommand_MultipleFiles(t *testing.T) {
	outDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"clean", validFixture, invalid1Fixture, "-o", outDir, "--json"})
	require.NoError(t, cmd.Execute())

	var report domain.RunReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Len(t, report.CleanedFiles, 2)
	assert.Equal(t, filepath.Join(outDir, "valid.ndjson"), report.CleanedFiles[0])
	assert.Equal(t, filepath.Join(outDir, "invalid1.ndjson"), report.CleanedFiles[1])
}

func TestCleanCommand_DefaultTUIListsCleanedFiles(t *testing.T) {
	outDir := t.TempDir()

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"clean", validFixture, "-o", outDir})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "cleaned files")
}

func TestCleanCommand_MissingFile(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"clean", "../../../../testdata/does-not-exist.ndjson", "-o", t.TempDir()})
	assert.Error(t, cmd.Execute())
}
