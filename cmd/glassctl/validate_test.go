package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"glass-connect-backend/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadRecords(t *testing.T) {
	t.Run("single JSON object", func(t *testing.T) {
		records, err := readRecords(writeFile(t, "lab.json", `{"name":"Protein Lab"}`))
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("JSON list", func(t *testing.T) {
		records, err := readRecords(writeFile(t, "labs.json", ` [{"name":"A"},{"name":"B"}]`))
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("YAML list", func(t *testing.T) {
		records, err := readRecords(writeFile(t, "profiles.yaml", "- priceFrom: 100\n  priceTo: 50\n- offersLabSpace: true\n"))
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.JSONEq(t, `{"priceFrom":100,"priceTo":50}`, string(records[0]))
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := readRecords(writeFile(t, "empty.json", "  \n"))
		assert.Error(t, err)
	})

	t.Run("broken list", func(t *testing.T) {
		_, err := readRecords(writeFile(t, "broken.json", `[{"name":`))
		assert.Error(t, err)
	})
}

func TestValidateFiles(t *testing.T) {
	path := writeFile(t, "profiles.json", `[
		{"priceFrom":100,"priceTo":50},
		{"priceFrom":10,"priceTo":20},
		{"totalAreaM2":"large"}
	]`)

	t.Run("reports every invalid record", func(t *testing.T) {
		report, err := validateFiles(schema.KindLabOfferProfile, false, false, []string{path})
		require.NoError(t, err)
		assert.Equal(t, 3, report.Records)
		assert.Equal(t, 2, report.Invalid)
		assert.Equal(t, []string{"priceFrom", "priceTo"}, report.Results[0].Issues.Paths())
		assert.True(t, report.Results[1].Valid)
		assert.NotNil(t, report.Results[1].Issues)
		assert.Equal(t, []string{"totalAreaM2"}, report.Results[2].Issues.Paths())
	})

	t.Run("fail fast stops at the first invalid record", func(t *testing.T) {
		report, err := validateFiles(schema.KindLabOfferProfile, false, true, []string{path})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Records)
		assert.Equal(t, 1, report.Invalid)
	})

	t.Run("malformed record is a data error", func(t *testing.T) {
		_, err := validateFiles(schema.KindLab, false, false, []string{writeFile(t, "lab.json", `{"name":`)})
		require.Error(t, err)
		assert.Equal(t, ExitDataError, exitCode(err))
	})
}

func TestValidateCommand(t *testing.T) {
	run := func(args ...string) (string, error) {
		validateKind, validatePartial, validateFailFast, humanOutput = string(schema.KindLab), false, false, false
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	t.Run("valid file", func(t *testing.T) {
		out, err := run("validate", "--kind", "team", writeFile(t, "team.json", `{"name":"Imaging"}`))
		require.NoError(t, err)

		var report ValidateReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 0, report.Invalid)
	})

	t.Run("invalid file exits with a data error", func(t *testing.T) {
		_, err := run("validate", "--kind", "team", "--partial", writeFile(t, "team.json", `{}`))
		require.Error(t, err)
		assert.Equal(t, ExitDataError, exitCode(err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := run("validate", "--kind", "invoice", writeFile(t, "x.json", `{}`))
		require.Error(t, err)
		assert.Equal(t, ExitError, exitCode(err))
	})

	t.Run("human output", func(t *testing.T) {
		out, err := run("validate", "--human", "--kind", "lab", writeFile(t, "lab.json", `{"name":" "}`))
		require.Error(t, err)
		assert.Contains(t, out, "lab.json[0] name:")
		assert.Contains(t, out, "1 of 1 records invalid")
	})
}
