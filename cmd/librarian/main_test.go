package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/sample"
)

func Test_Demo_RunsTheLendingScenario(t *testing.T) {
	// act
	stdout, stderr, err := execute(t, "demo", "--log-lvl", "warn")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "M001 borrowed 9780132350884 as L000000001, due 2024-03-15")
	assert.Contains(t, stdout, "M001 cannot borrow 9780134757599: no copy of the book is available")
	assert.Contains(t, stdout, "L000000002 renewed, now due 2024-04-12")
	assert.Contains(t, stdout, "L000000001 returned, fine 4.00")
	assert.Contains(t, stdout, "L000000001 fine paid, 0.00 left")
	assert.Contains(t, stdout, "L000000004 marked lost, fine 47.99")
	assert.Contains(t, stdout, "M003 cannot borrow 9780262033848: member has outstanding fines")
	assert.Contains(t, stdout, "# TYPE catalog_operation_duration_seconds histogram")
	assert.Contains(t, stdout, "catalog_journal_record_duration_seconds")
	assert.Contains(t, stderr, "overdue notice")
	assert.NotContains(t, stderr, "operation succeeded")
}

func Test_Demo_SkipsMetrics_WhenDisabled(t *testing.T) {
	// act
	stdout, _, err := execute(t, "demo", "--log-lvl", "disabled", "--metrics=false")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "== Popular books ==")
	assert.NotContains(t, stdout, "== Metrics ==")
}

func Test_Demo_Fails_WhenLogLevelIsUnknown(t *testing.T) {
	// act
	_, _, err := execute(t, "demo", "--log-lvl", "chatty")

	// assert
	assert.ErrorContains(t, err, "invalid log lvl [chatty]")
}

func Test_Report_SortsCatalog(t *testing.T) {
	// act
	stdout, _, err := execute(t, "report", "--sort-by", "author", "--log-lvl", "disabled")

	// assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(sample.Books()))
	assert.True(t, strings.HasPrefix(lines[0], sample.CProgrammingISBN))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], sample.AlgorithmsISBN))
}

func Test_Report_Fails_WhenSortOrderIsUnknown(t *testing.T) {
	// act
	_, _, err := execute(t, "report", "--sort-by", "price")

	// assert
	assert.ErrorContains(t, err, "invalid --sort-by [price]")
}

func Test_GenConfig_WritesTemplate_ThatDemoAccepts(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "librarian.yaml")

	// act
	stdout, _, err := execute(t, "gen-config")

	// assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "regular_loan_limit: 3")
	assert.Contains(t, stdout, "new_arrivals_days: 30")

	// act
	_, _, err = execute(t, "gen-config", path)
	require.NoError(t, err)
	written, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	_, _, err = execute(t, "demo", "--config", path, "--log-lvl", "disabled", "--metrics=false")

	// assert
	assert.Equal(t, stdout, string(written))
	assert.NoError(t, err)
}

func Test_Demo_Fails_WhenConfigIsInvalid(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "librarian.yaml")
	require.NoError(t, os.WriteFile(path, []byte("loans:\n  regular_loan_limit: 0\n"), 0644))

	// act
	_, _, err := execute(t, "demo", "--config", path)

	// assert
	assert.ErrorContains(t, err, "invalid config")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	rootCmd := newRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}
