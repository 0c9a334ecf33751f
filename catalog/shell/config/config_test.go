package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
	"github.com/AntonStoeckl/library-catalog-go/catalog/shell/config"
)

func Test_Default_IsValid_AndMatchesDefaultLoanPolicy(t *testing.T) {
	cfg := config.Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, core.DefaultLoanPolicy(), cfg.LoanPolicy())
}

func Test_Decode_OverridesOnlyGivenKeys(t *testing.T) {
	// arrange
	input := []byte(`
log:
  level: debug
loans:
  premium_loan_limit: 8
  fine_per_overdue_day: 0.5
`)

	// act
	cfg, err := config.Decode(input)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8, cfg.Loans.PremiumLoanLimit)
	assert.Equal(t, 3, cfg.Loans.RegularLoanLimit)
	assert.InDelta(t, 0.5, cfg.Loans.FinePerOverdueDay, 0.0001)
	assert.Equal(t, 30, cfg.Catalog.NewArrivalsDays)
}

func Test_Decode_Fails_ForUnknownKeys(t *testing.T) {
	_, err := config.Decode([]byte("loans:\n  max_books: 3\n"))

	assert.Error(t, err)
}

func Test_Decode_Fails_ForInvalidValues(t *testing.T) {
	// act
	_, err := config.Decode([]byte("loans:\n  regular_loan_days: 0\n  fine_per_overdue_day: -1\nretry:\n  max_attempts: 0\n"))

	// assert
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, config.ErrInvalidLoanPeriod)
	assert.ErrorIs(t, err, config.ErrNegativeFine)
	assert.ErrorIs(t, err, config.ErrInvalidMaxAttempts)
}

func Test_Decode_Fails_ForMalformedYAML(t *testing.T) {
	_, err := config.Decode([]byte("loans: [unclosed"))

	assert.Error(t, err)
}

func Test_WriteTemplate_CanBeLoadedBack(t *testing.T) {
	// arrange
	var out bytes.Buffer
	require.NoError(t, config.WriteTemplate(&out))

	path := filepath.Join(t.TempDir(), "librarian.yaml")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o600))

	// act
	cfg, err := config.Load(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Contains(t, out.String(), "  regular_loan_limit: 3")
}

func Test_Load_Fails_ForMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}
