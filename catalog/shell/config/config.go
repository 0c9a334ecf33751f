// Package config loads the librarian configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/library-catalog-go/catalog/core"
)

var (
	ErrInvalidConfig = errors.New("invalid config")

	ErrInvalidLogLevel    = errors.New("log.level must not be empty")
	ErrInvalidLoanLimit   = errors.New("loan limits must be positive")
	ErrInvalidLoanPeriod  = errors.New("loan periods must be positive")
	ErrNegativeFine       = errors.New("fine per overdue day must not be negative")
	ErrInvalidWindow      = errors.New("catalog windows and limits must be positive")
	ErrInvalidMaxAttempts = errors.New("retry.max_attempts must be positive")
	ErrNegativeBaseDelay  = errors.New("retry.base_delay_ms must not be negative")
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Loans   LoansConfig   `yaml:"loans"`
	Catalog CatalogConfig `yaml:"catalog"`
	Retry   RetryConfig   `yaml:"retry"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type LoansConfig struct {
	RegularLoanLimit  int     `yaml:"regular_loan_limit"`
	PremiumLoanLimit  int     `yaml:"premium_loan_limit"`
	RegularLoanDays   int     `yaml:"regular_loan_days"`
	PremiumLoanDays   int     `yaml:"premium_loan_days"`
	FinePerOverdueDay float64 `yaml:"fine_per_overdue_day"`
	RenewalAllowed    bool    `yaml:"renewal_allowed"`
}

type CatalogConfig struct {
	NewArrivalsDays      int `yaml:"new_arrivals_days"`
	PopularBooksLimit    int `yaml:"popular_books_limit"`
	RecommendationsLimit int `yaml:"recommendations_limit"`
}

type RetryConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	BaseDelayMS int `yaml:"base_delay_ms"`
}

// Default returns the configuration the librarian runs with when no file is given.
func Default() Config {
	policy := core.DefaultLoanPolicy()

	return Config{
		Log: LogConfig{Level: "info"},
		Loans: LoansConfig{
			RegularLoanLimit:  policy.RegularLoanLimit,
			PremiumLoanLimit:  policy.PremiumLoanLimit,
			RegularLoanDays:   policy.RegularLoanDays,
			PremiumLoanDays:   policy.PremiumLoanDays,
			FinePerOverdueDay: policy.FinePerOverdueDay,
			RenewalAllowed:    policy.RenewalAllowed,
		},
		Catalog: CatalogConfig{
			NewArrivalsDays:      30,
			PopularBooksLimit:    10,
			RecommendationsLimit: 5,
		},
		Retry: RetryConfig{
			MaxAttempts: 6,
			BaseDelayMS: 10,
		},
	}
}

// Load reads and decodes the YAML file at path. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	return Decode(b)
}

// Decode decodes YAML on top of Default and validates the result.
// Unknown keys are rejected.
func Decode(b []byte) (Config, error) {
	cfg := Default()

	m := make(map[string]any)
	if err := yaml.Unmarshal(b, m); err != nil {
		return Config{}, fmt.Errorf("failed to decode yaml config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to init yaml decoder: %w", err)
	}

	if err := decoder.Decode(m); err != nil {
		return Config{}, fmt.Errorf("failed to decode yaml struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate returns every violation joined with ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	if c.Log.Level == "" {
		errs = append(errs, ErrInvalidLogLevel)
	}

	if c.Loans.RegularLoanLimit <= 0 || c.Loans.PremiumLoanLimit <= 0 {
		errs = append(errs, ErrInvalidLoanLimit)
	}

	if c.Loans.RegularLoanDays <= 0 || c.Loans.PremiumLoanDays <= 0 {
		errs = append(errs, ErrInvalidLoanPeriod)
	}

	if c.Loans.FinePerOverdueDay < 0 {
		errs = append(errs, ErrNegativeFine)
	}

	if c.Catalog.NewArrivalsDays <= 0 || c.Catalog.PopularBooksLimit <= 0 || c.Catalog.RecommendationsLimit <= 0 {
		errs = append(errs, ErrInvalidWindow)
	}

	if c.Retry.MaxAttempts <= 0 {
		errs = append(errs, ErrInvalidMaxAttempts)
	}

	if c.Retry.BaseDelayMS < 0 {
		errs = append(errs, ErrNegativeBaseDelay)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}

	return nil
}

// LoanPolicy returns the lending rules of the loans section.
func (c Config) LoanPolicy() core.LoanPolicy {
	return core.LoanPolicy{
		RegularLoanLimit:  c.Loans.RegularLoanLimit,
		PremiumLoanLimit:  c.Loans.PremiumLoanLimit,
		RegularLoanDays:   c.Loans.RegularLoanDays,
		PremiumLoanDays:   c.Loans.PremiumLoanDays,
		FinePerOverdueDay: c.Loans.FinePerOverdueDay,
		RenewalAllowed:    c.Loans.RenewalAllowed,
	}
}

func (c RetryConfig) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMS) * time.Millisecond
}

// WriteTemplate writes Default as YAML to w.
func WriteTemplate(w io.Writer) error {
	b := new(bytes.Buffer)
	encoder := yaml.NewEncoder(b)
	encoder.SetIndent(2)

	cfg := Default()
	if err := encoder.Encode(&cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err := w.Write(b.Bytes())

	return err
}
