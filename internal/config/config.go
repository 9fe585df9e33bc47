package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/jobpay/internal/paycalc"
)

// Config holds application configuration.
type Config struct {
	Database   DatabaseConfig
	UI         UIConfig
	Log        LogConfig
	Calculator CalculatorConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// LogConfig holds logger settings. The TUI owns the terminal, so logs go to a file.
type LogConfig struct {
	Level  string
	Format string
	Path   string
}

// CalculatorConfig holds the deduction rates the pay calculator starts with.
type CalculatorConfig struct {
	FederalTax     float64 `mapstructure:"federal_tax"`
	SocialSecurity float64 `mapstructure:"social_security"`
	Medicare       float64 `mapstructure:"medicare"`
}

// Rates converts the calculator settings for paycalc.
func (c CalculatorConfig) Rates() paycalc.Rates {
	return paycalc.Rates{
		FederalTax:     c.FederalTax,
		SocialSecurity: c.SocialSecurity,
		Medicare:       c.Medicare,
	}
}

// Path returns the config file location. JOBPAY_CONFIG wins over the default.
func Path() string {
	if p := os.Getenv("JOBPAY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "jobpay", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix JOBPAY_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "jobpay", "jobpay.db"))
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.date_format", "2006-01-02")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "jobpay", "jobpay.log"))
	v.SetDefault("calculator.federal_tax", paycalc.DefaultFederalTax)
	v.SetDefault("calculator.social_security", paycalc.DefaultSocialSecurity)
	v.SetDefault("calculator.medicare", paycalc.DefaultMedicare)

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("JOBPAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func isMissing(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}

// SaveCalculator writes only the calculator.* keys, keeping whatever else the
// file already holds. Environment overrides are never written back.
func SaveCalculator(c CalculatorConfig) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return fmt.Errorf("read config: %w", err)
	}
	v.Set("calculator.federal_tax", c.FederalTax)
	v.Set("calculator.social_security", c.SocialSecurity)
	v.Set("calculator.medicare", c.Medicare)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
