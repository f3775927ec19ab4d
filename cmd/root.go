package cmd

import (
	"errors"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fairwork-za/wilmatch/internal/placement"
)

const (
	app = "wilmatch"
)

// Config is the application configuration, read from wilmatch.yaml and the
// environment.
type Config struct {
	Store  *StoreConfig  `mapstructure:"store"`
	AI     *AIConfig     `mapstructure:"ai"`
	Match  *MatchConfig  `mapstructure:"match"`
	Audit  *AuditConfig  `mapstructure:"audit"`
	Policy *PolicyConfig `mapstructure:"policy"`
}

// StoreConfig points at the profile/record store.
type StoreConfig struct {
	DSN     string `mapstructure:"dsn"`
	DSNFile string `mapstructure:"dsn-file"`
}

// AIConfig stores text-generation collaborator settings.
type AIConfig struct {
	Gemini *GeminiConfig `mapstructure:"gemini"`
}

// GeminiConfig stores Gemini provider configuration.
type GeminiConfig struct {
	APIKey     string `mapstructure:"api-key"`
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
}

// MatchConfig controls match-request behaviour.
type MatchConfig struct {
	BlindMode bool `mapstructure:"blind-mode"`
}

// AuditConfig controls the placement audit run.
type AuditConfig struct {
	PlacementsFile string                  `mapstructure:"placements-file"`
	ReportFile     string                  `mapstructure:"report-file"`
	Workers        int                     `mapstructure:"workers"`
	Persist        bool                    `mapstructure:"persist"`
	Thresholds     *placement.ScorerConfig `mapstructure:"thresholds"`
}

// PolicyConfig allows per-deployment additions to the built-in
// disallowed-compensation phrase list.
type PolicyConfig struct {
	ExtraDisallowed []string `mapstructure:"extra-disallowed"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "wilmatch screens postings, scores placement risk and builds fairness-audited match requests",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env is optional; ignore its absence.
	_ = godotenv.Load()

	if err := viper.BindEnv("ai.gemini.api-key", "GEMINI_API_KEY"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY environment variable: %v", err)
	}
	if err := viper.BindEnv("store.dsn", "WILMATCH_DATABASE_URL"); err != nil {
		log.Fatalf("binding WILMATCH_DATABASE_URL environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is wilmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: check and audit runs work from flags and
	// fixture files alone. A present-but-broken file is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}

	return config, nil
}
