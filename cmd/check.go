package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/logger"
	"github.com/fairwork-za/wilmatch/internal/policy"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Screen posting text for disallowed compensation terms and exclusionary language",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		check(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringP("text", "t", "", "posting text to check instead of a file")
}

func check(cmd *cobra.Command, args []string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	text := cmd.Flag("text").Value.String()
	if text == "" {
		if len(args) == 0 {
			logger.Fatal("posting text is required",
				zap.String("hint", "pass a file argument or --text"),
			)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatal("reading the posting file", zap.Error(err))
		}
		text = string(data)
	}

	disallowed := policy.DefaultDisallowedPhrases()
	if config.Policy != nil {
		disallowed = append(disallowed, config.Policy.ExtraDisallowed...)
	}

	checker := policy.NewChecker(disallowed, nil)
	result := checker.RunChecks(text)

	if !result.Flagged() {
		logger.Info("posting passed policy checks")
		return
	}

	logger.Warn("posting flagged by policy checks",
		zap.Strings("disallowed_hits", result.DisallowedHits),
		zap.Strings("ee_concerns", result.EEConcerns),
	)
}
