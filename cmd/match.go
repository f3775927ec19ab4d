package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fairwork-za/wilmatch/internal/ai/gemini"
	"github.com/fairwork-za/wilmatch/internal/demographics"
	"github.com/fairwork-za/wilmatch/internal/logger"
	"github.com/fairwork-za/wilmatch/internal/matching"
	"github.com/fairwork-za/wilmatch/internal/records"
	"github.com/fairwork-za/wilmatch/internal/secrets"
	"github.com/fairwork-za/wilmatch/internal/store"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Build a sanitized match request and send it to the text-generation collaborator",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("subject", "s", "", "subject identifier to load the profile from the store")
	matchCmd.Flags().StringP("opportunity", "o", "", "opportunity identifier to load from the store")
	matchCmd.Flags().String("profile-file", "", "JSON file with the raw student profile")
	matchCmd.Flags().String("opportunity-file", "", "JSON file with the opportunity")
	matchCmd.Flags().BoolP("blind", "b", false, "enforce blind-match mode for this request")
	matchCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation on high bias risk")
	matchCmd.Flags().Bool("dry-run", false, "print the rendered prompt without calling the collaborator")
}

func match(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	profile, opportunity, st := loadMatchInputs(ctx, cmd, config, logger)
	if st != nil {
		defer st.Close()
	}

	blind := cmd.Flag("blind").Value.String() == "true"
	if !blind && config.Match != nil {
		blind = config.Match.BlindMode
	}

	builder := matching.NewBuilder(nil, nil, nil, logger)
	request, err := builder.Build(profile, opportunity, matching.Options{BlindMatch: blind})
	if err != nil {
		logger.Fatal("building the match request", zap.Error(err))
	}

	logger.Info("match request built",
		zap.String("opportunity", opportunity.Title),
		zap.Bool("blind_match", request.FeatureLog.BlindMatchEnforced),
		zap.String("bias_risk", request.Bias.Risk),
		zap.Strings("bias_flags", request.Bias.Flags),
	)

	if request.Bias.Risk == demographics.RiskHigh && cmd.Flag("auto-aprove").Value.String() == "false" {
		confirm := promptui.Select{
			Label: "Bias risk is high (incomplete demographics). Proceed?",
			Items: []string{PromptYes, PromptNo},
		}

		_, action, err := confirm.Run()
		if err != nil {
			logger.Fatal("running the confirmation prompt", zap.Error(err))
		}
		if action != PromptYes {
			logger.Info("exiting", zap.String("reason", "match request cancelled"))
			return
		}
	}

	if st != nil {
		subjectID := cmd.Flag("subject").Value.String()
		if err := st.SaveMatchAudit(ctx, subjectID, opportunity.ID, request); err != nil {
			logger.Warn("saving the match audit", zap.Error(err))
		}
	}

	if cmd.Flag("dry-run").Value.String() == "true" {
		prompt, err := matching.RenderPrompt(request)
		if err != nil {
			logger.Fatal("rendering the prompt", zap.Error(err))
		}
		fmt.Println(prompt)
		return
	}

	generator := newGenerator(ctx, config, logger)

	response, err := builder.Dispatch(ctx, generator, request)
	if err != nil {
		logger.Fatal("dispatching the match request", zap.Error(err))
	}

	fmt.Println(response)
}

func newGenerator(ctx context.Context, config *Config, lg *zap.Logger) *gemini.Client {
	if config.AI == nil || config.AI.Gemini == nil {
		lg.Fatal("gemini configuration is required",
			zap.String("hint", "set ai.gemini in the configuration file or GEMINI_API_KEY"),
		)
	}

	geminiCfg := config.AI.Gemini

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: geminiCfg.APIKey,
		File:  geminiCfg.APIKeyFile,
	})
	if err != nil {
		lg.Fatal("loading the gemini api key", zap.Error(err))
	}

	aiLogger := logger.WithCommonFields(lg, "gemini", geminiCfg.Model)

	client, err := gemini.NewClient(ctx, apiKey, geminiCfg.Model, geminiCfg.MaxRetries, aiLogger)
	if err != nil {
		lg.Fatal("creating the gemini client", zap.Error(err))
	}

	return client
}

func loadMatchInputs(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) (*records.StudentProfile, *records.Opportunity, *store.Store) {
	profileFile := cmd.Flag("profile-file").Value.String()
	opportunityFile := cmd.Flag("opportunity-file").Value.String()

	if profileFile != "" && opportunityFile != "" {
		profile, err := readProfileFile(profileFile)
		if err != nil {
			logger.Fatal("reading the profile file", zap.Error(err))
		}

		opportunity, err := readOpportunityFile(opportunityFile)
		if err != nil {
			logger.Fatal("reading the opportunity file", zap.Error(err))
		}

		return profile, opportunity, nil
	}

	subjectID := cmd.Flag("subject").Value.String()
	opportunityID := cmd.Flag("opportunity").Value.String()
	if subjectID == "" || opportunityID == "" {
		logger.Fatal("match inputs are required",
			zap.String("hint", "pass --subject and --opportunity, or --profile-file and --opportunity-file"),
		)
	}

	dsn := resolveStoreDSN(config)
	if dsn == "" {
		logger.Fatal("store is not configured",
			zap.String("hint", "set store.dsn or WILMATCH_DATABASE_URL"),
		)
	}

	st, err := store.Connect(ctx, dsn, logger)
	if err != nil {
		logger.Fatal("connecting to the store", zap.Error(err))
	}

	profile, err := st.GetStudentProfile(ctx, subjectID)
	if err != nil {
		st.Close()
		logger.Fatal("loading the student profile", zap.Error(err))
	}

	opportunity, err := st.GetOpportunity(ctx, opportunityID)
	if err != nil {
		st.Close()
		logger.Fatal("loading the opportunity", zap.Error(err))
	}

	return profile, opportunity, st
}

func readProfileFile(path string) (*records.StudentProfile, error) {
	item, err := readJSONObject(path)
	if err != nil {
		return nil, err
	}

	return records.DecodeProfile(item)
}

func readOpportunityFile(path string) (*records.Opportunity, error) {
	item, err := readJSONObject(path)
	if err != nil {
		return nil, err
	}

	opportunity, err := records.DecodeOpportunity(item)
	if err != nil {
		return nil, err
	}

	if err := opportunity.Validate(); err != nil {
		return nil, err
	}

	return opportunity, nil
}

func readJSONObject(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var item map[string]any
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return item, nil
}
