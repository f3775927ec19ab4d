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

	"github.com/fairwork-za/wilmatch/internal/logger"
	"github.com/fairwork-za/wilmatch/internal/placement"
	"github.com/fairwork-za/wilmatch/internal/records"
	"github.com/fairwork-za/wilmatch/internal/secrets"
	"github.com/fairwork-za/wilmatch/internal/store"
)

const (
	PromptAuditExit        = "Exit"
	PromptAuditShowFlagged = "Show flagged placements"
	PromptAuditDumpReport  = "Dump report to file"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Score placements for risk and report fairness by province and institution",
	Run: func(cmd *cobra.Command, _ []string) {
		audit(cmd)
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringP("placements", "p", "", "JSON file with placement records (overrides the store)")
	auditCmd.Flags().IntP("workers", "w", 0, "shard risk scoring across this many workers")
	auditCmd.Flags().Bool("persist", false, "persist risk decisions to the store")
	auditCmd.Flags().BoolP("auto-aprove", "y", false, "do not show the interactive report menu")

	viper.BindPFlag("audit.placements-file", auditCmd.Flags().Lookup("placements"))
	viper.BindPFlag("audit.workers", auditCmd.Flags().Lookup("workers"))
	viper.BindPFlag("audit.persist", auditCmd.Flags().Lookup("persist"))
}

func audit(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	auditCfg := config.Audit
	if auditCfg == nil {
		auditCfg = &AuditConfig{}
	}
	if file := viper.GetString("audit.placements-file"); file != "" {
		auditCfg.PlacementsFile = file
	}
	if workers := viper.GetInt("audit.workers"); workers > 0 {
		auditCfg.Workers = workers
	}
	if viper.GetBool("audit.persist") {
		auditCfg.Persist = true
	}

	placements, st := loadPlacements(ctx, config, auditCfg, logger)
	if st != nil {
		defer st.Close()
	}

	if len(placements) == 0 {
		logger.Info("exiting", zap.String("reason", "no placements to evaluate"))
		return
	}

	thresholds := placement.ScorerConfig{}
	if auditCfg.Thresholds != nil {
		thresholds = *auditCfg.Thresholds
	}
	scorer := placement.NewScorer(thresholds, nil)

	var result *placement.AuditResult
	if auditCfg.Workers > 1 {
		result, err = scorer.EvaluateWithAuditConcurrent(ctx, placements, auditCfg.Workers)
		if err != nil {
			logger.Fatal("evaluating placements", zap.Error(err))
		}
	} else {
		result = scorer.EvaluateWithAudit(placements)
	}

	flagged := 0
	for _, decision := range result.Decisions {
		if decision.Flagged {
			flagged++
		}
	}

	logger.Info("placement audit completed",
		zap.Int("total", len(result.Decisions)),
		zap.Int("flagged", flagged),
	)

	for province, metric := range result.ByProvince {
		logger.Info("fairness by province",
			zap.String("province", province),
			zap.Int("flagged", metric.Flagged),
			zap.Int("total", metric.Total),
			zap.Int("flag_rate", metric.FlagRate),
		)
	}

	for institution, metric := range result.ByInstitution {
		logger.Info("fairness by institution",
			zap.String("institution", institution),
			zap.Int("flagged", metric.Flagged),
			zap.Int("total", metric.Total),
			zap.Int("flag_rate", metric.FlagRate),
		)
	}

	if auditCfg.Persist {
		if st == nil {
			logger.Warn("persist requested but no store is configured")
		} else if err := st.SaveRiskDecisions(ctx, result.Decisions); err != nil {
			logger.Fatal("persisting risk decisions", zap.Error(err))
		}
	}

	if cmd.Flag("auto-aprove").Value.String() == "true" {
		return
	}

	reportMenu(result, auditCfg, logger)
}

func reportMenu(result *placement.AuditResult, auditCfg *AuditConfig, logger *zap.Logger) {
	menu := promptui.Select{
		Label: "Audit report",
		Items: []string{PromptAuditShowFlagged, PromptAuditDumpReport, PromptAuditExit},
	}

	for {
		_, action, err := menu.Run()
		if err != nil {
			logger.Fatal("running the report menu", zap.Error(err))
		}

		switch action {
		case PromptAuditShowFlagged:
			for _, decision := range result.Decisions {
				if !decision.Flagged {
					continue
				}
				logger.Info("flagged placement",
					zap.String("placement_id", decision.PlacementID),
					zap.Int("score", decision.Score),
					zap.String("level", decision.Level),
					zap.Strings("rationale", decision.Rationale),
				)
			}
		case PromptAuditDumpReport:
			path := auditCfg.ReportFile
			if path == "" {
				path = "wilmatch-audit.json"
			}
			if err := dumpReport(result, path); err != nil {
				logger.Fatal("dumping the report", zap.Error(err))
			}
			logger.Info("report dumped", zap.String("path", path))
		case PromptAuditExit:
			return
		}
	}
}

func dumpReport(result *placement.AuditResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal audit report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write audit report: %w", err)
	}

	return nil
}

// loadPlacements prefers the fixture file; otherwise it connects to the
// configured store. The returned store is non-nil only when a connection was
// made.
func loadPlacements(ctx context.Context, config *Config, auditCfg *AuditConfig, logger *zap.Logger) ([]*records.Placement, *store.Store) {
	if auditCfg.PlacementsFile != "" {
		placements, err := readPlacementsFile(auditCfg.PlacementsFile, logger)
		if err != nil {
			logger.Fatal("reading placements file", zap.Error(err))
		}
		return placements, nil
	}

	dsn := resolveStoreDSN(config)
	if dsn == "" {
		logger.Fatal("no placement source configured",
			zap.String("hint", "pass --placements or configure store.dsn"),
		)
	}

	st, err := store.Connect(ctx, dsn, logger)
	if err != nil {
		logger.Fatal("connecting to the store", zap.Error(err))
	}

	placements, err := st.ListPlacements(ctx)
	if err != nil {
		st.Close()
		logger.Fatal("listing placements", zap.Error(err))
	}

	return placements, st
}

func readPlacementsFile(path string, logger *zap.Logger) ([]*records.Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read placements file: %w", err)
	}

	var items []map[string]any
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse placements file: %w", err)
	}

	decoded, err := records.DecodePlacements(items)
	if err != nil {
		return nil, err
	}

	placements := make([]*records.Placement, 0, len(decoded))
	for _, p := range decoded {
		if err := p.Validate(); err != nil {
			logger.Warn("skipping malformed placement", zap.Error(err))
			continue
		}
		placements = append(placements, p)
	}

	return placements, nil
}

func resolveStoreDSN(config *Config) string {
	if config.Store == nil {
		return ""
	}

	dsn, err := secrets.Load(secrets.Source{
		Name:  "store dsn",
		Value: config.Store.DSN,
		File:  config.Store.DSNFile,
	})
	if err != nil {
		return ""
	}

	return dsn
}
