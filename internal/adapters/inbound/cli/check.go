package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/config"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/gitinfo"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/registry"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/schema"
	"github.com/schemaguard/schemaguard/internal/adapters/outbound/tui"
	"github.com/schemaguard/schemaguard/internal/application"
	"github.com/schemaguard/schemaguard/internal/domain"
	"github.com/schemaguard/schemaguard/internal/domain/report"
	"github.com/spf13/cobra"
)

// apiKeyEnv is how the registry credential reaches the client; it never
// appears in .schemaguard.yaml.
const apiKeyEnv = "SCHEMAGUARD_API_KEY"

// outputMode is the single place the json-vs-markdown choice is made, so
// the two flags can never both take effect.
type outputMode int

const (
	modeTable outputMode = iota
	modeJSON
	modeMarkdown
)

func newCheckCmd() *cobra.Command {
	var (
		tag            string
		period         string
		threshold      int
		percentage     float64
		jsonOutput     bool
		markdownOutput bool
		path           string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the local schema against recorded usage",
		Long:  "Validate the local schema definition against the operations recorded for a published tag, and fail when any change is breaking.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(path)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if tag != "" {
				cfg.Tag = tag
			}

			raw := domain.RawHistoricFlags{
				Period:        period,
				Threshold:     threshold,
				ThresholdSet:  cmd.Flags().Changed("queryCountThreshold"),
				Percentage:    percentage,
				PercentageSet: cmd.Flags().Changed("queryCountThresholdPercentage"),
			}

			svc := application.NewCheckService(
				schema.New(),
				gitinfo.New(),
				registry.New(cfg.RegistryURL, os.Getenv(apiKeyEnv)),
			)

			result, classification, err := svc.Run(cmd.Context(), application.CheckInput{
				ProjectPath: path,
				Config:      cfg,
				Raw:         raw,
			})
			if err != nil {
				return fmt.Errorf("check failed: %w", err)
			}

			mode := modeTable
			switch {
			case jsonOutput:
				mode = modeJSON
			case markdownOutput:
				mode = modeMarkdown
			}

			if err := emitReport(cmd, mode, cfg, result, classification); err != nil {
				return err
			}

			if !classification.Safe() {
				return fmt.Errorf("%d %w", classification.BreakingCount, domain.ErrBreakingChanges)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "Published schema tag to validate against (default from config)")
	cmd.Flags().StringVar(&period, "validationPeriod", "", "How far back usage counts, as seconds or a duration like 2w")
	cmd.Flags().IntVar(&threshold, "queryCountThreshold", 0, "Ignore operations exercised fewer times than this")
	cmd.Flags().Float64Var(&percentage, "queryCountThresholdPercentage", 0, "Ignore operations below this fraction of total traffic (0-0.05)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&markdownOutput, "markdown", false, "Output as Markdown")
	cmd.Flags().StringVar(&path, "path", ".", "Project path")
	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

func emitReport(
	cmd *cobra.Command,
	mode outputMode,
	cfg domain.ProjectConfig,
	result *domain.CheckResult,
	classification domain.Classification,
) error {
	out := cmd.OutOrStdout()

	switch mode {
	case modeJSON:
		doc, err := report.JSON(result)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, doc)

	case modeMarkdown:
		fmt.Fprint(out, report.Markdown(cfg.Service, cfg.Tag, result, classification))

	default:
		color := isatty.IsTerminal(os.Stdout.Fd())
		tbl := report.BuildTable(result.Changes)
		fmt.Fprint(out, tui.RenderTable(tbl, color))
		if len(tbl.Rows) > 0 {
			fmt.Fprintln(out)
			fmt.Fprint(out, tui.RenderSummary(classification, color))
		}
	}

	return nil
}
