// Package commands implements CLI command handlers for distpatch.
package commands

import (
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/distpatch/internal/config"
	"github.com/Sumatoshi-tech/distpatch/pkg/patch"
)

// patcherRunner abstracts the patch engine so tests can substitute it.
type patcherRunner func(rules []patch.Rule, opts patch.Options, onFile func(string)) (*patch.Report, error)

// RootCommand holds configuration and dependencies for the zero-argument
// patch run.
type RootCommand struct {
	configPath string
	root       string
	include    string
	rulesFile  string
	dryRun     bool
	showDiff   bool
	quiet      bool
	noColor    bool
	verbose    bool

	runner patcherRunner
}

// NewRootCommand creates the distpatch root command. Invoked with no
// arguments it patches the default build-output tree and exits 0, including
// when nothing matched.
func NewRootCommand() *cobra.Command {
	return newRootCommandWithDeps(runPatcher)
}

func newRootCommandWithDeps(runner patcherRunner) *cobra.Command {
	rc := &RootCommand{runner: runner}

	cmd := &cobra.Command{
		Use:   "distpatch",
		Short: "Inline circular __exportAll imports in bundler output",
		Long: `distpatch rewrites bundler-emitted JavaScript so that __exportAll imported
from a circularly-dependent chunk is replaced with an inlined copy of the
helper, avoiding TDZ errors at module evaluation time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          rc.run,
	}

	cmd.Flags().StringVar(&rc.configPath, "config", "", "Config file path (default: .distpatch.yaml in CWD or $HOME)")
	cmd.Flags().StringVar(&rc.root, "root", "", `Build output directory to patch (default "dist")`)
	cmd.Flags().StringVar(&rc.include, "include", "", `Glob for candidate files, ** crosses directories (default "**.js")`)
	cmd.Flags().StringVar(&rc.rulesFile, "rules", "", "YAML file with extra rules applied after the builtin set")
	cmd.Flags().BoolVar(&rc.dryRun, "dry-run", false, "Report changes without writing files")
	cmd.Flags().BoolVar(&rc.showDiff, "diff", false, "Show a diff for every changed file")
	cmd.Flags().BoolVarP(&rc.quiet, "quiet", "q", false, "Suppress progress output")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&rc.verbose, "verbose", "v", false, "Show a per-rule summary table")

	return cmd
}

func (rc *RootCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := rc.loadConfig(cmd)
	if err != nil {
		return err
	}

	rules := patch.BuiltinRules()

	if cfg.RulesFile != "" {
		extra, loadErr := patch.LoadRuleFile(cfg.RulesFile)
		if loadErr != nil {
			return loadErr
		}

		rules = append(rules, extra...)
	}

	opts := patch.Options{
		Root:           cfg.Root,
		Include:        cfg.Include,
		DryRun:         cfg.DryRun,
		CollectChanges: cfg.ShowDiff,
	}

	bar := rc.progressBar(cfg, cmd.ErrOrStderr())

	var onFile func(string)
	if bar != nil {
		onFile = func(string) { _ = bar.Add(1) }
	}

	report, err := rc.runner(rules, opts, onFile)

	if bar != nil {
		_ = bar.Finish()
	}

	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()
	colored := !rc.noColor

	if cfg.ShowDiff {
		for _, change := range report.Changes {
			patch.WriteDiff(writer, change, colored)
		}
	}

	report.WriteSummary(writer, colored)

	if rc.verbose {
		report.WriteTable(writer)
	}

	return nil
}

// loadConfig layers explicit flags over the file/env configuration.
func (rc *RootCommand) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(rc.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("root") {
		cfg.Root = rc.root
	}

	if cmd.Flags().Changed("include") {
		cfg.Include = rc.include
	}

	if cmd.Flags().Changed("rules") {
		cfg.RulesFile = rc.rulesFile
	}

	if rc.dryRun {
		cfg.DryRun = true
	}

	if rc.showDiff {
		cfg.ShowDiff = true
	}

	if rc.quiet {
		cfg.Quiet = true
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// progressBar returns a stderr spinner, or nil when quiet.
func (rc *RootCommand) progressBar(cfg *config.Config, writer io.Writer) *progressbar.ProgressBar {
	if cfg.Quiet {
		return nil
	}

	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionSetDescription("patching"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

func runPatcher(rules []patch.Rule, opts patch.Options, onFile func(string)) (*patch.Report, error) {
	patcher, err := patch.New(rules, opts)
	if err != nil {
		return nil, err
	}

	patcher.OnFile = onFile

	return patcher.Run()
}
