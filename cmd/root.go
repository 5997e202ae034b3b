// Package cmd provides the root command and CLI setup for ctlint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ctlint.dev/pkg/ctlint/internal/adapter"
	"ctlint.dev/pkg/ctlint/internal/controller"
	"ctlint.dev/pkg/ctlint/internal/domain"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

var buildMetaAdapter adapter.BuildMetaAdapter
var linterRunner adapter.LinterRunnerAdapter
var patchAdapter adapter.PatchAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// compdbFlag points at the build metadata (target manifest or compilation database).
var compdbFlag string

// excludePatterns is a root-level flag that filters sources for applicable commands.
var excludePatterns []string

// verboseFlag turns on dropped-flag diagnostics and debug logging.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	buildMetaAdapter = adapter.NewLocalBuildMetaAdapter()
	linterRunner = adapter.NewLocalLinterRunnerAdapter(actionTimeout())
	patchAdapter = adapter.NewDifflibPatchAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		buildMetaAdapter,
		linterRunner,
		patchAdapter,
		reportStore,
		ui,
	)
}

const compdbHelp = `Build metadata is read from --compdb:
  - targets.yaml              a YAML target manifest (name, srcs, hdrs, defines, includes, copts)
  - compile_commands.json     a clang compilation database (one target per entry)`

const rootLongDescription = `ctlint attaches clang-tidy static analysis to C/C++ build targets. It
translates compiler flags into clang-tidy-compatible arguments, derives a
header filter from each target's headers, and runs the linter per target,
capturing reports, exit codes and (in fix mode) unified patches.

` + compdbHelp

const runLongDescription = `Run a clang-tidy pass over the given targets (default: all targets).

` + compdbHelp

const fixLongDescription = `Run clang-tidy with automatic fixes over the given targets (default: all).
Fixes never touch the originals: they are computed in a temporary copy and
emitted as a unified patch per target, alongside the usual diagnostic report.

` + compdbHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ctlint",
		Short: "clang-tidy driver for C/C++ build targets",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for lint reports and patches",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&compdbFlag, compdbFlagName, "c",
			viper.GetString(compdbFlagName),
			"build metadata file (YAML target manifest or compile_commands.json)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(compdbFlagName), compdbFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude sources matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "report every dropped compiler flag")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// builderOptions assembles the action builder configuration from config and
// flags. Fix mode additionally needs the path of this binary, which hosts
// the patch-runner helper.
func builderOptions(fix bool) (domain.BuilderOptions, error) {
	options := domain.BuilderOptions{
		Binary:                viper.GetString(lintBinaryKey),
		ConfigFiles:           parsePaths(viper.GetStringSlice(lintConfigFilesKey)),
		GlobalConfig:          m.Path(viper.GetString(lintGlobalConfigKey)),
		HeaderFilter:          viper.GetString(lintHeaderFilterKey),
		AutoHeaderFilter:      viper.GetBool(lintAutoHeaderFilterKey),
		AngleIncludesAsSystem: viper.GetBool(lintAngleIncludesKey),
		ToolchainFlags:        m.CompilationFlags(viper.GetStringSlice(lintToolchainFlagsKey)),
		CaptureExitCode:       viper.GetBool(captureExitCodeKey),
		Verbose:               viper.GetBool(logVerboseKey),
		OutputDir:             m.Path(viper.GetString(outputFlagName)),
		Exclude:               viper.GetStringSlice(excludeConfigKey),
		Fix:                   fix,
	}

	if !fix {
		return options, nil
	}

	self, err := os.Executable()
	if err != nil {
		return options, fmt.Errorf("locate ctlint binary: %w", err)
	}

	options.SelfBinary = self

	return options, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
