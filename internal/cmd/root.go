package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	configErr error
)

// rootCmd analyzes a single access log when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "loglens [file]",
	Short: "Access-log analyzer and reporter",
	Long: `loglens parses web-server access-log lines and prints summary statistics:
request counts, top requesters, status-code and method distributions, and a
listing of failed (4xx/5xx) requests.

With no argument the built-in sample log is analyzed. Use "-" to read stdin.

Examples:
  loglens
  loglens /var/log/nginx/access.log
  cat access.log | loglens - --top 5
  loglens access.log --path "/api/**"`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configErr
	},
	RunE: runAnalyze,
}

// Main runs the root command and returns the process exit code.
func Main() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// Execute runs the root command and exits the process.
func Execute() {
	os.Exit(Main())
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.loglens.yaml)")
	flags.IntP("top", "n", 3, "number of top IPs to list")
	flags.Int("top-paths", 0, "number of top request paths to list (0 disables)")
	flags.StringSliceP("path", "p", nil, "only analyze requests whose path matches this glob (repeatable)")
	flags.Bool("no-color", false, "disable styled output")
	flags.String("log-level", "warn", "diagnostic log level: debug, info, warn, error")

	cobra.CheckErr(viper.BindPFlag("top", flags.Lookup("top")))
	cobra.CheckErr(viper.BindPFlag("top-paths", flags.Lookup("top-paths")))
	cobra.CheckErr(viper.BindPFlag("paths", flags.Lookup("path")))
	cobra.CheckErr(viper.BindPFlag("no-color", flags.Lookup("no-color")))
	cobra.CheckErr(viper.BindPFlag("log-level", flags.Lookup("log-level")))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".loglens")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("loglens")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	initLogging(viper.GetString("log-level"))

	// Only a missing, auto-discovered config file is acceptable. An explicit
	// --config path that cannot be read fails with a plain os error.
	var notFound viper.ConfigFileNotFoundError
	switch {
	case err == nil:
		slog.Debug("loaded config", "file", viper.ConfigFileUsed())
	case errors.As(err, &notFound):
		slog.Debug("no config file found")
	default:
		configErr = fmt.Errorf("read config: %w", err)
	}
}

// initLogging installs the default slog logger on stderr.
func initLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
