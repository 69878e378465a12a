package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Configuration keys, also used as flag names.
const (
	keyConfig     = "config"
	keyLogLevel   = "log-level"
	keyStatusLine = "status-line"
	keyDecode     = "decode"
	keyMaxLength  = "max-length"
)

// EnvPrefix is the prefix of environment variables that override settings,
// e.g., NNTPHEADERS_LOG_LEVEL.
const EnvPrefix = "NNTPHEADERS"

// NewRootCmd builds the root command with its own configuration.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "nntpheaders",
		Short:         "Tools for inspecting the headers of NNTP articles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initConfig(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "read settings from this YAML file")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn, or error")
	_ = v.BindPFlag(keyConfig, flags.Lookup(keyConfig))
	_ = v.BindPFlag(keyLogLevel, flags.Lookup(keyLogLevel))

	rootCmd.AddCommand(newDumpCmd(v))

	return rootCmd
}

// initConfig loads the config file, if any, and environment overrides.
func initConfig(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfg := v.GetString(keyConfig); cfg != "" {
		v.SetConfigFile(cfg)
		return v.ReadInConfig()
	}

	return nil
}

// newLogger builds a logger writing to stderr at the configured level.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// Execute runs the nntpheaders command.
func Execute() error {
	return NewRootCmd().Execute()
}
