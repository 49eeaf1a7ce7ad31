package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/TFMV/findr/walk"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	cfgErr    error
	version   = "0.1.0"
	envPrefix = "FINDR"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "findr [options] <path>",
	Short: "Search a directory tree by type, name, size and depth",
	Long: `findr walks a directory tree depth-first and prints every entry that
matches all of the given filters, one path per line.

Symbolic links are reported as links and never followed. Unreadable
directories and entries are logged to stderr and skipped.

Examples:
  findr .                          all regular files
  findr src --name='*.go'          Go sources
  findr . --iname='*.JPG' --size=+1M
  findr /var/log --type=d --depth=2
  findr . --regex='^test_.*\.py$' --size=-10K`,
	Version:       version,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return cfgErr
		}
		return runFind(cmd.Context(), args[0], viper.GetViper(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// An interrupt cancels the command's context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.findr.yaml)")

	// Predicates
	rootCmd.Flags().StringP("type", "t", "f", "Entry type to report (f|d|s)")
	rootCmd.Flags().String("size", "", "File size filter [+-]N[KMG], e.g. +5K, -10M, 100")
	rootCmd.Flags().String("name", "", "Match the base name against a glob (* matches any sequence)")
	rootCmd.Flags().String("iname", "", "Like --name, but case-insensitive")
	rootCmd.Flags().String("regex", "", "Match the base name against a regular expression")
	rootCmd.Flags().Int("depth", 0, "Maximum directory depth to descend (must be >0)")

	// Logging
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolP("quiet", "q", false, "Only log errors, hiding diagnostics")
	rootCmd.Flags().String("log-format", "console", "Log format (console|json)")
	rootCmd.Flags().String("log-file", "", "Also write logs to this file, rotated by size")

	// Watch
	rootCmd.Flags().BoolP("watch", "w", false, "Keep reporting matching entries as they are created")
	rootCmd.Flags().Duration("watch-timeout", 0, "Stop watching after this duration (0 waits for an interrupt)")

	// Bind flags to viper
	viper.BindPFlag("type", rootCmd.Flags().Lookup("type"))
	viper.BindPFlag("size", rootCmd.Flags().Lookup("size"))
	viper.BindPFlag("name", rootCmd.Flags().Lookup("name"))
	viper.BindPFlag("iname", rootCmd.Flags().Lookup("iname"))
	viper.BindPFlag("regex", rootCmd.Flags().Lookup("regex"))
	viper.BindPFlag("depth", rootCmd.Flags().Lookup("depth"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.Flags().Lookup("quiet"))
	viper.BindPFlag("log-format", rootCmd.Flags().Lookup("log-format"))
	viper.BindPFlag("log-file", rootCmd.Flags().Lookup("log-file"))
	viper.BindPFlag("watch", rootCmd.Flags().Lookup("watch"))
	viper.BindPFlag("watch-timeout", rootCmd.Flags().Lookup("watch-timeout"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			cfgErr = fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	// Search config in home directory with name ".findr" (without extension).
	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".findr")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// configFromViper resolves the search configuration. Validation is left to
// walk.NewPredicateSet.
func configFromViper(v *viper.Viper) walk.Config {
	cfg := walk.Config{
		Type: v.GetString("type"),
		Size: v.GetString("size"),
		Names: walk.NameSources{
			Regex: v.GetString("regex"),
			Glob:  v.GetString("name"),
			IGlob: v.GetString("iname"),
		},
	}
	if v.IsSet("depth") {
		depth := v.GetInt("depth")
		cfg.MaxDepth = &depth
	}
	return cfg
}

func logOptions(v *viper.Viper, stderr io.Writer) walk.LogOptions {
	level := walk.LogLevelWarn
	if v.GetBool("verbose") {
		level = walk.LogLevelDebug
	} else if v.GetBool("quiet") {
		level = walk.LogLevelError
	}
	return walk.LogOptions{
		Level:  level,
		Format: v.GetString("log-format"),
		File:   v.GetString("log-file"),
		Output: stderr,
	}
}

func runFind(ctx context.Context, root string, v *viper.Viper, stdout, stderr io.Writer) error {
	preds, err := walk.NewPredicateSet(configFromViper(v))
	if err != nil {
		return err
	}

	logger, err := walk.NewLogger(logOptions(v, stderr))
	if err != nil {
		return err
	}
	defer logger.Sync()

	watch := v.GetBool("watch")
	out := newPathWriter(stdout, watch)

	w := walk.NewWalker(preds,
		walk.WithMatchFunc(out.WritePath),
		walk.WithLogger(logger),
	)

	if watch {
		if timeout := v.GetDuration("watch-timeout"); timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		_, err = w.Watch(ctx, root)
	} else {
		_, err = w.Walk(root)
	}

	return errors.Join(err, out.Flush())
}
