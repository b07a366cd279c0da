package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "verbdef",
	Short:         "Verb definition recognizer",
	Long:          "verbdef checks whether verb definition fragments (signature, define block, branches, end) are well formed.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFile(viper.GetString("env_file"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().Bool("debug", false, "Debug output")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file loaded before reading VERBDEF_* variables")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("env_file", rootCmd.PersistentFlags().Lookup("env-file"))
}

func initConfig() {
	viper.SetEnvPrefix("VERBDEF")
	viper.AutomaticEnv()
}

// loadEnvFile exports the variables in a dotenv file without overriding ones
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// newLogger builds the stderr logger for one command invocation, tagged with
// a fresh run id.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case viper.GetBool("debug"):
		level = slog.LevelDebug
	case viper.GetBool("verbose"):
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if viper.GetString("log_format") == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("run_id", uuid.New().String())
}

// readSource returns the text named by args: a file path, "-" for stdin, or
// the built-in fallback when args is empty.
func readSource(cmd *cobra.Command, args []string, fallback string) (name, src string, err error) {
	if len(args) == 0 {
		return "<sample>", fallback, nil
	}
	name = args[0]
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return name, "", fmt.Errorf("reading input: %w", err)
	}
	return name, string(data), nil
}
