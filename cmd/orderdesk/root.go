package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tomypizza/orderdesk/orders/store"
	"github.com/tomypizza/orderdesk/theme"
)

var rootCmd = &cobra.Command{
	Use:   "orderdesk",
	Short: "Manage the pizza order list",
	Long: `orderdesk manages the order collection of the ToMyPizza demo: a JSON
file holding the full order list, overwritten after every change.

Configuration sources (in order of precedence):
  1. Command line flags
  2. Environment variables (ORDERDESK_*)
  3. Configuration file (orderdesk.yaml in . or ~/.config/orderdesk)
  4. Defaults`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = viper.BindPFlags(cmd.Flags())
		_ = viper.BindPFlags(cmd.Root().PersistentFlags())
		return initLogging(viper.GetString("log-level"), viper.GetBool("log-stderr"))
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("data", "", "path to the order data file (default: XDG data dir)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-stderr", false, "mirror log output to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(tuiCmd)
}

func initConfig() {
	if configFile := os.Getenv("ORDERDESK_CONFIG"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("orderdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/orderdesk")
	}

	viper.SetEnvPrefix("ORDERDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	// Missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

// dataPath resolves the order data file, creating its directory.
func dataPath() (string, error) {
	path := viper.GetString("data")
	if path == "" {
		path = filepath.Join(xdgDataDir(), "orders.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return path, nil
}

// themePath is the preference file, kept separate from the order data.
func themePath() (string, error) {
	path, err := dataPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(path), "theme"), nil
}

func xdgDataDir() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "orderdesk")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "orderdesk")
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir, "Library", "Application Support", "orderdesk")
	}
	return filepath.Join(homeDir, ".local", "share", "orderdesk")
}

// openStore opens the JSON file store at the configured path.
func openStore() (store.Store, error) {
	path, err := dataPath()
	if err != nil {
		return nil, err
	}
	return store.New(path)
}

// loadTheme returns the saved display preference.
func loadTheme() theme.Theme {
	path, err := themePath()
	if err != nil {
		return theme.Default
	}
	t, err := theme.NewStore(path).Load()
	if err != nil {
		return theme.Default
	}
	return t
}
