package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sweetpay/restbase/cmd/sweetpay/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sweetpay",
	Short: "Sweetpay API CLI",
	Long: `A command-line interface for the Sweetpay checkout and subscription APIs.

Requests are sent to the test environment when --test is set, and to
production otherwise.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.sweetpay/config.yml)")
	rootCmd.PersistentFlags().StringP("token", "t", "", "API token")
	rootCmd.PersistentFlags().Bool("test", false, "target the test environment")
	rootCmd.PersistentFlags().Duration("timeout", 0, "request timeout (default 15s)")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("transport", "http", "transport to dispatch over (http, nats)")
	rootCmd.PersistentFlags().String("nats-url", "", "NATS server URL for the nats transport")
	rootCmd.PersistentFlags().String("nats-subject", "sweetpay.api", "NATS subject for the nats transport")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("test", rootCmd.PersistentFlags().Lookup("test"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("transport", rootCmd.PersistentFlags().Lookup("transport"))
	_ = viper.BindPFlag("nats-url", rootCmd.PersistentFlags().Lookup("nats-url"))
	_ = viper.BindPFlag("nats-subject", rootCmd.PersistentFlags().Lookup("nats-subject"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewCheckoutCommand())
	rootCmd.AddCommand(commands.NewSubscriptionsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.sweetpay/config.yml
		viper.AddConfigPath(filepath.Join(home, ".sweetpay"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SWEETPAY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
