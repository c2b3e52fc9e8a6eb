package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/sweetpay/restbase/internal/constants"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the API token",
		Long:  "Prompt for the Sweetpay API token and persist it to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("API token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return ErrTokenRequired
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to find home directory: %w", err)
			}

			configDir := filepath.Join(home, ".sweetpay")
			if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}

			viper.Set("token", token)

			configFile := filepath.Join(configDir, "config.yml")
			if err := viper.WriteConfigAs(configFile); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			if err := os.Chmod(configFile, constants.ConfigFilePerm); err != nil {
				return fmt.Errorf("failed to restrict config permissions: %w", err)
			}

			fmt.Println("Token saved to", configFile)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "store the given token without prompting")

	return cmd
}
