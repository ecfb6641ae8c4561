package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	config "task-service.com/task-service/internal/configs"
)

var (
	envFile    string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:           "task-service",
	Short:         "Task management service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment when present")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (yaml, json, toml)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	return config.Load(config.Options{
		EnvFile:    envFile,
		ConfigFile: configFile,
	})
}
