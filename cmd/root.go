package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/scalarorg/evmgen/config"
	"github.com/scalarorg/evmgen/internal/generator"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "evmgen",
		Short: "EVM contract event binding generator",
		Run:   run,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) {
	// Initialize logger
	config.InitLogger()

	// Load and validate the generation config
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := generator.New(cfg).Run(); err != nil {
		log.Fatal().Err(err).Msg("Failed to generate event bindings")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"evmgen.json",
		"Path to the generation config file",
	)
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}
