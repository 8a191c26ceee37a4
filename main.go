package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/robgonnella/deckhand/cli/commands"
	app_info "github.com/robgonnella/deckhand/internal/app-info"
	"github.com/robgonnella/deckhand/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRuntimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	// share run-time config globally using viper
	viper.Set("config-dir", configDir)
	viper.Set("config-file", path.Join(configDir, app_info.NAME+".yml"))
	viper.Set("log-file", path.Join(configDir, app_info.NAME+".log"))
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", path.Join(cacheDir, app_info.NAME+".db"))

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	if err := setRuntimeConfig(); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{})

	// execute the cobra command and exit with error code if necessary
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
