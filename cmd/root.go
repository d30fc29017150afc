/*
Copyright © 2023 Yurii Melnychuk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ymelnychuk/satchel/colors"
	"github.com/ymelnychuk/satchel/logger"
	"github.com/ymelnychuk/satchel/shared"
	"github.com/ymelnychuk/satchel/version"
)

var (
	cfgFile string
	config  *viper.Viper
	logg    *zap.SugaredLogger

	// storageFs is the filesystem the data documents live on. Tests
	// swap it for an in-memory one.
	storageFs afero.Fs = afero.NewOsFs()

	isDevEnv  bool
	isTestEnv bool
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands.
// Initialized at declaration so the subcommand files can attach to it
// from their own init funcs.
var rootCmd = createRootCmd()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initLogger, initConfig)

	rootCmd.Version = fmt.Sprintf("v%s", version.Version)
}

func createRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "satchel",
		Short: `satchel is a console personal data manager.

It keeps your contacts (phones, emails, birthdays, addresses) and
free-form notes in plain JSON files, and lets you search and browse
them from the command line.`,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.satchel.yaml)")
	cmd.PersistentFlags().BoolVarP(&isDevEnv, "dev", "", false, "run in development mode")
	cmd.PersistentFlags().BoolVarP(&isTestEnv, "test", "", false, "run in test mode")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	return cmd
}

func initLogger() {
	logg = logger.NewLogger(verbose)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config = viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(cfgFile)
	} else {
		configName, configDir, err := defaultCfgNameAndDir()
		cobra.CheckErr(err)

		// If config file is not found, create one with the default content
		configFilePath := filepath.Join(configDir, configName)
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			err = os.WriteFile(configFilePath, []byte(defaultConfigValue()), 0600)
			cobra.CheckErr(err)
		}

		// Search config in home directory with name ".satchel" (without extension).
		config.AddConfigPath(configDir)
		config.SetConfigType("yaml")
		config.SetConfigName(configName)
	}

	config.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err == nil {
		logg.Debugf("using config file: %s", config.ConfigFileUsed())
	}
}

// loadConfig unmarshals and validates the app config. Relative storage
// paths are resolved against the config file's directory, so the data
// files sit next to the config by default.
func loadConfig() (*shared.Config, error) {
	cfg := shared.Config{}

	if err := config.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, formattedError("incomplete config in %s: %v", config.ConfigFileUsed(), err)
	}

	configDir := filepath.Dir(config.ConfigFileUsed())
	if !filepath.IsAbs(cfg.Storage.Contacts) {
		cfg.Storage.Contacts = filepath.Join(configDir, cfg.Storage.Contacts)
	}
	if !filepath.IsAbs(cfg.Storage.Notes) {
		cfg.Storage.Notes = filepath.Join(configDir, cfg.Storage.Notes)
	}

	return &cfg, nil
}

func defaultCfgNameAndDir() (configName string, configDir string, err error) {
	configName = ".satchel.yaml"

	// Use home directory for production
	configDir, err = os.UserHomeDir()
	if err != nil {
		return "", "", err
	}

	if isDevEnv || isTestEnv {
		configName = ".satchel.dev.yaml"
		configDir, err = os.Getwd()
		if err != nil {
			return "", "", err
		}

		if isTestEnv {
			configName = ".satchel.yaml"
			configDir = filepath.Join(configDir, "test-fixtures")
		}
	}

	return configName, configDir, err
}

// defaultConfigValue returns the default content for .satchel.yaml
func defaultConfigValue() string {
	return `# Where satchel keeps your data. Relative paths are resolved
# against the directory this config file lives in.
storage:
  contacts: address_book.json
  notes: notes_data.json
`
}

func formattedError(format string, a ...interface{}) error {
	return fmt.Errorf(colors.Red(format), a...)
}
