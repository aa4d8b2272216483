// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/telekom/netpath/pkg/config"
)

// NewCmdRoot creates a new root command
func NewCmdRoot(version string) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "netpath",
		Short: "netpath, the network path visualizer",
		Long: "netpath asks a trace provider for the hops towards a destination\n" +
			"and shows them as a table or as a graph, in the terminal or via an API.",
		Version:       version,
		SilenceErrors: true,
	}

	cobra.OnInitialize(func() {
		initConfig(cfgFile)
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.netpath.yaml)")

	return rootCmd
}

// Execute adds all child commands to the root command
// and executes the cmd tree
func Execute(version string) {
	cmd := BuildCmd(version)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func BuildCmd(version string) *cobra.Command {
	cmd := NewCmdRoot(version)
	cmd.AddCommand(NewCmdTrace())
	cmd.AddCommand(NewCmdUI())
	cmd.AddCommand(NewCmdServe())
	return cmd
}

func initConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".netpath" (without an extension)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".netpath")
	}

	setDefaults(config.New())
	viper.SetOptions(viper.ExperimentalBindStruct())
	viper.SetEnvPrefix("netpath")
	dotreplacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(dotreplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// stdout carries the trace output
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers the values of the default config
func setDefaults(c config.Config) {
	viper.SetDefault("provider.url", c.Provider.Url)
	viper.SetDefault("provider.timeout", c.Provider.Timeout)
	viper.SetDefault("destination", c.Destination)
	viper.SetDefault("view", c.View)
	viper.SetDefault("api.address", c.Api.ListeningAddress)
}
