package cmd

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "wasmoci",
	Short: "Push and pull WebAssembly modules with OCI registries",
	Long:  "CLI for storing registry logins and transferring wasm modules as OCI artifacts.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no_color") {
			color.NoColor = true
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ~/.config/wasmoci/config.yaml)")
	rootCmd.PersistentFlags().String("auth-file", "", "credential file (default: ~/.config/wasmoci/auth.json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	viper.BindPFlag("auth_file", rootCmd.PersistentFlags().Lookup("auth-file"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initConfig() {
	if cfg := rootCmd.PersistentFlags().Lookup("config").Value.String(); cfg != "" {
		viper.SetConfigFile(cfg)
	} else {
		viper.AddConfigPath(configDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WASMOCI")
	viper.AutomaticEnv()
	viper.SetDefault("auth_file", filepath.Join(configDir(), "auth.json"))

	if err := viper.ReadInConfig(); err == nil {
		Debug("Using config file: %s", viper.ConfigFileUsed())
	}
}

func configDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wasmoci")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "wasmoci")
	}
	return ".wasmoci"
}

func getAuthFile() string {
	return viper.GetString("auth_file")
}
