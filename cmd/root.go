package cmd

import (
	"fmt"
	"os"

	"github.com/graytonio/slack-intro-bot/lib/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "intro-bot",
	Short: "Slack bot for registering and viewing self-introductions",
}

func init() {
	cobra.OnInitialize(func() {
		if err := config.Load(); err != nil {
			logrus.WithError(err).Fatal("could not load config")
		}
		config.SetLogLevel()
	})

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
