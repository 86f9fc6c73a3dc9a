package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graytonio/slack-intro-bot/lib/config"
	"github.com/graytonio/slack-intro-bot/lib/intro"
	"github.com/graytonio/slack-intro-bot/lib/server"
	"github.com/graytonio/slack-intro-bot/lib/store"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Slack event receiver",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetConfig()
		if cfg.BotToken == "" {
			return errors.New("SLACK_BOT_TOKEN is not set")
		}
		if cfg.SigningSecret == "" {
			return errors.New("SLACK_SIGNING_SECRET is not set")
		}

		st, err := store.Open(store.Config{Driver: cfg.StoreDriver, Dir: cfg.DataDir})
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Load(); err != nil {
			return err
		}

		client := slack.New(cfg.BotToken, slack.OptionDebug(cfg.RequestLogEnabled))
		handler := intro.NewHandler(client, st)
		receiver := server.New(server.Config{
			SigningSecret:     cfg.SigningSecret,
			RequestLogEnabled: cfg.RequestLogEnabled,
		}, handler)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: receiver.Handler(),
		}

		errCh := make(chan error, 1)
		go func() {
			logrus.WithField("port", cfg.Port).Info("⚡️ intro-bot is running!")
			errCh <- srv.ListenAndServe()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logrus.WithField("signal", sig.String()).Info("shutting down")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
