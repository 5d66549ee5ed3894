package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/maastricht-university/gesture-pipeline/config"
)

type app struct {
	configPath string
	logLevel   string
	v          *viper.Viper
	conf       *cfg.Root
	log        *logrus.Logger
}

// NewRoot builds the gesture command tree.
func NewRoot() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	root := &cobra.Command{
		Use:           "gesture",
		Short:         "Facial expression preview and speech translation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config.yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newAnnotateCmd(a), newTranslateCmd(a))
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	conf, err := cfg.Load(a.configPath, a.v)
	if err != nil {
		return err
	}
	a.conf = conf

	lvl := conf.Pipeline.LogLvl
	if a.logLevel != "" {
		lvl = a.logLevel
	}
	parsed, err := logrus.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(parsed)
	return nil
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := NewRoot().ExecuteContext(ctx)
	stop()
	if err != nil {
		logrus.WithError(err).Error("gesture failed")
		os.Exit(1)
	}
}
