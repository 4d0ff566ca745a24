package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/contact-book-bot/internal/contacts"
	"github.com/username/contact-book-bot/internal/repl"
	"go.uber.org/zap"
)

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive assistant session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			book := contacts.NewAddressBook()

			logger.Info("Starting interactive session",
				zap.String("prompt", cfg.REPL.Prompt),
				zap.Bool("no_color", cfg.UI.NoColor))

			sess := repl.NewSession(book, os.Stdin, os.Stdout, repl.Config{
				Prompt: cfg.REPL.Prompt,
				Theme:  themeFor(cfg),
				Logger: logger,
			})
			return sess.Run()
		},
	}

	return cmd
}
