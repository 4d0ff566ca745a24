package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/contact-book-bot/internal/contacts"
	"github.com/username/contact-book-bot/internal/ui"
	"github.com/username/contact-book-bot/pkg/dateutil"
	"go.uber.org/zap"
)

func birthdaysCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show upcoming birthdays for the contacts listed in the config",
		Long:  "Build an address book from the config's contacts list and print which birthdays fall in the next week, weekend birthdays moved to Monday.",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := dateutil.Today()
			if dateStr != "" {
				t, err := dateutil.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
				today = dateutil.StartOfDay(t)
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			book := contacts.NewAddressBook()
			for _, seed := range cfg.Contacts {
				if err := book.AddRecord(seed.Name, seed.Phone, seed.Birthday); err != nil {
					logger.Warn("Skipping invalid contact",
						zap.String("name", seed.Name),
						zap.Error(err))
					continue
				}
			}

			logger.Info("Computing upcoming birthdays",
				zap.Time("today", today),
				zap.Int("contacts", book.Len()))

			lines := ui.BirthdayLines(book.UpcomingBirthdays(today))
			if len(lines) == 0 {
				fmt.Println("No upcoming birthdays this week.")
				return nil
			}

			theme := themeFor(cfg)
			fmt.Println(theme.Header.Render(fmt.Sprintf("Birthdays for the week of %s:", today.Format("2006-01-02"))))
			for _, line := range lines {
				fmt.Println(line)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Run as if today were this date (YYYY-MM-DD)")

	return cmd
}
