package main

import (
	"context"
	"fmt"
	"os"

	"famcash/internal/app"
	"famcash/internal/domain/user"
	"famcash/internal/money"
	"famcash/pkg/logger"
)

func main() {
	log := logger.NewFromEnv()

	application, err := app.New(log)
	if err != nil {
		log.Error("app: init failed", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Error("app: close failed", "err", err)
		}
	}()

	command := "status"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx := context.Background()
	if err := run(ctx, application, command); err != nil {
		log.Error("command failed", "command", command, "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.App, command string) error {
	switch command {
	case "status":
		return status(application)
	case "summary":
		return summary(ctx, application)
	case "goals":
		return listGoals(ctx, application)
	default:
		return fmt.Errorf("unknown command %q (expected status, summary or goals)", command)
	}
}

func status(application *app.App) error {
	restored, err := application.Session.Restore()
	if err != nil {
		return err
	}

	fmt.Printf("database: %s\n", application.Config.DB.Path)
	fmt.Printf("theme:    %s\n", application.Session.ThemeMode())
	if restored == nil {
		fmt.Println("session:  logged out")
		return nil
	}
	fmt.Printf("session:  %s <%s>\n", restored.Name, restored.Email)
	return nil
}

func summary(ctx context.Context, application *app.App) error {
	current, err := restoredUser(application)
	if err != nil {
		return err
	}

	totals, err := application.Transactions.Summarize(ctx, current.ID)
	if err != nil {
		return err
	}

	fmt.Printf("income:  %s\n", money.FormatCents(totals.Income))
	fmt.Printf("expense: %s\n", money.FormatCents(totals.Expense))
	fmt.Printf("balance: %s\n", money.FormatCents(totals.Balance))
	return nil
}

func listGoals(ctx context.Context, application *app.App) error {
	current, err := restoredUser(application)
	if err != nil {
		return err
	}
	if current.FamilyID == nil {
		return fmt.Errorf("current user has no family")
	}

	listed, err := application.Goals.ListByFamily(ctx, *current.FamilyID)
	if err != nil {
		return err
	}

	for _, goal := range listed {
		date := "no date"
		if goal.TargetDate != nil {
			date = goal.TargetDate.Format("2006-01-02")
		}
		fmt.Printf("[%s] %s  %s / %s (%.0f%%)  %s\n",
			goal.Status, goal.Name,
			money.FormatCents(goal.CurrentAmount), money.FormatCents(goal.TargetAmount),
			goal.Progress()*100, date)
	}
	return nil
}

func restoredUser(application *app.App) (*user.User, error) {
	restored, err := application.Session.Restore()
	if err != nil {
		return nil, err
	}
	if restored == nil {
		return nil, fmt.Errorf("no persisted session; log in from the app first")
	}
	return restored, nil
}
