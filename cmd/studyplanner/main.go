package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kumaresh12818/smart-study-planner/internal/alarm"
	"github.com/kumaresh12818/smart-study-planner/internal/extract"
	"github.com/kumaresh12818/smart-study-planner/internal/model"
	"github.com/kumaresh12818/smart-study-planner/internal/planner"
	"github.com/kumaresh12818/smart-study-planner/internal/update"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "studyplanner",
		Short:         "Adaptive study planner in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}
	root.AddCommand(newTUICmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newExtractCmd())
	return root
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive planner",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}
}

func runTUI() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	engine := alarm.NewEngine(cfg.AlarmBuffer)
	engine.Start()
	defer engine.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithConfig(engine, notifier, cfg))
	_, err := program.Run()
	return err
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <request>",
		Short: "Generate a study schedule from a free-text request and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			req := extract.Extract(text, nil)

			now := time.Now()
			examDate := model.DateOf(now).AddDate(0, 0, req.HorizonDays)
			subjects := make([]model.Subject, 0, len(req.SubjectNames))
			for _, name := range req.SubjectNames {
				subject, err := model.NewSubject(model.SubjectConfig{
					Name:       name,
					Difficulty: 5,
					Priority:   8,
					ExamDate:   examDate,
				})
				if err != nil {
					return err
				}
				subjects = append(subjects, subject)
			}

			tasks, err := planner.Generate(subjects, req.HorizonDays, now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "horizon: %d days, subjects: %s\n", req.HorizonDays, strings.Join(req.SubjectNames, ", "))
			for _, task := range tasks {
				fmt.Fprintf(out, "%s  %-32s %4dm  %s\n", model.FormatDate(task.ScheduledDate), task.Title, task.Duration, task.Type)
			}
			return nil
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <request>",
		Short: "Show what the planner understands from a free-text request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := extract.Extract(strings.Join(args, " "), nil)
			fmt.Fprintf(cmd.OutOrStdout(), "horizon: %d days\nsubjects: %s\n", req.HorizonDays, strings.Join(req.SubjectNames, ", "))
			return nil
		},
	}
}
