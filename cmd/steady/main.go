package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"steady/internal/cli"
	"steady/internal/cli/backups"
	"steady/internal/cli/settings"
	"steady/internal/cli/system"
	"steady/internal/constants"
	"steady/internal/errors"
	"steady/internal/logger"
	"steady/internal/notify"
	"steady/internal/reminder"
	"steady/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"State file path." type:"path" default:"~/.config/steady/steady.json"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Set up steady and choose your clean start."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive home screen." default:"1"`
	Status   cli.StatusCmd        `cmd:"" help:"Show elapsed clean time."`
	Checkin  cli.CheckinCmd       `cmd:"" help:"Record today's mood check-in."`
	Checkins cli.CheckinLogCmd    `cmd:"" help:"Show recent check-ins."`
	Reset    cli.ResetCmd         `cmd:"" help:"Start over with a new clean-start date."`
	History  cli.HistoryCmd       `cmd:"" help:"Show previous runs."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage display name and reminder settings."`
	Note     struct {
		Add  cli.NoteAddCmd  `cmd:"" help:"Add a note." default:"1"`
		List cli.NoteListCmd `cmd:"" help:"List notes."`
	} `cmd:"" help:"Keep free-form notes."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage state backups."`
	Deliver system.DeliverCmd `cmd:"" hidden:"" help:"Deliver due notifications (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Clean-time companion: track your streak, check in daily, get gentle reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store:    storage.NewJSONStore(CLI.Config),
		Reminder: reminder.New(notify.Detect()),
	}

	// Load the state before running the command (init handles its own setup)
	selected := ""
	if ctx.Selected() != nil {
		selected = ctx.Selected().Name
	}
	if selected != "init" {
		if err := appCtx.Store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	// App launch with reminders left enabled from a previous session:
	// reconcile the platform's schedule with the stored settings.
	if selected == "tui" {
		if state, err := appCtx.Store.GetState(); err == nil && state.Settings.ReminderEnabled() {
			if _, err := appCtx.SyncReminders(); err != nil {
				logger.Warn("Reminder sync on launch failed", "error", err)
			}
		}
	}

	errors.Fatal(ctx.Run(appCtx))
}
