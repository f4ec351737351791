package system

import (
	"fmt"
	"time"

	"steady/internal/backup"
	"steady/internal/cli"
	"steady/internal/notify"
	"steady/internal/timeutil"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: state file loads and parses
	state, err := ctx.Store.GetState()
	if err != nil {
		fmt.Printf("❌ State file: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ State file: OK\n")
	}

	// Check 2: clean-start timestamp parses
	if err == nil {
		if timeutil.ParseCleanStart(state.CleanStart).IsZero() {
			fmt.Printf("⚠ Clean start: WARNING\n")
			fmt.Printf("   %q does not parse as RFC3339; elapsed time will read as zero\n", state.CleanStart)
		} else {
			fmt.Printf("✓ Clean start: OK\n")
		}
	} else {
		fmt.Printf("⊘ Clean start: SKIPPED (state not loaded)\n")
	}

	// Check 3: backups present (warning only)
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, backupErr := mgr.ListBackups()
	if backupErr != nil || len(backups) == 0 {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   No backups found; run 'steady backup' to create one\n")
	} else {
		fmt.Printf("✓ Backups present: OK (%d)\n", len(backups))
	}

	// Check 4: notification platform
	platform := notify.Detect()
	if !platform.Supported() {
		fmt.Printf("⊘ Notification platform: UNSUPPORTED\n")
		fmt.Printf("   Scheduled reminders are unavailable on this host\n")
	} else {
		fmt.Printf("✓ Notification platform: OK\n")

		local, _ := platform.(*notify.LocalPlatform)
		if configErr := local.Configure(); configErr != nil {
			fmt.Printf("❌ Notification store: FAIL\n")
			fmt.Printf("   Error: %v\n", configErr)
			hasError = true
		} else {
			defer local.Close()
			fmt.Printf("✓ Notification store: OK\n")

			// Check 5: pending schedule consistency
			pending, pendErr := local.Pending()
			switch {
			case pendErr != nil:
				fmt.Printf("❌ Scheduled reminders: FAIL\n")
				fmt.Printf("   Error: %v\n", pendErr)
				hasError = true
			case len(pending) == 0:
				if err == nil && state.Settings.ReminderEnabled() {
					fmt.Printf("⚠ Scheduled reminders: WARNING\n")
					fmt.Printf("   Reminders are enabled but nothing is scheduled; run 'steady settings --reminder'\n")
				} else {
					fmt.Printf("✓ Scheduled reminders: OK (none, reminders disabled)\n")
				}
			default:
				next := pending[0].TriggerAt
				fmt.Printf("✓ Scheduled reminders: OK (%d pending, next at %s)\n",
					len(pending), next.Format("2006-01-02 15:04"))
			}

			// Check 6: delivery agent
			if local.Agent().Reachable() {
				fmt.Printf("✓ Delivery agent: OK\n")
			} else {
				fmt.Printf("⚠ Delivery agent: WARNING\n")
				fmt.Printf("   steady-agent is not running; due reminders will not appear\n")
			}
		}
	}

	// Check 7: clock sanity
	if time.Now().Year() < 2020 {
		fmt.Printf("❌ System clock: FAIL\n")
		fmt.Printf("   Clock reads %v, reminder triggers would be wrong\n", time.Now())
		hasError = true
	} else {
		fmt.Printf("✓ System clock: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}
