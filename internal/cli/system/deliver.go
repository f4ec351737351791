package system

import (
	"fmt"
	"time"

	"steady/internal/cli"
	"steady/internal/notify"
)

// DeliverCmd is the delivery tick, run periodically by a cron job or the
// agent itself. It pushes every scheduled notification whose trigger instant
// has passed and marks it delivered.
type DeliverCmd struct {
	DryRun bool `help:"Print due notifications to stdout instead of pushing them."`
}

func (c *DeliverCmd) Run(ctx *cli.Context) error {
	platform, ok := notify.Detect().(*notify.LocalPlatform)
	if !ok {
		// Nothing to deliver on unsupported hosts
		return nil
	}
	defer platform.Close()

	if c.DryRun {
		if err := platform.Configure(); err != nil {
			return err
		}
		pending, err := platform.Pending()
		if err != nil {
			return err
		}
		now := time.Now()
		for _, n := range pending {
			if n.TriggerAt.After(now) {
				continue
			}
			fmt.Printf("[DryRun] %s: %s\n", n.Title, n.Body)
		}
		return nil
	}

	delivered, err := platform.DeliverDue(time.Now())
	if err != nil {
		return fmt.Errorf("delivery failed after %d notifications: %w", delivered, err)
	}
	return nil
}
