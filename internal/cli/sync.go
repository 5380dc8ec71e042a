package cli

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// queryNTP returns the current time according to server.
func queryNTP(server string, timeout time.Duration) (time.Time, error) {
	resp, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return time.Time{}, err
	}
	if err := resp.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", server, err)
	}
	return time.Now().Add(resp.ClockOffset), nil
}

func (a *App) syncCmd() *cobra.Command {
	var (
		server  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Set the clock from an NTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clock()
			if err != nil {
				return err
			}
			t, err := a.NTPTime(server, timeout)
			if err != nil {
				return fmt.Errorf("ntp: %w", err)
			}
			if err := c.Set(t); err != nil {
				return err
			}
			a.Log.Info("clock synced", zap.String("server", server), zap.Time("time", t.UTC()))
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "pool.ntp.org", "NTP server")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "NTP query timeout")
	return cmd
}
