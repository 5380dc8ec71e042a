package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajanata/drivers/bm8563"
)

// Layout used when printing times, the same as C's "%c".
const Layout = "Mon Jan _2 15:04:05 2006"

func (a *App) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Clear the control and status registers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clock()
			if err != nil {
				return err
			}
			dev, ok := c.(interface{ Init() error })
			if !ok {
				return fmt.Errorf("init is not supported for %s", a.opts.Chip)
			}
			if err := dev.Init(); err != nil {
				return err
			}
			a.Log.Info("control registers cleared", zap.String("chip", a.opts.Chip))
			return nil
		},
	}
}

// read returns the clock's time. A low voltage condition is logged and
// reported through lowVoltage instead of failing.
func (a *App) read() (t time.Time, lowVoltage bool, err error) {
	c, err := a.clock()
	if err != nil {
		return time.Time{}, false, err
	}
	t, err = c.Now()
	if errors.Is(err, bm8563.ErrLowVoltage) {
		a.Log.Warn("low voltage detected, time may be wrong", zap.Time("rtc", t))
		return t, true, nil
	}
	return t, false, err
}

func (a *App) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the time held by the clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, lowVoltage, err := a.read()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (day %d)", t.Format(Layout), t.YearDay())
			if lowVoltage {
				fmt.Fprint(cmd.OutOrStdout(), " low voltage")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *App) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [RFC3339 time|now]",
		Short: "Write a time to the clock, the system time by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.Now()
			if len(args) == 1 && args[0] != "now" {
				var err error
				t, err = time.Parse(time.RFC3339, args[0])
				if err != nil {
					return err
				}
			}
			c, err := a.clock()
			if err != nil {
				return err
			}
			if err := c.Set(t); err != nil {
				return err
			}
			a.Log.Info("time set", zap.String("chip", a.opts.Chip), zap.Time("time", t.UTC()))
			return nil
		},
	}
}

func (a *App) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Print the difference between the system time and the clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rtc, _, err := a.read()
			if err != nil {
				return err
			}
			sys := a.Now().UTC()
			fmt.Fprintf(cmd.OutOrStdout(), "RTC time: %v\nSystem time: %v\nDifference (sys - rtc): %v\n",
				rtc, sys, sys.Sub(rtc).Truncate(time.Millisecond))
			return nil
		},
	}
}
