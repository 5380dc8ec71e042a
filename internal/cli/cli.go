// Package cli implements rtcctl, a command line tool for RTC chips wired to a
// Linux I2C bus.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/bm8563"
	"github.com/ajanata/drivers/internal/periphbus"
	"github.com/ajanata/drivers/pcf8523"
)

// Clock is what the commands need from an RTC driver.
type Clock interface {
	Now() (time.Time, error)
	Set(t time.Time) error
}

// Options holds the global flags.
type Options struct {
	Bus     string
	Address uint8
	Chip    string
	Verbose bool
}

// App carries the collaborators of every command. The function fields are
// replaced in tests.
type App struct {
	Open    func(name string) (drivers.I2C, error)
	NTPTime func(server string, timeout time.Duration) (time.Time, error)
	Publish func(m Message) error
	Now     func() time.Time

	Log *zap.Logger
	In  io.Reader
	Out io.Writer

	opts Options
	bus  drivers.I2C
}

// New returns an App wired to the host I2C bus, NTP and MQTT.
func New() *App {
	return &App{
		Open:    openPeriph,
		NTPTime: queryNTP,
		Publish: publishMQTT,
		Now:     time.Now,
		In:      os.Stdin,
		Out:     os.Stdout,
	}
}

func openPeriph(name string) (drivers.I2C, error) {
	bus, err := periphbus.Open(name)
	if err != nil {
		return nil, err
	}
	return bus, nil
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:               "rtcctl",
		Short:             "Read and set a battery backed real-time clock over I2C",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.connect,
	}
	root.SetIn(a.In)
	root.SetOut(a.Out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.opts.Bus, "bus", "", "I2C bus name or number (default: first bus found)")
	flags.Uint8Var(&a.opts.Address, "addr", 0, "device address (default: the chip's own)")
	flags.StringVar(&a.opts.Chip, "chip", "bm8563", "RTC chip: bm8563|pcf8523")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "development logging")

	root.AddCommand(a.commands()...)
	root.AddCommand(a.shellCmd())
	return root
}

// commands returns the commands that can also be run from the shell.
func (a *App) commands() []*cobra.Command {
	return []*cobra.Command{
		a.initCmd(),
		a.getCmd(),
		a.setCmd(),
		a.diffCmd(),
		a.syncCmd(),
		a.publishCmd(),
	}
}

func (a *App) connect(cmd *cobra.Command, args []string) error {
	if a.Log == nil {
		var err error
		if a.opts.Verbose {
			a.Log, err = zap.NewDevelopment()
		} else {
			a.Log, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
	}
	if a.bus != nil {
		return nil
	}
	bus, err := a.Open(a.opts.Bus)
	if err != nil {
		return err
	}
	a.bus = bus
	a.Log.Debug("bus open", zap.String("bus", a.opts.Bus), zap.String("chip", a.opts.Chip))
	return nil
}

// Close releases the bus, if one was opened.
func (a *App) Close() error {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	if c, ok := a.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (a *App) clock() (Clock, error) {
	switch a.opts.Chip {
	case "bm8563":
		dev := bm8563.New(a.bus)
		if a.opts.Address != 0 {
			dev.Address = a.opts.Address
		}
		return &dev, nil
	case "pcf8523":
		dev := pcf8523.New(a.bus)
		if a.opts.Address != 0 {
			dev.Address = a.opts.Address
		}
		return &dev, nil
	}
	return nil, fmt.Errorf("unknown chip %q", a.opts.Chip)
}
