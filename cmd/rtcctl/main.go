// Command rtcctl reads, sets and syncs a BM8563 or PCF8523 real-time clock
// attached to a Linux I2C bus.
//
//	rtcctl --bus 1 init
//	rtcctl --bus 1 set now
//	rtcctl --bus 1 sync --server time.nist.gov
//	rtcctl --bus 1 get
package main

import (
	"fmt"
	"os"

	"github.com/ajanata/drivers/internal/cli"
)

func main() {
	app := cli.New()
	err := app.Command().Execute()
	if cerr := app.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
