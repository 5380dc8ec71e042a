// Package bm8563 implements a driver for the BM8563 Real-Time Clock (RTC), a
// register compatible clone of the NXP PCF8563. Only reading and writing the
// current time is supported; the alarm and timer blocks are left untouched
// apart from being cleared by Init.
//
// The chip stores a two-digit year plus a century flag. Unlike the PCF8563
// the BM8563 does not toggle that flag when the year wraps from 99 to 00, so
// a clock left running across a century boundary reads back 100 years early
// until the time is written again.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8563.pdf
package bm8563

import (
	"errors"
	"time"

	"github.com/ajanata/drivers"
)

type Device struct {
	bus     drivers.RegisterBus
	Address uint8
}

// New returns a driver for the chip at the default address on bus. The bus
// stays owned by the caller and must be configured before use.
func New(bus drivers.RegisterBus) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Init clears both control and status registers, which stops the timer,
// disables alarm and timer interrupts and starts the clock if it was
// stopped. It should be called once before first use.
func (d *Device) Init() error {
	zero := [1]byte{0x00}
	err := d.bus.WriteRegister(d.Address, ControlStatus1, zero[:])
	if err != nil {
		return err
	}
	return d.bus.WriteRegister(d.Address, ControlStatus2, zero[:])
}

// Read reads the time registers in one transaction. If the chip reports a
// low voltage condition the decoded time is returned together with a
// *LowVoltageError; any other error comes unchanged from the bus.
func (d *Device) Read() (DateTime, error) {
	buf := [timeBlockSize]byte{}
	err := d.bus.ReadRegister(d.Address, Seconds, buf[:])
	if err != nil {
		return DateTime{}, err
	}
	dt := decode(buf)
	if buf[0]&LowVoltageBit != 0 {
		return dt, &LowVoltageError{Time: dt}
	}
	return dt, nil
}

// Write validates dt and writes all time registers in one transaction. The
// century flag is set for years from 2000 on. Writing the seconds register
// clears the low-voltage flag, so read it first if it matters.
func (d *Device) Write(dt DateTime) error {
	buf, err := dt.encode()
	if err != nil {
		return err
	}
	return d.bus.WriteRegister(d.Address, Seconds, buf[:])
}

// Close does nothing. The bus belongs to the caller.
func (d *Device) Close() error {
	return nil
}

// LostPower reports whether the low-voltage flag is set, reading only the
// seconds register.
func (d *Device) LostPower() (bool, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Seconds, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&LowVoltageBit != 0, nil
}

// Now returns the current time in UTC. On a low voltage condition the time
// is returned along with the error.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.Read()
	if err != nil && !errors.Is(err, ErrLowVoltage) {
		return time.Time{}, err
	}
	return dt.Time(time.UTC), err
}

// Set writes t, converted to UTC.
func (d *Device) Set(t time.Time) error {
	return d.Write(FromTime(t.UTC()))
}
