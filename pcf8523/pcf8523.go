// Package pcf8523 implements a driver for the PCF8523 Real-Time Clock (RTC), providing basic read-write of the current
// time only. The PCF8523 itself supports alarms, clock drift compensation, and timer interrupts, but those features
// remain unimplemented.
//
// The chip has no century flag, so only years 2000 to 2099 can be stored.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF8523.pdf
package pcf8523

import (
	"fmt"
	"time"

	"github.com/ajanata/drivers"
	"github.com/ajanata/drivers/internal/bcd"
)

// ErrInvalidValue is returned by Set for times the chip cannot hold.
var ErrInvalidValue = bcd.ErrOutOfRange

type Device struct {
	bus     drivers.RegisterBus
	Address uint8
}

func New(bus drivers.RegisterBus) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// LostPower reports whether the oscillator has stopped since the time was last set.
func (d *Device) LostPower() (bool, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Status, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&oscillatorStopped != 0, nil
}

// Initialized reports whether battery switchover has been configured, which Set does.
func (d *Device) Initialized() (bool, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Control3, buf[:])
	if err != nil {
		return false, err
	}
	return buf[0]&powerManagement != powerManagement, nil
}

// Set writes t, converted to UTC. Years outside 2000-2099 are rejected before any bus traffic.
func (d *Device) Set(t time.Time) error {
	t = t.UTC()
	if t.Year() < firstYear || t.Year() >= firstYear+100 {
		return fmt.Errorf("pcf8523: year %d: %w", t.Year(), ErrInvalidValue)
	}
	buf := [timeBlockSize]byte{}
	for i, v := range []int{t.Second(), t.Minute(), t.Hour(), t.Day(), int(t.Weekday()), int(t.Month()), t.Year() - firstYear} {
		b, err := bcd.Encode(uint8(v))
		if err != nil {
			return err
		}
		buf[i] = b
	}

	rbuf := [1]byte{}
	err := d.bus.ReadRegister(d.Address, Control1, rbuf[:])
	if err != nil {
		return err
	}
	// do not change cap_sel or second/alarm/correction interrupts
	// ensure RTC is running and 24-hour mode is selected
	rbuf[0] &= 0b1000_0111
	err = d.bus.WriteRegister(d.Address, Control1, rbuf[:])
	if err != nil {
		return err
	}

	// writing the seconds register also clears the oscillator stop flag
	err = d.bus.WriteRegister(d.Address, Time, buf[:])
	if err != nil {
		return err
	}
	// turn on battery switchover mode, turn off battery-related interrupts
	return d.bus.WriteRegister(d.Address, Control3, []byte{0})
}

// Now returns the current time in UTC.
func (d *Device) Now() (time.Time, error) {
	buf := [timeBlockSize]byte{}
	err := d.bus.ReadRegister(d.Address, Time, buf[:])
	if err != nil {
		return time.Time{}, err
	}

	seconds := int(bcd.Decode(buf[0] & 0x7F))
	minute := int(bcd.Decode(buf[1] & 0x7F))
	hour := int(bcd.Decode(buf[2] & 0x3F))
	day := int(bcd.Decode(buf[3] & 0x3F))
	// weekday is derived by time.Date
	month := time.Month(bcd.Decode(buf[5] & 0x1F))
	year := int(bcd.Decode(buf[6])) + firstYear

	return time.Date(year, month, day, hour, minute, seconds, 0, time.UTC), nil
}
