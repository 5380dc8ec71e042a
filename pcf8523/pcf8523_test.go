package pcf8523

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/drivers/tester"
)

func newDevice(c *qt.C) (*tester.I2CDevice, Device) {
	bus := tester.NewI2CBus(c)
	fake := tester.NewI2CDevice(c, Address)
	bus.AddDevice(fake)
	return fake, New(bus)
}

func TestPowerOnReset(t *testing.T) {
	c := qt.New(t)
	fake, dev := newDevice(c)
	fake.Registers[Control3] = 0xE0
	fake.Registers[Status] = 0x80

	lost, err := dev.LostPower()
	c.Assert(err, qt.IsNil)
	c.Assert(lost, qt.IsTrue)
	init, err := dev.Initialized()
	c.Assert(err, qt.IsNil)
	c.Assert(init, qt.IsFalse)
}

func TestSetNow(t *testing.T) {
	c := qt.New(t)
	fake, dev := newDevice(c)
	fake.Registers[Control3] = 0xE0
	fake.Registers[Status] = 0x80
	fake.Registers[Control1] = 0xFF

	want := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)
	c.Assert(dev.Set(want), qt.IsNil)
	c.Assert(fake.Registers[Time:Time+timeBlockSize], qt.DeepEquals,
		[]byte{0x05, 0x04, 0x15, 0x02, 0x01, 0x01, 0x06})
	c.Assert(fake.Registers[Control1], qt.Equals, uint8(0b1000_0111))

	got, err := dev.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, want)

	lost, err := dev.LostPower()
	c.Assert(err, qt.IsNil)
	c.Assert(lost, qt.IsFalse)
	init, err := dev.Initialized()
	c.Assert(err, qt.IsNil)
	c.Assert(init, qt.IsTrue)
}

func TestNowMasksMinutes(t *testing.T) {
	c := qt.New(t)
	fake, dev := newDevice(c)
	copy(fake.Registers[Time:], []byte{0x80 | 0x05, 0x80 | 0x04, 0x15, 0x02, 0x01, 0x01, 0x06})

	got, err := dev.Now()
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC))
}

func TestSetYearOutOfRange(t *testing.T) {
	c := qt.New(t)
	fake, dev := newDevice(c)

	err := dev.Set(time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC))
	c.Assert(err, qt.ErrorIs, ErrInvalidValue)
	err = dev.Set(time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC))
	c.Assert(err, qt.ErrorIs, ErrInvalidValue)
	c.Assert(fake.Reads+fake.Writes, qt.Equals, 0)
}

func TestBusErrors(t *testing.T) {
	c := qt.New(t)
	fake, dev := newDevice(c)
	errBus := errors.New("no ack")
	fake.ReadErr = errBus

	_, err := dev.Now()
	c.Assert(err, qt.Equals, errBus)
	_, err = dev.LostPower()
	c.Assert(err, qt.Equals, errBus)
	_, err = dev.Initialized()
	c.Assert(err, qt.Equals, errBus)
	c.Assert(dev.Set(time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)), qt.Equals, errBus)
}
