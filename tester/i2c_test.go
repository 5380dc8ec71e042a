package tester

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRegisters(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus(c)
	dev := NewI2CDevice(c, 0x51)
	bus.AddDevice(dev)

	c.Assert(bus.WriteRegister(0x51, 0x02, []byte{1, 2, 3}), qt.IsNil)
	c.Assert(dev.Registers[0x02:0x05], qt.DeepEquals, []byte{1, 2, 3})

	buf := make([]byte, 2)
	c.Assert(bus.ReadRegister(0x51, 0x03, buf), qt.IsNil)
	c.Assert(buf, qt.DeepEquals, []byte{2, 3})
	c.Assert(dev.Reads, qt.Equals, 1)
	c.Assert(dev.Writes, qt.Equals, 1)
}

func TestTx(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus(c)
	dev := NewI2CDevice(c, 0x68)
	bus.AddDevice(dev)

	c.Assert(bus.Tx(0x68, []byte{0x10, 0xAA, 0xBB}, nil), qt.IsNil)
	buf := make([]byte, 2)
	c.Assert(bus.Tx(0x68, []byte{0x10}, buf), qt.IsNil)
	c.Assert(buf, qt.DeepEquals, []byte{0xAA, 0xBB})
}

func TestMissingDevice(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus(c)
	c.Assert(bus.ReadRegister(0x51, 0, make([]byte, 1)), qt.Equals, ErrNoDevice)
	c.Assert(bus.WriteRegister(0x51, 0, []byte{0}), qt.Equals, ErrNoDevice)
}

func TestInjectedErrors(t *testing.T) {
	c := qt.New(t)
	bus := NewI2CBus(c)
	dev := NewI2CDevice(c, 0x51)
	bus.AddDevice(dev)
	errRead := errors.New("read failed")
	errWrite := errors.New("write failed")
	dev.ReadErr = errRead
	dev.WriteErr = errWrite

	c.Assert(bus.ReadRegister(0x51, 0, make([]byte, 1)), qt.Equals, errRead)
	c.Assert(bus.WriteRegister(0x51, 0, []byte{0xFF}), qt.Equals, errWrite)
	c.Assert(dev.Registers[0], qt.Equals, uint8(0))
	c.Assert(dev.Reads+dev.Writes, qt.Equals, 0)
}
