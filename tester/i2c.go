// Package tester provides in-memory stand-ins for buses, for use in driver
// tests.
package tester

import (
	"errors"
)

// ErrNoDevice is returned for transactions addressed to a device that was
// never added to the bus, the way a real bus reports a missing ACK.
var ErrNoDevice = errors.New("tester: no device at address")

// Failer is the subset of testing.TB used by the mocks. *quicktest.C
// satisfies it.
type Failer interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// I2CBus is a mock register-addressed bus. It satisfies drivers.I2C.
type I2CBus struct {
	c       Failer
	devices []*I2CDevice
}

// NewI2CBus returns an empty bus.
func NewI2CBus(c Failer) *I2CBus {
	return &I2CBus{c: c}
}

// AddDevice attaches dev to the bus at dev.Addr.
func (bus *I2CBus) AddDevice(dev *I2CDevice) {
	bus.devices = append(bus.devices, dev)
}

// FindDevice returns the device at addr, or nil.
func (bus *I2CBus) FindDevice(addr uint8) *I2CDevice {
	for _, dev := range bus.devices {
		if dev.Addr == addr {
			return dev
		}
	}
	return nil
}

func (bus *I2CBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	dev := bus.FindDevice(addr)
	if dev == nil {
		return ErrNoDevice
	}
	return dev.readRegister(r, buf)
}

func (bus *I2CBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	dev := bus.FindDevice(addr)
	if dev == nil {
		return ErrNoDevice
	}
	return dev.writeRegister(r, buf)
}

// Tx treats the first written byte as the register pointer, like most
// register-file devices.
func (bus *I2CBus) Tx(addr uint16, w, r []byte) error {
	if len(w) == 0 {
		bus.c.Helper()
		bus.c.Fatalf("tester: Tx to %#x without register byte", addr)
		return nil
	}
	if len(w) > 1 {
		if err := bus.WriteRegister(uint8(addr), w[0], w[1:]); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		return bus.ReadRegister(uint8(addr), w[0], r)
	}
	return nil
}

// I2CDevice is a mock device with a 256-byte register file. Setting ReadErr
// or WriteErr makes every subsequent transaction of that kind fail without
// touching Registers.
type I2CDevice struct {
	c Failer

	Addr      uint8
	Registers [256]byte

	ReadErr  error
	WriteErr error

	// Reads and Writes count successful transactions.
	Reads  int
	Writes int
}

// NewI2CDevice returns a device at addr with every register zeroed.
func NewI2CDevice(c Failer, addr uint8) *I2CDevice {
	return &I2CDevice{c: c, Addr: addr}
}

func (dev *I2CDevice) readRegister(r uint8, buf []byte) error {
	if dev.ReadErr != nil {
		return dev.ReadErr
	}
	dev.checkRange(r, len(buf))
	copy(buf, dev.Registers[r:])
	dev.Reads++
	return nil
}

func (dev *I2CDevice) writeRegister(r uint8, buf []byte) error {
	if dev.WriteErr != nil {
		return dev.WriteErr
	}
	dev.checkRange(r, len(buf))
	copy(dev.Registers[r:], buf)
	dev.Writes++
	return nil
}

func (dev *I2CDevice) checkRange(r uint8, n int) {
	if int(r)+n > len(dev.Registers) {
		dev.c.Helper()
		dev.c.Fatalf("tester: transfer of %d bytes at register %#x overruns device %#x", n, r, dev.Addr)
	}
}
