// Package drivers declares the bus contracts shared by the device drivers in
// this module. Drivers never own a bus: it is configured and handed over by
// the caller, and the same bus may serve several devices at different
// addresses.
package drivers

// RegisterBus is a register-addressed two-wire bus. Both operations either
// transfer exactly len(buf) bytes or return an error; a short transfer is
// always reported as an error.
type RegisterBus interface {
	// ReadRegister reads len(buf) bytes from the device at addr, starting at
	// register r.
	ReadRegister(addr uint8, r uint8, buf []byte) error
	// WriteRegister writes buf to the device at addr, starting at register r,
	// in a single transaction.
	WriteRegister(addr uint8, r uint8, buf []byte) error
}

// I2C is a RegisterBus that can also run raw transactions, for devices
// without a register file.
type I2C interface {
	RegisterBus
	Tx(addr uint16, w, r []byte) error
}
