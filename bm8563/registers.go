package bm8563

// Registers
const (
	Address        = 0x51 // I2C address for BM8563 and PCF8563
	ControlStatus1 = 0x00 // Control and status register 1
	ControlStatus2 = 0x01 // Control and status register 2
	Seconds        = 0x02 // Time registers starting with seconds
	Minutes        = 0x03 // Minutes
	Hours          = 0x04 // Hours, 24-hour format
	Days           = 0x05 // Day of month
	Weekdays       = 0x06 // Day of week, 0 = Sunday
	CenturyMonths  = 0x07 // Month, century flag in bit 7
	Years          = 0x08 // Two-digit year
)

// Flags
const (
	LowVoltageBit = 0x80 // Seconds register: clock integrity not guaranteed
	CenturyBit    = 0x80 // Month register: set for 20xx, clear for 19xx
)

const timeBlockSize = Years - Seconds + 1

// valid bits of each register in the time block
const (
	secondsMask  = 0x7F
	minutesMask  = 0x7F
	hoursMask    = 0x3F
	daysMask     = 0x3F
	weekdaysMask = 0x07
	monthsMask   = 0x1F
	yearsMask    = 0xFF
)
