// Package cartridge implements ROM loading and header validation for
// 32 KB Game Boy cartridge images.
package cartridge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ROMSize is the only supported image size: two 16 KB banks, no mapper.
const ROMSize = 0x8000

// Header field offsets.
const (
	titleStart        = 0x0134
	titleEnd          = 0x0144
	cartridgeTypeOff  = 0x0147
	headerChecksumOff = 0x014D
)

var (
	// ErrWrongSize is returned for an image that is not exactly 32 KB.
	ErrWrongSize = errors.New("cartridge: image is not 32 KB")

	// ErrUnsupportedMapper is returned when the header declares a memory
	// bank controller. Only ROM-only cartridges are supported.
	ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")
)

// Cartridge holds a validated 32 KB ROM image.
type Cartridge struct {
	rom [ROMSize]uint8
}

// LoadFromFile loads and validates a cartridge image from disk.
func LoadFromFile(filename string) (*Cartridge, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads and validates a cartridge image from an io.Reader.
// The image must be exactly 32 KB and declare cartridge type 0x00 (ROM only);
// anything else is rejected before the machine is constructed.
func LoadFromReader(r io.Reader) (*Cartridge, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if len(data) != ROMSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrWrongSize, len(data))
	}

	if data[cartridgeTypeOff] != 0x00 {
		return nil, fmt.Errorf("%w: cartridge type %#02x", ErrUnsupportedMapper, data[cartridgeTypeOff])
	}

	cart := &Cartridge{}
	copy(cart.rom[:], data)
	return cart, nil
}

// Read returns the ROM byte at the given offset.
func (c *Cartridge) Read(offset uint16) uint8 {
	return c.rom[offset]
}

// ROM returns the full image for copying into the memory map.
func (c *Cartridge) ROM() []uint8 {
	return c.rom[:]
}

// Title returns the game title from the header, trimmed of padding.
func (c *Cartridge) Title() string {
	raw := c.rom[titleStart:titleEnd]
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	return strings.TrimRight(string(raw[:end]), " ")
}

// HeaderChecksumOK recomputes the header checksum over 0x0134-0x014C and
// compares it with the stored value. A mismatch is informational only; real
// hardware refuses to boot, this emulator just reports it.
func (c *Cartridge) HeaderChecksumOK() bool {
	var sum uint8
	for addr := titleStart; addr < headerChecksumOff; addr++ {
		sum = sum - c.rom[addr] - 1
	}
	return sum == c.rom[headerChecksumOff]
}
