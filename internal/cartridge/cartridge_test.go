package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

// buildImage returns a 32 KB ROM-only image with the given title and a
// valid header checksum.
func buildImage(title string) []uint8 {
	data := make([]uint8, ROMSize)
	copy(data[titleStart:titleEnd], title)
	data[cartridgeTypeOff] = 0x00

	var sum uint8
	for addr := titleStart; addr < headerChecksumOff; addr++ {
		sum = sum - data[addr] - 1
	}
	data[headerChecksumOff] = sum
	return data
}

func TestLoadValidImage(t *testing.T) {
	data := buildImage("TETRIS")
	data[0x0000] = 0xC3 // something recognizable at the entry region

	cart, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if got := cart.Read(0x0000); got != 0xC3 {
		t.Errorf("Read(0) = %#02x, want 0xC3", got)
	}
	if got := cart.Title(); got != "TETRIS" {
		t.Errorf("Title() = %q, want %q", got, "TETRIS")
	}
	if !cart.HeaderChecksumOK() {
		t.Error("HeaderChecksumOK() = false for valid header")
	}
	if len(cart.ROM()) != ROMSize {
		t.Errorf("ROM() length = %d, want %d", len(cart.ROM()), ROMSize)
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Empty", 0},
		{"Truncated", ROMSize - 1},
		{"Banked_64KB", ROMSize * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(bytes.NewReader(make([]uint8, tt.size)))
			if !errors.Is(err, ErrWrongSize) {
				t.Errorf("LoadFromReader error = %v, want ErrWrongSize", err)
			}
		})
	}
}

func TestLoadRejectsMapperCartridges(t *testing.T) {
	data := buildImage("MBC GAME")
	data[cartridgeTypeOff] = 0x01 // MBC1

	_, err := LoadFromReader(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("LoadFromReader error = %v, want ErrUnsupportedMapper", err)
	}
}

func TestHeaderChecksumMismatchDetected(t *testing.T) {
	data := buildImage("TETRIS")
	data[headerChecksumOff] ^= 0xFF

	cart, err := LoadFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if cart.HeaderChecksumOK() {
		t.Error("HeaderChecksumOK() = true for corrupted checksum")
	}
}
