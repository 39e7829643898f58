// Package ppu implements the DMG picture processing unit as a scanline
// renderer: a dot counter advances through the 456-cycle line and the
// visible line is rasterized in one shot on entering HBlank.
package ppu

// Screen dimensions in pixels.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

// Line and frame timing in T-cycles.
const (
	DotsPerLine    = 456
	LinesPerFrame  = 154
	CyclesPerFrame = DotsPerLine * LinesPerFrame // 70224
)

// LCD register addresses.
const (
	regLCDC = 0xFF40
	regSTAT = 0xFF41
	regSCY  = 0xFF42
	regSCX  = 0xFF43
	regLY   = 0xFF44
	regLYC  = 0xFF45
	regBGP  = 0xFF47
	regOBP0 = 0xFF48
	regOBP1 = 0xFF49
)

// LCDC bit masks.
const (
	lcdcBGEnable      = 0x01
	lcdcSpriteEnable  = 0x02
	lcdcSpriteSize    = 0x04
	lcdcBGMapSelect   = 0x08
	lcdcTileDataBase  = 0x10
	lcdcDisplayEnable = 0x80
)

// Mode is the LCD controller mode exposed in STAT bits 0-1.
type Mode uint8

const (
	ModeHBlank   Mode = 0
	ModeVBlank   Mode = 1
	ModeOAMScan  Mode = 2
	ModeTransfer Mode = 3
)

// Palette maps the four DMG shades (light to dark) to RGB values.
type Palette [4]uint32

// GreenPalette is the classic greenish DMG look.
var GreenPalette = Palette{0xE0F8D0, 0x88C070, 0x346856, 0x081820}

// ColorPalette is a high-contrast alternative.
var ColorPalette = Palette{0xFFFFFF, 0xFFFF00, 0xFF0000, 0x000000}

// MemoryInterface is the PPU's view of the bus: register reads, VRAM and
// OAM fetches, and the LY/STAT write-back.
type MemoryInterface interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// PPU holds the scanline state and the rendered frame.
type PPU struct {
	frameBuffer [ScreenWidth * ScreenHeight]uint32

	ly         uint8
	dot        uint16
	mode       Mode
	frameReady bool
	palette    Palette

	memory MemoryInterface

	// vblankCallback fires once per frame on entering line 144.
	vblankCallback func()
}

// New creates a PPU at line 0 in OAM scan, using the color palette.
func New(memory MemoryInterface) *PPU {
	p := &PPU{
		memory:  memory,
		palette: ColorPalette,
	}
	p.Reset()
	return p
}

// Reset returns the PPU to the top of the frame. The framebuffer and the
// active palette are left as they are.
func (p *PPU) Reset() {
	p.ly = 0
	p.dot = 0
	p.mode = ModeOAMScan
	p.frameReady = false
}

// SetVBlankCallback registers the function invoked when the PPU enters
// vertical blank.
func (p *PPU) SetVBlankCallback(callback func()) {
	p.vblankCallback = callback
}

// Step advances the PPU by the given number of T-cycles, rolling the line
// every 456 dots and rasterizing each visible line when its pixel transfer
// window ends.
func (p *PPU) Step(cycles uint64) {
	for i := uint64(0); i < cycles; i++ {
		p.dot++
		if p.dot == DotsPerLine {
			p.dot = 0
			p.nextLine()
		}

		var newMode Mode
		switch {
		case p.ly >= ScreenHeight:
			newMode = ModeVBlank
		case p.dot < 80:
			newMode = ModeOAMScan
		case p.dot < 252:
			newMode = ModeTransfer
		default:
			newMode = ModeHBlank
		}

		if newMode != p.mode {
			p.mode = newMode
			p.writeStatMode()
		}

		// Rasterize exactly once, on the transfer-to-HBlank edge.
		if p.mode == ModeHBlank && p.dot == 252 && p.ly < ScreenHeight {
			p.renderBackgroundLine()
			p.renderSpriteLine()
		}
	}
}

// nextLine advances LY, entering vertical blank at line 144 and wrapping
// back to line 0 after line 153.
func (p *PPU) nextLine() {
	p.ly++

	switch {
	case p.ly == ScreenHeight:
		p.mode = ModeVBlank
		p.memory.Write(regLY, p.ly)
		p.writeStatMode()
		if p.vblankCallback != nil {
			p.vblankCallback()
		}
		p.frameReady = true
	case p.ly >= LinesPerFrame:
		p.ly = 0
		p.mode = ModeOAMScan
		p.memory.Write(regLY, p.ly)
		p.writeStatMode()
	case p.ly < ScreenHeight:
		p.mode = ModeOAMScan
		p.memory.Write(regLY, p.ly)
		p.writeStatMode()
	default:
		p.memory.Write(regLY, p.ly)
		p.writeStatMode()
	}
}

// writeStatMode folds the current mode into STAT bits 0-1 and the LYC
// coincidence into bit 2, writing only when the value changes. No STAT
// interrupt is ever requested; the frame loop runs on VBlank alone.
func (p *PPU) writeStatMode() {
	stat := p.memory.Read(regSTAT)

	newStat := stat&^uint8(0x07) | uint8(p.mode)&0x03
	if p.memory.Read(regLYC) == p.ly {
		newStat |= 0x04
	}

	if newStat != stat {
		p.memory.Write(regSTAT, newStat)
	}
}

// renderBackgroundLine rasterizes the background pixels of the current
// line. Scrolling wraps within the 256x256 background map; the window
// layer is not drawn.
func (p *PPU) renderBackgroundLine() {
	lcdc := p.memory.Read(regLCDC)
	if lcdc&lcdcDisplayEnable == 0 || lcdc&lcdcBGEnable == 0 {
		return
	}

	scx := p.memory.Read(regSCX)
	scy := p.memory.Read(regSCY)
	bgp := p.memory.Read(regBGP)

	srcY := p.ly + scy
	tileRow := uint16(srcY) / 8
	rowInTile := uint16(srcY % 8)

	mapBase := uint16(0x9800)
	if lcdc&lcdcBGMapSelect != 0 {
		mapBase = 0x9C00
	}
	mapRowAddr := mapBase + tileRow*32

	for x := uint8(0); x < ScreenWidth; x++ {
		srcX := x + scx
		tileCol := uint16(srcX) / 8
		tileIndex := p.memory.Read(mapRowAddr + tileCol)

		var tileAddr uint16
		if lcdc&lcdcTileDataBase != 0 {
			tileAddr = 0x8000 + uint16(tileIndex)*16
		} else {
			// Signed indexing around 0x9000.
			tileAddr = 0x9000 + uint16(int16(int8(tileIndex)))*16
		}

		bit := 7 - srcX%8
		b0 := p.memory.Read(tileAddr + rowInTile*2)
		b1 := p.memory.Read(tileAddr + rowInTile*2 + 1)
		colorID := (b1>>bit&1)<<1 | b0>>bit&1
		shade := bgp >> (colorID * 2) & 0x03

		p.frameBuffer[int(p.ly)*ScreenWidth+int(x)] = p.palette[shade]
	}
}

// renderSpriteLine draws the sprites intersecting the current line: OAM
// order, at most 10 per line, both 8x8 and 8x16 heights, X/Y flip, color 0
// transparent. Sprite pixels overwrite the background with no priority
// handling.
func (p *PPU) renderSpriteLine() {
	lcdc := p.memory.Read(regLCDC)
	if lcdc&lcdcDisplayEnable == 0 || lcdc&lcdcSpriteEnable == 0 {
		return
	}

	height := int16(8)
	if lcdc&lcdcSpriteSize != 0 {
		height = 16
	}

	obp0 := p.memory.Read(regOBP0)
	obp1 := p.memory.Read(regOBP1)
	y := int16(p.ly)

	drawn := 0
	for i := uint16(0); i < 40 && drawn < 10; i++ {
		entry := uint16(0xFE00) + i*4
		sy := int16(p.memory.Read(entry)) - 16
		sx := int16(p.memory.Read(entry+1)) - 8
		tile := p.memory.Read(entry + 2)
		attr := p.memory.Read(entry + 3)

		if y < sy || y >= sy+height {
			continue
		}

		pal := obp0
		if attr&0x10 != 0 {
			pal = obp1
		}

		line := y - sy
		if attr&0x40 != 0 {
			line = height - 1 - line
		}

		// Tall sprites use an even/odd tile pair; bit 0 of the index
		// is ignored and the row picks the half.
		if height == 16 {
			tile &= 0xFE
		}

		tileAddr := 0x8000 + uint16(tile)*16 + uint16(line)*2
		b0 := p.memory.Read(tileAddr)
		b1 := p.memory.Read(tileAddr + 1)

		for px := int16(0); px < 8; px++ {
			bit := 7 - px
			if attr&0x20 != 0 {
				bit = px
			}

			colorID := (b1>>bit&1)<<1 | b0>>bit&1
			if colorID == 0 {
				continue
			}

			x := sx + px
			if x < 0 || x >= ScreenWidth {
				continue
			}

			shade := pal >> (colorID * 2) & 0x03
			p.frameBuffer[int(y)*ScreenWidth+int(x)] = p.palette[shade]
		}

		drawn++
	}
}

// FrameReady reports whether a frame has completed since the last call and
// clears the flag.
func (p *PPU) FrameReady() bool {
	r := p.frameReady
	p.frameReady = false
	return r
}

// FrameBuffer returns the rendered frame as 0xRRGGBB pixels in row-major
// order.
func (p *PPU) FrameBuffer() *[ScreenWidth * ScreenHeight]uint32 {
	return &p.frameBuffer
}

// SetPalette selects the output palette for subsequent lines.
func (p *PPU) SetPalette(palette Palette) {
	p.palette = palette
}

// Palette returns the active output palette.
func (p *PPU) Palette() Palette {
	return p.palette
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Mode returns the current LCD mode.
func (p *PPU) Mode() Mode {
	return p.mode
}
