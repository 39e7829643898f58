package graphics

import "fmt"

// TerminalBackend implements the Backend interface for terminal-based rendering
type TerminalBackend struct {
	initialized bool
	config      Config
}

// TerminalWindow implements the Window interface for terminal rendering
type TerminalWindow struct {
	title   string
	width   int
	height  int
	running bool
}

// shadeChars maps pixel luminance quarters to block characters, light to dark.
var shadeChars = [4]string{" ", "░", "▒", "█"}

// NewTerminalBackend creates a new terminal graphics backend
func NewTerminalBackend() Backend {
	return &TerminalBackend{}
}

// Initialize initializes the terminal backend
func (b *TerminalBackend) Initialize(config Config) error {
	if b.initialized {
		return fmt.Errorf("terminal backend already initialized")
	}

	b.config = config
	b.initialized = true

	return nil
}

// CreateWindow creates a terminal "window"
func (b *TerminalBackend) CreateWindow(title string, width, height int) (Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("backend not initialized")
	}

	return &TerminalWindow{
		title:   title,
		width:   width,
		height:  height,
		running: true,
	}, nil
}

// Cleanup releases all terminal resources
func (b *TerminalBackend) Cleanup() error {
	b.initialized = false
	return nil
}

// IsHeadless returns false (terminal has basic output)
func (b *TerminalBackend) IsHeadless() bool {
	return false
}

// GetName returns the backend name
func (b *TerminalBackend) GetName() string {
	return "Terminal"
}

// TerminalWindow implementation

// SetTitle sets the terminal title
func (w *TerminalWindow) SetTitle(title string) {
	w.title = title
	fmt.Printf("\033]0;%s\007", title)
}

// GetSize returns window dimensions
func (w *TerminalWindow) GetSize() (width, height int) {
	return w.width, w.height
}

// ShouldClose returns true if window should close
func (w *TerminalWindow) ShouldClose() bool {
	return !w.running
}

// SwapBuffers does nothing for terminal
func (w *TerminalWindow) SwapBuffers() {
	// No-op for terminal
}

// PollEvents returns empty events list (no input handling for now)
func (w *TerminalWindow) PollEvents() []InputEvent {
	return nil
}

// RenderFrame renders the frame as character art, one character per 2x4
// pixel block so a full LCD frame fits in an 80x36 terminal.
func (w *TerminalWindow) RenderFrame(frameBuffer [FrameWidth * FrameHeight]uint32) error {
	fmt.Print("\033[2J\033[H")

	for y := 0; y < FrameHeight; y += 4 {
		for x := 0; x < FrameWidth; x += 2 {
			pixel := frameBuffer[y*FrameWidth+x]
			fmt.Print(shadeChars[luminanceQuarter(pixel)])
		}
		fmt.Println()
	}

	return nil
}

// luminanceQuarter buckets a pixel into one of four brightness levels,
// darkest bucket highest.
func luminanceQuarter(pixel uint32) int {
	r := (pixel >> 16) & 0xFF
	g := (pixel >> 8) & 0xFF
	b := pixel & 0xFF
	// Integer approximation of perceived luminance.
	lum := (r*299 + g*587 + b*114) / 1000
	return int(3 - lum/64)
}

// Cleanup releases window resources
func (w *TerminalWindow) Cleanup() error {
	w.running = false
	return nil
}
