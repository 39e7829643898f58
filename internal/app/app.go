package app

import (
	"fmt"
	"log"
	"time"

	"godmg/internal/bus"
	"godmg/internal/cartridge"
	"godmg/internal/graphics"
	"godmg/internal/ppu"
	"godmg/internal/timer"
)

// Application ties configuration, the machine and a graphics backend into
// a runnable frontend.
type Application struct {
	config   *Config
	machine  *bus.Machine
	emulator *Emulator
	backend  graphics.Backend
	window   graphics.Window

	romPath string

	// Held joypad state in machine order:
	// Right, Left, Up, Down, A, B, Select, Start.
	buttons [8]bool

	running    bool
	paused     bool
	headless   bool
	frameLimit uint64 // headless: stop after this many frames, 0 = unlimited

	startTime time.Time
}

// ApplicationError represents application-level errors
type ApplicationError struct {
	Op  string
	Err error
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("app: %s: %v", e.Op, e.Err)
}

func (e *ApplicationError) Unwrap() error {
	return e.Err
}

// NewApplication creates an application with the backend named in the
// configuration.
func NewApplication(configPath string) (*Application, error) {
	return NewApplicationWithMode(configPath, false)
}

// NewApplicationWithMode creates an application, optionally forcing
// headless operation regardless of the configured backend.
func NewApplicationWithMode(configPath string, headless bool) (*Application, error) {
	config := NewConfig()
	if configPath != "" {
		if err := config.LoadFromFile(configPath); err != nil {
			return nil, &ApplicationError{Op: "load config", Err: err}
		}
	}

	app := &Application{
		config:    config,
		headless:  headless,
		startTime: time.Now(),
	}

	if err := app.initializeGraphicsBackend(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) initializeGraphicsBackend() error {
	backendType := graphics.BackendType(app.config.Video.Backend)
	if app.headless {
		backendType = graphics.BackendHeadless
	}

	backend, err := graphics.CreateBackend(backendType)
	if err != nil {
		return &ApplicationError{Op: "create backend", Err: err}
	}

	gfxConfig := graphics.Config{
		WindowTitle:  "godmg",
		WindowWidth:  app.config.Window.Width,
		WindowHeight: app.config.Window.Height,
		Fullscreen:   app.config.Window.Fullscreen,
		VSync:        app.config.Video.VSync,
		Filter:       app.config.Video.Filter,
		AspectRatio:  app.config.Video.AspectRatio,
		Headless:     backend.IsHeadless(),
		Debug:        app.config.Debug.CPUTracing,
	}

	if err := backend.Initialize(gfxConfig); err != nil {
		return &ApplicationError{Op: "initialize backend", Err: err}
	}

	app.backend = backend
	log.Printf("[App] Graphics backend: %s", backend.GetName())
	return nil
}

// LoadROM loads a cartridge image and assembles the machine around it.
func (app *Application) LoadROM(romPath string) error {
	cart, err := cartridge.LoadFromFile(romPath)
	if err != nil {
		return &ApplicationError{Op: "load ROM", Err: err}
	}

	if !cart.HeaderChecksumOK() {
		log.Printf("[App] Header checksum mismatch in %s; continuing anyway", romPath)
	}

	seed := app.config.Emulation.DividerSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	app.machine = bus.New(cart, timer.NewRandomDivider(seed))
	app.emulator = NewEmulator(app.machine, app.config)
	app.romPath = romPath

	if app.config.Video.Palette == "green" {
		app.machine.SetPalette(ppu.GreenPalette)
	}

	title := cart.Title()
	if title == "" {
		title = "godmg"
	}
	log.Printf("[App] Loaded %q from %s", title, romPath)

	window, err := app.backend.CreateWindow(
		fmt.Sprintf("godmg - %s", title),
		app.config.Window.Width,
		app.config.Window.Height,
	)
	if err != nil {
		return &ApplicationError{Op: "create window", Err: err}
	}
	app.window = window

	if hw, ok := window.(*graphics.HeadlessWindow); ok {
		hw.SetOutputPath(app.config.Paths.Screenshots)
		hw.SetDumpInterval(app.config.Video.FrameDumpInterval)
	}

	return nil
}

// SetFrameLimit bounds a headless run to the given number of frames.
func (app *Application) SetFrameLimit(frames uint64) {
	app.frameLimit = frames
}

// Run drives the emulation loop until the window closes, a frame limit is
// reached, or the machine hits a fatal condition.
func (app *Application) Run() error {
	if app.machine == nil {
		return &ApplicationError{Op: "run", Err: fmt.Errorf("no ROM loaded")}
	}

	app.running = true
	app.emulator.Start()

	if ebitenWindow, ok := graphics.AsEbitengineWindow(app.window); ok {
		ebitenWindow.SetEmulatorUpdateFunc(app.updateFrame)
		err := ebitenWindow.Run()
		app.running = false
		return err
	}

	return app.runLoop()
}

// runLoop paces headless and terminal operation at the hardware frame rate.
func (app *Application) runLoop() error {
	for app.running && !app.window.ShouldClose() {
		if err := app.updateFrame(); err != nil {
			return err
		}

		if app.frameLimit > 0 && app.emulator.FrameCount() >= app.frameLimit {
			break
		}

		app.emulator.WaitNextFrame()
	}

	app.running = false
	return nil
}

// updateFrame advances the application by one frame: input, emulation,
// presentation.
func (app *Application) updateFrame() error {
	if err := app.processInput(); err != nil {
		return err
	}
	if !app.running {
		return nil
	}

	if app.paused {
		return nil
	}

	if err := app.emulator.Update(); err != nil {
		log.Printf("[App] %v", err)
		app.running = false
		return err
	}

	return app.render()
}

func (app *Application) processInput() error {
	for _, event := range app.window.PollEvents() {
		switch event.Type {
		case graphics.InputEventTypeQuit:
			app.Stop()

		case graphics.InputEventTypeKey:
			if !event.Pressed {
				continue
			}
			switch event.Key {
			case graphics.KeyP:
				name := app.emulator.TogglePalette()
				log.Printf("[App] Palette: %s", name)
			case graphics.KeyR:
				app.Reset()
			}

		case graphics.InputEventTypeButton:
			if idx, ok := buttonIndex(event.Button); ok {
				app.buttons[idx] = event.Pressed
				app.machine.SetButtons(app.buttons)
			}
		}
	}

	return nil
}

// buttonIndex maps a backend button to the machine's joypad slot.
func buttonIndex(b graphics.Button) (int, bool) {
	switch b {
	case graphics.ButtonRight:
		return 0, true
	case graphics.ButtonLeft:
		return 1, true
	case graphics.ButtonUp:
		return 2, true
	case graphics.ButtonDown:
		return 3, true
	case graphics.ButtonA:
		return 4, true
	case graphics.ButtonB:
		return 5, true
	case graphics.ButtonSelect:
		return 6, true
	case graphics.ButtonStart:
		return 7, true
	}
	return 0, false
}

func (app *Application) render() error {
	if err := app.window.RenderFrame(*app.emulator.FrameBuffer()); err != nil {
		return &ApplicationError{Op: "render", Err: err}
	}
	app.window.SwapBuffers()

	if app.config.Debug.ShowFPS && app.emulator.FrameCount()%60 == 0 {
		log.Printf("[App] FPS: %.2f (emulation %.2fms/frame)",
			app.emulator.GetFPS(),
			float64(app.emulator.EmulationTime().Microseconds())/1000.0)
	}

	return nil
}

// Stop stops the application loop.
func (app *Application) Stop() {
	app.running = false
	if app.emulator != nil {
		app.emulator.Stop()
	}
	if app.window != nil {
		app.window.Cleanup()
	}
}

// Pause pauses emulation; the window keeps presenting the last frame.
func (app *Application) Pause() {
	app.paused = true
}

// Resume resumes emulation.
func (app *Application) Resume() {
	app.paused = false
}

// TogglePause toggles the pause state.
func (app *Application) TogglePause() {
	app.paused = !app.paused
}

// Reset restores the machine to its post-boot state.
func (app *Application) Reset() {
	if app.machine == nil {
		return
	}
	app.machine.Reset()
	app.emulator.Reset()
	app.buttons = [8]bool{}
	log.Printf("[App] Machine reset")
}

// IsRunning returns whether the loop is active.
func (app *Application) IsRunning() bool {
	return app.running
}

// IsPaused returns whether emulation is paused.
func (app *Application) IsPaused() bool {
	return app.paused
}

// GetConfig returns the active configuration.
func (app *Application) GetConfig() *Config {
	return app.config
}

// GetMachine returns the assembled machine, nil before LoadROM.
func (app *Application) GetMachine() *bus.Machine {
	return app.machine
}

// GetEmulator returns the emulator, nil before LoadROM.
func (app *Application) GetEmulator() *Emulator {
	return app.emulator
}

// GetROMPath returns the loaded ROM path.
func (app *Application) GetROMPath() string {
	return app.romPath
}

// GetUptime returns the wall-clock time since the application started.
func (app *Application) GetUptime() time.Duration {
	return time.Since(app.startTime)
}

// Cleanup releases the window and backend.
func (app *Application) Cleanup() error {
	if app.window != nil {
		if err := app.window.Cleanup(); err != nil {
			return err
		}
	}
	if app.backend != nil {
		return app.backend.Cleanup()
	}
	return nil
}
