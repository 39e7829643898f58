// Package main implements the godmg Game Boy emulator executable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"godmg/internal/app"
	"godmg/internal/version"
)

func main() {
	// Parse command line flags
	var (
		romFile    = flag.String("rom", "", "Path to Game Boy ROM file")
		configFile = flag.String("config", "", "Path to configuration file")
		debug      = flag.Bool("debug", false, "Enable debug mode")
		nogui      = flag.Bool("nogui", false, "Run without GUI (headless mode)")
		frames     = flag.Uint64("frames", 120, "Frames to run in headless mode")
		dumpEvery  = flag.Int("dump-interval", 0, "Dump a PPM frame every n frames in headless mode (0 = off)")
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	if *version {
		printVersion()
		os.Exit(0)
	}

	// Set up graceful shutdown
	setupGracefulShutdown()

	fmt.Println("🎮 godmg - Go Game Boy Emulator Starting...")

	// Determine config file path
	configPath := *configFile
	if configPath == "" {
		configPath = app.GetDefaultConfigPath()
	}

	// Create application
	application, err := app.NewApplicationWithMode(configPath, *nogui)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if *nogui {
		fmt.Println("🖥️  Headless mode requested")
	}
	defer func() {
		if err := application.Cleanup(); err != nil {
			log.Printf("Application cleanup error: %v", err)
		}
	}()

	// Apply debug settings
	if *debug {
		config := application.GetConfig()
		config.Debug.ShowFPS = true
		config.Debug.EnableLogging = true
		config.Debug.CPUTracing = true
		fmt.Println("🐛 Debug mode enabled")
	}

	if *dumpEvery > 0 {
		application.GetConfig().Video.FrameDumpInterval = *dumpEvery
	}

	// A ROM is required: there is no boot ROM or menu to fall back to.
	if *romFile == "" {
		fmt.Println("❌ No ROM specified")
		printUsage()
		os.Exit(1)
	}

	fmt.Printf("📁 Loading ROM: %s\n", *romFile)
	if err := application.LoadROM(*romFile); err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}
	fmt.Println("✅ ROM loaded successfully")

	if *nogui {
		fmt.Println("Running in headless mode...")
		if err := runHeadlessMode(application, *frames); err != nil {
			log.Fatalf("Headless mode failed: %v", err)
		}
	} else {
		fmt.Println("🖥️  Starting GUI mode...")
		if err := runGUIMode(application); err != nil {
			log.Fatalf("GUI mode failed: %v", err)
		}
	}

	fmt.Println("👋 Emulator shutting down...")
}

// runGUIMode runs the full GUI application
func runGUIMode(application *app.Application) error {
	config := application.GetConfig()
	windowWidth, windowHeight := config.GetWindowResolution()
	fmt.Printf("   Window: %dx%d (Scale: %dx)\n", windowWidth, windowHeight, config.Window.Scale)
	fmt.Printf("   Video: %s, %s, VSync: %s\n",
		config.Video.Filter,
		config.Video.AspectRatio,
		enabledString(config.Video.VSync))
	fmt.Printf("   Palette: %s\n", config.Video.Palette)

	if err := application.Run(); err != nil {
		return fmt.Errorf("application run failed: %v", err)
	}

	// Display shutdown statistics
	emulator := application.GetEmulator()
	fmt.Printf("📊 Session Statistics:\n")
	fmt.Printf("   Frames rendered: %d\n", emulator.FrameCount())
	fmt.Printf("   Session time: %v\n", application.GetUptime())
	fmt.Printf("   Average FPS: %.1f\n", emulator.GetFPS())

	return nil
}

// runHeadlessMode runs the emulator without a display for a fixed number
// of frames. PPM dumps land in the configured screenshots directory when
// a dump interval is set.
func runHeadlessMode(application *app.Application, frames uint64) error {
	fmt.Printf("Running %d frames (about %.1f seconds of emulated time)...\n",
		frames, float64(frames)/59.7275)

	application.SetFrameLimit(frames)
	if err := application.Run(); err != nil {
		return err
	}

	emulator := application.GetEmulator()
	fmt.Printf("✅ Headless run complete: %d frames, %d cycles\n",
		emulator.FrameCount(), emulator.CycleCount())

	interval := application.GetConfig().Video.FrameDumpInterval
	if interval > 0 {
		fmt.Printf("📁 PPM dumps written to %s (every %d frames)\n",
			application.GetConfig().Paths.Screenshots, interval)
	}

	return nil
}

// setupGracefulShutdown sets up signal handling for graceful shutdown
func setupGracefulShutdown() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Println("\n🛑 Interrupt received, shutting down gracefully...")
		os.Exit(0)
	}()
}

// enabledString returns "enabled" or "disabled" based on boolean value
func enabledString(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

func printVersion() {
	version.PrintBuildInfo()
}

func printUsage() {
	fmt.Println("godmg - Go Game Boy Emulator")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  A Game Boy (DMG) emulator written in Go. Supports 32 KB ROM-only")
	fmt.Println("  cartridges with Ebitengine graphics, a terminal renderer, and a")
	fmt.Println("  headless mode for automation.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  godmg -rom <file> [options]        # Start GUI mode")
	fmt.Println("  godmg -nogui -rom <file> [options] # Run headless mode")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  godmg -rom tetris.gb               # Start with ROM loaded")
	fmt.Println("  godmg -rom tetris.gb -debug        # Start with debug info enabled")
	fmt.Println("  godmg -config custom.json -rom tetris.gb")
	fmt.Println("  godmg -nogui -rom tetris.gb -frames 600 -dump-interval 60")
	fmt.Println()
	fmt.Println("CONTROLS (Default):")
	fmt.Println("  Arrow Keys / WASD - D-Pad")
	fmt.Println("  Z / J             - A Button")
	fmt.Println("  X / K             - B Button")
	fmt.Println("  Enter             - Start")
	fmt.Println("  Space             - Select")
	fmt.Println()
	fmt.Println("  Special Keys:")
	fmt.Println("    Escape          - Quit")
	fmt.Println("    P               - Toggle palette (color / green)")
	fmt.Println("    R               - Reset")
	fmt.Println()
	fmt.Println("CONFIGURATION:")
	fmt.Println("  Config file: ./config/godmg.json")
	fmt.Println("  ROMs:        ./roms/")
	fmt.Println("  Screenshots: ./screenshots/")
	fmt.Println()
	fmt.Println("SUPPORTED FORMATS:")
	fmt.Println("  - 32 KB ROM-only cartridges (.gb)")
	fmt.Println()
	fmt.Println("For more information, visit the project documentation.")
}
