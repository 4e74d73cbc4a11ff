package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pet/asset"
	"github.com/lixenwraith/vi-pet/audio"
	"github.com/lixenwraith/vi-pet/config"
	"github.com/lixenwraith/vi-pet/constants"
	"github.com/lixenwraith/vi-pet/engine"
	"github.com/lixenwraith/vi-pet/modes"
	"github.com/lixenwraith/vi-pet/render"
	"github.com/lixenwraith/vi-pet/terminal"
)

var (
	configFlag    = flag.String("config", "vi-pet.yaml", "Path to YAML config; missing file uses defaults")
	assetsFlag    = flag.String("assets", "", "Asset directory (overrides config)")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	muteFlag      = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-PET CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *assetsFlag != "" {
		cfg.AssetDir = *assetsFlag
	}
	if *debugFlag {
		cfg.Debug = true
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid palette: %v\n", err)
		os.Exit(1)
	}

	colorMode := terminal.ParseColorMode(*colorModeFlag)
	terminal.ApplyColorMode(colorMode)
	log.Printf("color mode %s", colorMode)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	store := asset.NewStore(cfg.AssetDir)
	catalog := engine.DefaultCatalog()
	asset.Verify(store, catalog, append(modes.IconNames(), constants.MarkerAsset)...)

	clock := engine.NewMonotonicTimeProvider()
	pet := engine.NewPetContext(clock, catalog, cfg.PetConfig())

	sounds := audio.NewSoundManager(cfg.AudioConfig())
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, the pet runs silent
		log.Printf("audio unavailable: %v", err)
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)
	pet.Sounds = sounds

	menu := modes.NewMenuStateMachine(pet, modes.NewDebouncer(clock, cfg.Timing.Debounce))
	input := modes.NewInputHandler(menu)

	display := render.NewTerminalDisplay(screen, store, cfg.Display.Width, cfg.Display.Height, cfg.Display.PixelScale)
	display.SetHint(constants.KeyHint, palette.Hint)
	cols, rows := display.CellSize()
	if w, h := screen.Size(); w < cols || h < rows {
		log.Printf("terminal %dx%d smaller than display %dx%d, output clipped", w, h, cols, rows)
	}
	renderer := render.NewRenderer(display, pet, menu, palette)

	scheduler := engine.NewClockScheduler(pet, renderer, input, cfg.Timing.Tick, cfg.Timing.Decay)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, constants.InputEventBufferSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				terminal.EmergencyReset(os.Stdout)
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil once the screen is finalized
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	poll := func() bool {
		for {
			select {
			case ev, ok := <-events:
				if !ok || !input.HandleEvent(ev) {
					return false
				}
				if _, resized := ev.(*tcell.EventResize); resized {
					screen.Sync()
				}
			default:
				return true
			}
		}
	}

	if cfg.Debug {
		go logStatus(ctx, pet.Status, cfg.Timing.Decay)
	}

	log.Printf("vi-pet started: %dx%d assets=%s", cfg.Display.Width, cfg.Display.Height, cfg.AssetDir)
	if err := scheduler.Run(ctx, poll); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("loop stopped: %v", err)
	}
	stop()
	log.Printf("vi-pet exiting after %d ticks, %d decays: %s", scheduler.TickCount(), scheduler.DecayCount(), pet.Status.Format())
}
