// Command sdl-display is a reference SDL2 frontend: it drives the emulator
// one frame at a time and blits the palette-index framebuffer to a window.
package main

import (
	"fmt"
	"log"
	"os"
	"unsafe"

	"github.com/andrewthecodertx/go-nes-core/pkg/controller"
	"github.com/andrewthecodertx/go-nes-core/pkg/nes"
	"github.com/andrewthecodertx/go-nes-core/pkg/ppu"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 240
	WindowScale  = 3
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: sdl-display <rom-file>")
		fmt.Println("Example: sdl-display ../../roms/donkeykong.nes")
		os.Exit(1)
	}

	romPath := os.Args[1]

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("Failed to initialize SDL: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(
		"go-nes-core - "+romPath,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		ScreenWidth*WindowScale,
		ScreenHeight*WindowScale,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24,
		sdl.TEXTUREACCESS_STREAMING,
		ScreenWidth,
		ScreenHeight,
	)
	if err != nil {
		log.Fatalf("Failed to create texture: %v", err)
	}
	defer texture.Destroy()

	fmt.Printf("\n=== Loading ROM ===\n")
	fmt.Printf("File: %s\n", romPath)
	emulator, err := nes.New(romPath)
	if err != nil {
		log.Fatalf("Failed to load ROM: %v", err)
	}

	cart := emulator.GetCartridge()
	fmt.Printf("Mapper: %d\n", cart.GetMapperID())
	fmt.Printf("PRG Banks: %d x 16KB = %dKB\n", cart.GetPRGBanks(), int(cart.GetPRGBanks())*16)
	fmt.Printf("CHR Banks: %d x 8KB = %dKB\n", cart.GetCHRBanks(), int(cart.GetCHRBanks())*8)

	emulator.Reset()

	pixels := make([]byte, ScreenWidth*ScreenHeight*3)

	fmt.Println("\nInitializing (2 seconds)...")
	for i := 0; i < 120; i++ {
		emulator.StepFrame()
	}

	ppuUnit := emulator.GetPPU()

	fmt.Println("\n=== go-nes-core ready ===")
	fmt.Println("System: ESC=quit | P=pause | SPACE=step | R=reset | F=force render | D=debug")
	fmt.Println("Game:   Arrows=D-pad | Z=B | X=A | Enter=Start | RShift=Select")
	fmt.Println("==========================")

	running := true
	paused := false
	frameCount := 0
	forceRendering := false
	debugFrame := false
	var padState uint8

	setBit := func(bit uint8, pressed bool) {
		if pressed {
			padState |= bit
		} else {
			padState &^= bit
		}
		emulator.SetController(0, padState)
	}

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.KeyboardEvent:
				pressed := e.Type == sdl.KEYDOWN

				if pressed {
					switch e.Keysym.Sym {
					case sdl.K_ESCAPE:
						running = false
						continue
					case sdl.K_SPACE:
						if paused {
							emulator.StepFrame()
							frameCount++
							fmt.Printf("Frame %d rendered\n", frameCount)
						}
						continue
					case sdl.K_p:
						paused = !paused
						if paused {
							fmt.Println("Paused (press SPACE to step, P to resume)")
						} else {
							fmt.Println("Resumed")
						}
						continue
					case sdl.K_r:
						emulator.Reset()
						if forceRendering {
							ppuUnit.WriteCPURegister(0x2001, 0x1E)
						}
						frameCount = 0
						fmt.Println("Reset")
						continue
					case sdl.K_f:
						forceRendering = !forceRendering
						if forceRendering {
							ppuUnit.WriteCPURegister(0x2001, 0x1E)
							fmt.Println("Forced rendering ON (background+sprites enabled)")
						} else {
							ppuUnit.WriteCPURegister(0x2001, 0x00)
							fmt.Println("Forced rendering OFF (game controls PPU)")
						}
						continue
					case sdl.K_d:
						debugFrame = !debugFrame
						if debugFrame {
							fmt.Println("Debug output ON")
						} else {
							fmt.Println("Debug output OFF")
						}
						continue
					}
				}

				switch e.Keysym.Sym {
				case sdl.K_x:
					setBit(controller.BitA, pressed)
				case sdl.K_z:
					setBit(controller.BitB, pressed)
				case sdl.K_RSHIFT:
					setBit(controller.BitSelect, pressed)
				case sdl.K_RETURN:
					setBit(controller.BitStart, pressed)
				case sdl.K_UP:
					setBit(controller.BitUp, pressed)
				case sdl.K_DOWN:
					setBit(controller.BitDown, pressed)
				case sdl.K_LEFT:
					setBit(controller.BitLeft, pressed)
				case sdl.K_RIGHT:
					setBit(controller.BitRight, pressed)
				}
			}
		}

		if !paused {
			emulator.StepFrame()
			frameCount++
		}

		frameBuffer := emulator.FrameBuffer()

		colorCounts := make(map[uint8]int)
		uniqueColors := 0

		for i := 0; i < ScreenWidth*ScreenHeight; i++ {
			paletteIndex := frameBuffer[i]

			if colorCounts[paletteIndex] == 0 {
				uniqueColors++
			}
			colorCounts[paletteIndex]++

			if paletteIndex >= 64 {
				if debugFrame {
					fmt.Printf("ERROR: palette index %d out of bounds at pixel %d\n", paletteIndex, i)
				}
				paletteIndex = 0x0F
			}

			color := ppu.HardwarePalette[paletteIndex]

			pixels[i*3+0] = color.R
			pixels[i*3+1] = color.G
			pixels[i*3+2] = color.B
		}

		if frameCount%60 == 0 {
			maxCount := 0
			mostCommonColor := uint8(0)
			for color, count := range colorCounts {
				if count > maxCount {
					maxCount = count
					mostCommonColor = color
				}
			}

			if debugFrame {
				fmt.Printf("[Frame %4d] Colors: %d unique | Most common: $%02X (%d pixels)\n",
					frameCount, uniqueColors, mostCommonColor, maxCount)
			} else if frameCount%300 == 0 {
				fmt.Printf("[Frame %d] Running... (press D for debug info)\n", frameCount)
			}
		}

		texture.Update(nil, unsafe.Pointer(&pixels[0]), ScreenWidth*3)

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		if !paused {
			sdl.Delay(16)
		} else {
			sdl.Delay(100)
		}
	}

	fmt.Printf("\nTotal frames rendered: %d\n", frameCount)
}
