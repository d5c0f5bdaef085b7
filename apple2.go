// Command apple2go is the host front-end: it loads a ROM image, wires
// a Bus and CPU together, drives the keyboard and text-page-1 renderer
// through ebiten, and optionally launches the instruction monitor
// instead of the video front-end.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/example/apple2go/bus"
	"github.com/example/apple2go/keyboard"
	"github.com/example/apple2go/monitor"
	"github.com/example/apple2go/romimage"
	"github.com/example/apple2go/video"
)

var (
	romFile      = flag.String("rom", "", "Path to the Apple II ROM image (12K, loaded at $D000).")
	stepsPerTick = flag.Int("steps_per_tick", 100, "Instructions executed per ebiten Update call.")
	useMonitor   = flag.Bool("monitor", false, "Launch the interactive instruction monitor instead of the video front-end.")
)

// charWidth, charHeight size the window to the 40x24 text grid; these
// are display constants only, not part of the emulated hardware.
const (
	charWidth  = 7
	charHeight = 8
)

func main() {
	flag.Parse()

	img, err := romimage.Load(*romFile)
	if err != nil {
		log.Fatalf("Invalid ROM: %v", err)
	}

	b := bus.New()
	b.LoadROM(img)

	if *useMonitor {
		if err := monitor.Run(b.CPU(), b.CPU()); err != nil {
			log.Fatalf("Monitor exited: %v", err)
		}
		return
	}

	g := &game{bus: b, renderer: video.New(b)}
	g.keyboard = keyboard.New(b, b.CPU().Reset)

	ebiten.SetWindowSize(video.Cols*charWidth*2, video.Rows*charHeight*2)
	ebiten.SetWindowTitle("apple2go")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// game wires the Bus, CPU and keyboard into an ebiten.Game, driving
// RunSteps once per Update and redrawing whenever the bus reports the
// video-dirty flag.
type game struct {
	bus      *bus.Bus
	keyboard *keyboard.Driver
	renderer *video.Renderer
}

func (g *game) Update() error {
	if g.keyboard.Poll() {
		return ebiten.Termination
	}
	g.bus.CPU().RunSteps(*stepsPerTick)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if !g.bus.VideoDirty() {
		return
	}

	frame := g.renderer.Frame()
	for row := 0; row < video.Rows; row++ {
		for col := 0; col < video.Cols; col++ {
			glyph := frame[row][col]
			ebitenutil.DebugPrintAt(screen, string(glyph.Rune), col*charWidth, row*charHeight)
		}
	}
	g.bus.ClearDirty()
}

// Layout fixes the emulator's output to the 40x24 text grid in pixel
// terms so ebiten scales the window rather than the emulated display.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.Cols * charWidth, video.Rows * charHeight
}
