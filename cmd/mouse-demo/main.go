// Command mouse-demo traces a square with the pointer, then clicks and
// scrolls. Requires /dev/uinput.
package main

import (
	"os"
	"time"

	"github.com/pamiq/pamiq-io/internal/config"
	"github.com/pamiq/pamiq-io/internal/log"
	"github.com/pamiq/pamiq-io/pkg/inputio"
)

func main() {
	log.Init(config.LogLevel())
	log.Info("starting mouse input simulation demo")

	mouse, err := inputio.NewMouse("", log.L())
	if err != nil {
		log.Error("failed to create virtual mouse", "error", err)
		os.Exit(1)
	}
	defer mouse.Close()

	// Trace a 200px square in 20px steps.
	sides := []struct {
		name   string
		dx, dy int32
	}{
		{"right", 20, 0},
		{"down", 0, 20},
		{"left", -20, 0},
		{"up", 0, -20},
	}

	for _, side := range sides {
		log.Info("moving", "direction", side.name)
		for i := 0; i < 10; i++ {
			if err := mouse.Move(side.dx, side.dy); err != nil {
				log.Error("move failed", "error", err)
				os.Exit(1)
			}
			time.Sleep(50 * time.Millisecond)
		}
	}

	log.Info("clicking left button")
	if err := mouse.Click(inputio.ButtonLeft); err != nil {
		log.Error("click failed", "error", err)
		os.Exit(1)
	}

	log.Info("scrolling up")
	if err := mouse.Scroll(3); err != nil {
		log.Error("scroll failed", "error", err)
		os.Exit(1)
	}

	log.Info("mouse input simulation completed")
}
