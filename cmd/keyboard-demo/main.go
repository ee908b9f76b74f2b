// Command keyboard-demo simulates keyboard input by pressing and releasing
// W, A, S, D sequentially with a 1-second delay. Requires /dev/uinput.
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
	log.Info("starting keyboard input simulation demo")

	kbd, err := inputio.NewKeyboard("", log.L())
	if err != nil {
		log.Error("failed to create virtual keyboard", "error", err)
		os.Exit(1)
	}
	defer kbd.Close()

	keys := []struct {
		name string
		key  inputio.Key
	}{
		{"W", inputio.KeyW},
		{"A", inputio.KeyA},
		{"S", inputio.KeyS},
		{"D", inputio.KeyD},
	}

	for _, k := range keys {
		log.Info("pressing key", "key", k.name)
		if err := kbd.Press(k.key); err != nil {
			log.Error("press failed", "key", k.name, "error", err)
			os.Exit(1)
		}

		time.Sleep(time.Second)

		log.Info("releasing key", "key", k.name)
		if err := kbd.Release(k.key); err != nil {
			log.Error("release failed", "key", k.name, "error", err)
			os.Exit(1)
		}
	}

	log.Info("keyboard input simulation completed")
}
