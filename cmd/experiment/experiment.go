//go:build rp2040

// experiment plays every effect back to back on the panel, for checking them on real hardware.
package main

import (
	"machine"
	"math/rand"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/deskeyes/deskeyes/internal/clock"
	"github.com/deskeyes/deskeyes/internal/effect"
)

func main() {
	blink()
	machine.I2C0.Configure(machine.I2CConfig{
		SCL: machine.GP5,
		SDA: machine.GP4,
	})
	blink()

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: 0x3C, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearBuffer()
	dev.ClearDisplay()
	blink()

	clk := clock.NewSystem()
	fx := effect.New(&dev, clk, rand.New(rand.NewSource(time.Now().UnixNano())), effect.DefaultInterval)

	for {
		for _, k := range effect.Kinds {
			println("effect", k.String())
			start := clk.Now()
			err := fx.Run(k, start)
			if err != nil {
				println(err.Error())
			}
			println("took", clock.Since(clk.Now(), start), "ms")
			time.Sleep(time.Second)
		}
	}
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}
