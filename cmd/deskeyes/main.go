//go:build rp2040

package main

import (
	"machine"
	"math/rand"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"github.com/deskeyes/deskeyes"
	"github.com/deskeyes/deskeyes/internal/clock"
)

const (
	sdaPin   = machine.GP4
	sclPin   = machine.GP5
	touchPin = machine.GP15
	// noisePin is left floating; its low bits seed the random source
	noisePin = machine.ADC0

	oledAddr = 0x3C
)

func main() {
	blink()
	err := machine.I2C0.Configure(machine.I2CConfig{
		SCL:       sclPin,
		SDA:       sdaPin,
		Frequency: 400 * machine.KHz,
	})
	if err != nil {
		earlyPanic()
	}
	blink()

	dev := ssd1306.NewI2C(machine.I2C0)
	dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: oledAddr, VccState: ssd1306.SWITCHCAPVCC})
	dev.ClearBuffer()
	dev.ClearDisplay()
	blink()

	clk := clock.NewSystem()
	b := newBoard(touchPin, clk)

	cfg := deskeyes.DefaultConfig()
	// the panel is mounted upside down unless told otherwise
	cfg.Flip = flip != "false"

	g, err := deskeyes.New(cfg, &dev, machine.LED, b, clk, rand.New(rand.NewSource(seed())))
	if err != nil {
		earlyPanic()
	}
	err = g.Init()
	if err != nil {
		earlyPanic()
	}

	g.Run()
}

// seed gathers the least significant bits of a floating analog input.
func seed() int64 {
	machine.InitADC()
	adc := machine.ADC{Pin: noisePin}
	adc.Configure(machine.ADCConfig{})

	var s int64
	for i := 0; i < 64; i++ {
		s = s<<1 | int64(adc.Get()>>4&1)
		time.Sleep(time.Millisecond)
	}
	return s
}

func blink() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led.High()
	time.Sleep(100 * time.Millisecond)
	led.Low()
	time.Sleep(100 * time.Millisecond)
}

func earlyPanic() {
	for {
		blink()
	}
}
