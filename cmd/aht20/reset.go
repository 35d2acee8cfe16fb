package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/aht20"
	"github.com/mklimuk/aht20/cmd/aht20/console"
)

var resetCmd = cli.Command{
	Name:  "reset",
	Usage: "soft-reset the sensor and re-run calibration",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(c.Context, c.Bool("verbose"))
		answer, err := console.YesOrNo("reset the sensor?")
		if err != nil {
			return console.Exit(1, "prompt error: %s", console.Red(err))
		}
		if answer != console.Yes {
			console.Printf("%s aborted\n", console.PictoStop)
			return nil
		}
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer closeBus()

		s := aht20.New(bus)
		if err := s.SoftReset(ctx); err != nil {
			return console.Exit(1, "reset error: %s", console.Red(err))
		}
		if err := s.Init(ctx); err != nil {
			return console.Exit(1, "sensor initialization error: %s", console.Red(err))
		}
		console.Printf("sensor reset and calibrated\n")
		return nil
	},
}
