package main

import (
	"github.com/urfave/cli/v2"

	"github.com/mklimuk/aht20"
	"github.com/mklimuk/aht20/adapter"
	"github.com/mklimuk/aht20/cmd/aht20/console"
)

var statusCmd = cli.Command{
	Name:  "status",
	Usage: "read and decode the sensor status byte",
	Flags: adapterFlags(),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(c.Context, c.Bool("verbose"))
		bus, closeBus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		defer closeBus()

		s := aht20.New(bus)
		status, err := s.Status(ctx)
		if err != nil {
			return console.Exit(1, "error reading status: %s", console.Red(err))
		}
		console.Printf("status: %#02x\n", status)
		console.Printf("busy: %s\n", yesNo(aht20.IsBusy(status)))
		console.Printf("calibrated: %s\n", yesNo(aht20.IsCalibrated(status)))

		if mcp, ok := bus.(*adapter.MCP2221); ok {
			engine, err := mcp.Status(ctx)
			if err != nil {
				return console.Exit(1, "error reading adapter status: %s", console.Red(err))
			}
			console.Printf("adapter address: %s, buffer: %d, read pending: %d\n",
				engine.CurrentAddress, engine.I2CDataBufferCounter, engine.ReadPending)
		}
		return nil
	},
}

func yesNo(set bool) string {
	if set {
		return console.Yellow("yes")
	}
	return console.Green("no")
}
