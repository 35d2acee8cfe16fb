package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/aht20"
	"github.com/mklimuk/aht20/adapter"
	"github.com/mklimuk/aht20/gbot"
	"github.com/mklimuk/aht20/i2c"
)

func adapterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "adapter",
			Aliases: []string{"a"},
			Usage:   "bus adapter: mcp2221, generic or gobot",
			Value:   "mcp2221",
		},
		&cli.StringFlag{
			Name:    "device",
			Aliases: []string{"d"},
			Usage:   "i2c device path for the generic adapter",
			Value:   "/dev/i2c-1",
		},
		&cli.IntFlag{
			Name:  "bus",
			Usage: "i2c bus number for the gobot adapter",
			Value: 0,
		},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
	}
}

// openBus builds the transport selected on the command line. The returned
// closer releases whatever the adapter holds; call it when done.
func openBus(c *cli.Context) (aht20.I2CBus, func(), error) {
	switch c.String("adapter") {
	case "mcp2221":
		ad := adapter.NewMCP2221()
		if err := ad.Init(c.Context); err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return ad, func() {}, nil
	case "gobot":
		npi := nanopi.NewNeoAdaptor()
		if err := npi.I2cBusAdaptor.Connect(); err != nil {
			return nil, nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		bus := gbot.NewBus(npi, c.Int("bus"))
		return bus, func() {
			_ = bus.Close()
			_ = npi.I2cBusAdaptor.Finalize()
		}, nil
	case "generic":
		fallthrough
	case "nanopi":
		bus, err := i2c.NewGenericBus(c.String("device"))
		if err != nil {
			return nil, nil, fmt.Errorf("adapter initialization error: %w", err)
		}
		return bus, func() { _ = bus.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown adapter: %s", c.String("adapter"))
}
