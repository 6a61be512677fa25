package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-HotelBillService/internal/config"
	"github.com/m04kA/SMC-HotelBillService/internal/service/billnumber"
)

func main() {
	app := &cli.App{
		Name:  "hotel-bill",
		Usage: "hotel bill generator: web form, live preview and printable invoices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "path to the TOML configuration file",
				EnvVars: []string{"HOTEL_BILL_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server with the bill form",
				Action: serve,
			},
			{
				Name:      "print",
				Usage:     "render a bill from an invoice file and export it",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "invoice",
						Usage: "TOML file with invoice fields (hotelName, checkInDate, roomPrice, ...)",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "document format: html or pdf (default from config)",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "output directory (default from config)",
					},
					&cli.BoolFlag{
						Name:  "no-print",
						Usage: "only save the document, do not start the print command",
					},
				},
				Action: printBill,
			},
			{
				Name:  "bill-number",
				Usage: "print a fresh random bill number",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, billnumber.NewGenerator().Next())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadConfig загружает конфигурацию по флагу --config
func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}
