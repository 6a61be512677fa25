package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/m04kA/SMC-HotelBillService/internal/config"
	"github.com/m04kA/SMC-HotelBillService/internal/infra/export"
	editInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/edit_invoice"
	printInvoiceUC "github.com/m04kA/SMC-HotelBillService/internal/usecase/print_invoice"
	"github.com/m04kA/SMC-HotelBillService/pkg/logger"
)

func printBill(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	uc := buildUseCases(cfg, log, nil)

	// 1. Поля счёта из файла поверх значений по умолчанию
	if path := c.String("invoice"); path != "" {
		values, err := config.LoadInvoiceFile(path)
		if err != nil {
			return err
		}

		edits := make([]editInvoiceUC.Edit, 0, len(values))
		for _, v := range values {
			edits = append(edits, editInvoiceUC.Edit{Field: v.Field, Value: v.Value})
		}
		if len(edits) > 0 {
			if _, err := uc.editInvoice.Execute(c.Context, &editInvoiceUC.Request{Edits: edits}); err != nil {
				return fmt.Errorf("invoice file %s: %w", path, err)
			}
		}
	}

	// 2. Куда и в каком формате выдаём
	dir := cfg.Export.Dir
	if out := c.String("out"); out != "" {
		dir = out
	}
	format := cfg.Export.Format
	if f := c.String("format"); f != "" {
		format = f
	}
	printCommand := cfg.Export.PrintCommand
	if c.Bool("no-print") {
		printCommand = nil
	}

	// 3. Печатаем
	result, err := uc.printInvoice.Execute(c.Context, &printInvoiceUC.Request{
		Format:   format,
		Exporter: export.NewFileExporter(dir, printCommand, log),
	})
	if err != nil {
		if errors.Is(err, printInvoiceUC.ErrSurfaceBlocked) {
			return cli.Exit(printInvoiceUC.SurfaceBlockedMessage, 2)
		}
		return err
	}

	fmt.Fprintln(c.App.Writer, result.Location)
	return nil
}
