package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Invoice InvoiceConfig `toml:"invoice"`
	Barcode BarcodeConfig `toml:"barcode"`
	Export  ExportConfig  `toml:"export"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`  // пусто - только stdout
	Level string `toml:"level"` // debug, info, warn, error
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// InvoiceConfig начальные значения формы счёта
type InvoiceConfig struct {
	HotelName               string `toml:"hotel_name"`
	HotelAddress            string `toml:"hotel_address"`
	PhoneNumber             string `toml:"phone_number"`
	CustomerName            string `toml:"customer_name"`
	CustomerAddress         string `toml:"customer_address"`
	CheckInTime             string `toml:"check_in_time"`
	CheckOutTime            string `toml:"check_out_time"`
	RoomNumber              string `toml:"room_number"`
	RoomType                string `toml:"room_type"`
	RoomPrice               string `toml:"room_price"`
	NumberOfPeople          string `toml:"number_of_people"`
	GSTPercentage           string `toml:"gst_percentage"`
	ServiceChargePercentage string `toml:"service_charge_percentage"`
}

// BarcodeConfig размеры штрихкода в пикселях
type BarcodeConfig struct {
	ModuleWidth int `toml:"module_width"`
	Height      int `toml:"height"`
}

// ExportConfig настройки выдачи счёта из CLI
type ExportConfig struct {
	Dir          string   `toml:"dir"`
	Format       string   `toml:"format"`        // html или pdf
	PrintCommand []string `toml:"print_command"` // например ["lp", "-d", "frontdesk"]
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "hotel_bill_service",
		},
		Invoice: InvoiceConfig{
			HotelName:               "Grand Royal Hotel",
			HotelAddress:            "123 Luxury Avenue, New Delhi, India",
			PhoneNumber:             "+91 98765 43210",
			CustomerName:            "John Doe",
			CustomerAddress:         "456 Guest Street, Mumbai, India",
			CheckInTime:             "14:00",
			CheckOutTime:            "12:00",
			RoomNumber:              "301",
			RoomType:                "Deluxe Suite",
			RoomPrice:               "5000",
			NumberOfPeople:          "2",
			GSTPercentage:           "18",
			ServiceChargePercentage: "10",
		},
		Barcode: BarcodeConfig{
			ModuleWidth: 2,
			Height:      40,
		},
		Export: ExportConfig{
			Dir:    "bills",
			Format: "html",
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию.
// Если файла нет, используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must not be negative", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Logs.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}

	if c.Barcode.ModuleWidth < 0 || c.Barcode.Height < 0 {
		return fmt.Errorf("%w: barcode sizes must not be negative", ErrInvalidConfig)
	}

	switch strings.ToLower(c.Export.Format) {
	case "html", "pdf":
	default:
		return fmt.Errorf("%w: export.format %q", ErrInvalidConfig, c.Export.Format)
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("%w: export.dir is empty", ErrInvalidConfig)
	}

	return nil
}
