package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/config"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/repository"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// app holds what every command needs after boot.
type app struct {
	cfg       *config.Config
	db        *gorm.DB
	productos service.ProductoService
	cuentas   service.CuentaService
	export    service.ExportService
	disk      infra.Disk
}

// boot loads config, quiets the logger to warnings on stderr and opens the
// database and the export disk.
func boot(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(zerolog.WarnLevel)

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	disk, err := infra.NewDisk(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("disco de exportación: %w", err)
	}
	return &app{
		cfg:       cfg,
		db:        db,
		productos: service.NewProductoService(repository.NewProductoRepository(db), cfg.Material),
		cuentas:   service.NewCuentaService(repository.NewCuentaRepository(db), repository.NewGastoRepository(db)),
		export:    service.NewExportService(disk),
		disk:      disk,
	}, nil
}
