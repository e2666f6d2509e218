package main

import (
	"fmt"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/config"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/worker"

	"github.com/spf13/cobra"
)

// consola migrar
var migrarCmd = &cobra.Command{
	Use:   "migrar",
	Short: "Aplicar las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Aplicando migraciones…")
		return infra.RunMigrations(a.db)
	},
}

var dlqLimite int64

// consola dlq
var dlqCmd = &cobra.Command{
	Use:   "dlq",
	Short: "Ver los envíos por correo que agotaron sus reintentos",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()

		entries, err := worker.ListDLQ(cmd.Context(), rdb, worker.QueueCompartir, dlqLimite)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("Sin envíos fallidos")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s  intentos=%d  %s\n  %s\n", e.FailedAt, e.JobType, e.Attempts, e.Reason, e.Payload)
		}
		return nil
	},
}

func init() {
	dlqCmd.Flags().Int64VarP(&dlqLimite, "limite", "n", 20, "cantidad máxima de entradas")
}
