package main

import (
	"fmt"
	"os"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/consola"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/service"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/worker"

	"github.com/spf13/cobra"
)

// consola exportar <cuentas|celofan>
func newExportarCmd() *cobra.Command {
	var formato, busqueda, campo, email string

	cmd := &cobra.Command{
		Use:       "exportar <cuentas|celofan>",
		Short:     "Exportar una lista a xlsx, pdf o html sin abrir la pantalla",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"cuentas", "celofan"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !dto.CampoValido(campo) {
				return fmt.Errorf("--campo %q: use proveedor o estado", campo)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := boot(ctx)
			if err != nil {
				return err
			}

			var tabla infra.Tabla
			switch args[0] {
			case "cuentas":
				list, err := a.cuentas.Listar(ctx, dto.CuentaFilter{Busqueda: busqueda, Campo: campo})
				if err != nil {
					return err
				}
				tabla = service.TablaCuentas(list)
			case "celofan":
				list, err := a.productos.Listar(ctx)
				if err != nil {
					return err
				}
				tabla = service.TablaProductos(a.productos.Material(), list)
			}

			archivo, err := a.export.Exportar(ctx, tabla, formato)
			if err != nil {
				return err
			}

			var destino service.Compartidor = consola.NewRuta(os.Stdout)
			if email != "" {
				rdb, err := infra.NewRedis(a.cfg.RedisURL)
				if err != nil {
					return err
				}
				defer rdb.Close()
				destino = worker.NewCorreoCompartidor(worker.NewDispatcher(rdb), email)
			}
			if err := destino.Compartir(ctx, archivo); err != nil {
				return err
			}
			if email != "" {
				fmt.Printf("Envío a %s en cola\n", email)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formato, "formato", "f", dto.FormatoXLSX, "xlsx | pdf | html")
	cmd.Flags().StringVar(&busqueda, "busqueda", "", "filtro por proveedor o estado (solo cuentas)")
	cmd.Flags().StringVar(&campo, "campo", "", "limitar la búsqueda a proveedor o estado")
	_ = cmd.RegisterFlagCompletionFunc("campo", cobra.FixedCompletions(
		[]string{dto.CampoProveedor, dto.CampoEstado}, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().StringVar(&email, "email", "", "enviar el archivo por correo en lugar de imprimir la ruta")
	return cmd
}
