package main

import (
	"os"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/consola"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/pantalla"

	"github.com/spf13/cobra"
)

// consola celofan
var celofanCmd = &cobra.Command{
	Use:   "celofan",
	Short: "Catálogo de productos del material configurado",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		term := consola.NewTerminal(os.Stdin, os.Stdout)
		p := pantalla.NewCelofanPantalla(a.productos, a.export, consola.NewRuta(os.Stdout), term)
		consola.Celofan(cmd.Context(), p, term)
		return nil
	},
}

// consola cuentas
var cuentasCmd = &cobra.Command{
	Use:   "cuentas",
	Short: "Cuentas por pagar: búsqueda, alta, edición, baja y exportación",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		term := consola.NewTerminal(os.Stdin, os.Stdout)
		p := pantalla.NewCuentasPantalla(a.cuentas, a.export, consola.NewRuta(os.Stdout), term)
		consola.Cuentas(cmd.Context(), p, term)
		return nil
	},
}
