package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "consola",
	Short: "GrupoKZ: catálogo y cuentas por pagar en la terminal",
	Long: "Pantallas interactivas del catálogo de Celofán y de las cuentas por pagar,\n" +
		"más exportación directa y tareas de mantenimiento.",
	SilenceUsage: true,
}

func init() {
	// Pantallas
	rootCmd.AddCommand(celofanCmd)
	rootCmd.AddCommand(cuentasCmd)

	// Exportación
	rootCmd.AddCommand(newExportarCmd())

	// Mantenimiento
	rootCmd.AddCommand(migrarCmd)
	rootCmd.AddCommand(dlqCmd)
}
