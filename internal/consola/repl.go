package consola

import (
	"context"
	"strconv"
	"strings"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/dto"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/pantalla"
)

const ayudaCelofan = `Comandos:
  listar                  recargar y mostrar el catálogo
  set <campo> <valor>     nombre | existencia | precio | unidad
  form                    mostrar el formulario
  guardar                 agregar, o actualizar el producto en edición
  editar <id>             cargar un producto en el formulario
  cancelar                limpiar el formulario
  eliminar <id>           eliminar un producto
  exportar <formato>      xlsx | pdf | html
  salir
`

const ayudaCuentas = `Comandos:
  listar                  recargar y mostrar las cuentas
  buscar [texto]          filtrar por proveedor o estado (vacío quita el filtro)
  campo <todos|proveedor|estado>
  gastos                  opciones de gasto
  nueva                   abrir el formulario
  set <campo> <valor>     fecha | proveedor | importe | estado | descripcion | gasto_id
  form                    mostrar el formulario
  guardar                 crear o actualizar
  editar <id>             cargar una cuenta en el formulario
  cancelar                cerrar el formulario
  eliminar <id>           eliminar una cuenta
  excel | pdf | html      exportar la lista filtrada
  salir
`

// comando splits a line into its verb, first argument and the rest of the line.
func comando(linea string) (verbo, arg, resto string) {
	partes := strings.SplitN(linea, " ", 3)
	verbo = strings.ToLower(partes[0])
	if len(partes) > 1 {
		arg = strings.TrimSpace(partes[1])
	}
	if len(partes) > 2 {
		resto = strings.TrimSpace(partes[2])
	}
	return verbo, arg, resto
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func parseID(t *Terminal, s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		t.Alerta("Error", "ID inválido: "+s)
		return 0, false
	}
	return id, true
}

// Celofan runs the catalog screen until "salir" or end of input.
func Celofan(ctx context.Context, p *pantalla.CelofanPantalla, t *Terminal) {
	p.Montar(ctx)
	t.Printf("%s", renderProductos(p))

	for {
		linea, ok := t.Leer(p.Material() + "> ")
		if !ok {
			return
		}
		verbo, arg, resto := comando(linea)
		switch verbo {
		case "":
		case "salir":
			return
		case "ayuda", "?":
			t.Printf("%s", ayudaCelofan)
		case "listar":
			p.Cargar(ctx)
			t.Printf("%s", renderProductos(p))
		case "set":
			if err := p.CambiarCampo(arg, resto); err != nil {
				t.Alerta("Error", err.Error())
			}
		case "form":
			f := p.Form()
			t.Printf("nombre=%q existencia=%q precio=%q unidad=%q\n", f.Nombre, f.Existencia, f.Precio, f.Unidad)
		case "guardar":
			if p.EditandoID() != nil {
				p.Actualizar(ctx)
			} else {
				p.Agregar(ctx)
			}
			t.Printf("%s", renderProductos(p))
		case "editar":
			id, ok := parseID(t, arg)
			if !ok {
				continue
			}
			encontrado := false
			for _, pr := range p.Productos() {
				if pr.ID == id {
					p.Editar(pr)
					encontrado = true
					break
				}
			}
			if !encontrado {
				t.Alerta("Error", "Producto no encontrado")
			}
		case "cancelar":
			p.Cancelar()
		case "eliminar":
			if id, ok := parseID(t, arg); ok {
				p.Eliminar(ctx, id)
				t.Printf("%s", renderProductos(p))
			}
		case "exportar":
			if arg == "" {
				arg = dto.FormatoXLSX
			}
			p.Exportar(ctx, arg)
		default:
			t.Printf("Comando desconocido: %s (escriba ayuda)\n", verbo)
		}
	}
}

// Cuentas runs the payables screen until "salir" or end of input.
func Cuentas(ctx context.Context, p *pantalla.CuentasPantalla, t *Terminal) {
	p.Montar(ctx)
	t.Printf("%s", renderCuentas(p))

	for {
		linea, ok := t.Leer("cuentas> ")
		if !ok {
			return
		}
		verbo, arg, resto := comando(linea)
		switch verbo {
		case "":
		case "salir":
			return
		case "ayuda", "?":
			t.Printf("%s", ayudaCuentas)
		case "listar":
			p.Cargar(ctx)
			t.Printf("%s", renderCuentas(p))
		case "buscar":
			p.Buscar(strings.TrimSpace(arg + " " + resto))
			t.Printf("%s", renderCuentas(p))
		case "campo":
			if arg == "todos" {
				arg = dto.CampoTodos
			}
			if err := p.BuscarEn(arg); err != nil {
				t.Alerta("Error", err.Error())
				continue
			}
			t.Printf("%s", renderCuentas(p))
		case "gastos":
			for _, o := range p.OpcionesGasto() {
				t.Printf("  %-6s %s\n", o.Valor, o.Etiqueta)
			}
		case "nueva":
			p.Nueva()
		case "set":
			if err := p.CambiarCampo(arg, resto); err != nil {
				t.Alerta("Error", err.Error())
			}
		case "form":
			if !p.MostrarForm {
				t.Printf("Formulario cerrado (use nueva o editar)\n")
				continue
			}
			f := p.Form()
			t.Printf("fecha=%q proveedor=%q importe=%q estado=%q descripcion=%q gasto_id=%q\n",
				f.Fecha, f.Proveedor, p.ImporteVisible(), f.Estado, f.Descripcion, f.GastoID)
		case "guardar":
			p.Guardar(ctx)
			t.Printf("%s", renderCuentas(p))
		case "editar":
			id, ok := parseID(t, arg)
			if !ok {
				continue
			}
			encontrada := false
			for _, c := range p.Cuentas() {
				if c.ID == id {
					p.Editar(c)
					encontrada = true
					break
				}
			}
			if !encontrada {
				t.Alerta("Error", "Cuenta no encontrada")
			}
		case "cancelar":
			p.ResetForm()
		case "eliminar":
			if id, ok := parseID(t, arg); ok {
				p.Eliminar(ctx, id)
				t.Printf("%s", renderCuentas(p))
			}
		case "excel":
			p.ExportarExcel(ctx)
		case "pdf":
			p.ExportarPDF(ctx)
		case "html":
			p.Exportar(ctx, dto.FormatoHTML)
		default:
			t.Printf("Comando desconocido: %s (escriba ayuda)\n", verbo)
		}
	}
}
