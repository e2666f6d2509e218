package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/infra"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/model"
	"github.com/EfrainEsquivar/GrupoKZ-copiaV1/internal/repository"

	"gorm.io/gorm"
)

var errStore = errors.New("connection reset by peer")

func ptr[T any](v T) *T { return &v }

// ── In-memory ProductoRepository stub ────────────────────────────────────────

type stubProductoRepo struct {
	productos map[int64]*model.Producto
	nextID    int64
	listErr   error
	writeErr  error

	listCalls   int
	createCalls int
	updates     []updateCall
	deletes     []int64
}

type updateCall struct {
	id     int64
	campos map[string]interface{}
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[int64]*model.Producto), nextID: 1}
}

func (r *stubProductoRepo) ListByMaterial(_ context.Context, material string) ([]model.Producto, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.Producto
	for _, p := range r.productos {
		if p.Material != nil && *p.Material == material {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return model.Texto(out[i].Nombre) < model.Texto(out[j].Nombre) })
	return out, nil
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.createCalls++
	if r.writeErr != nil {
		return r.writeErr
	}
	p.ID = r.nextID
	r.nextID++
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) Update(_ context.Context, id int64, campos map[string]interface{}) error {
	r.updates = append(r.updates, updateCall{id, campos})
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.productos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id int64) error {
	r.deletes = append(r.deletes, id)
	if r.writeErr != nil {
		return r.writeErr
	}
	if _, ok := r.productos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.productos, id)
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── In-memory CuentaRepository stub ──────────────────────────────────────────

type stubCuentaRepo struct {
	cuentas  []model.CuentaPorPagar
	listErr  error
	writeErr error

	listCalls int
	creates   []*model.CuentaPorPagar
	updates   []updateCall
	deletes   []int64
}

func (r *stubCuentaRepo) List(_ context.Context) ([]model.CuentaPorPagar, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]model.CuentaPorPagar(nil), r.cuentas...), nil
}

func (r *stubCuentaRepo) Create(_ context.Context, c *model.CuentaPorPagar) error {
	r.creates = append(r.creates, c)
	if r.writeErr != nil {
		return r.writeErr
	}
	c.ID = int64(100 + len(r.creates))
	return nil
}

func (r *stubCuentaRepo) Update(_ context.Context, id int64, campos map[string]interface{}) error {
	r.updates = append(r.updates, updateCall{id, campos})
	if r.writeErr != nil {
		return r.writeErr
	}
	for _, c := range r.cuentas {
		if c.ID == id {
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCuentaRepo) Delete(_ context.Context, id int64) error {
	r.deletes = append(r.deletes, id)
	if r.writeErr != nil {
		return r.writeErr
	}
	for i, c := range r.cuentas {
		if c.ID == id {
			r.cuentas = append(r.cuentas[:i], r.cuentas[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubCuentaRepo) writes() int { return len(r.creates) + len(r.updates) + len(r.deletes) }

var _ repository.CuentaRepository = (*stubCuentaRepo)(nil)

type stubGastoRepo struct {
	gastos []model.Gasto
	err    error
}

func (r *stubGastoRepo) List(_ context.Context) ([]model.Gasto, error) { return r.gastos, r.err }

var _ repository.GastoRepository = (*stubGastoRepo)(nil)

// ── In-memory Disk stub ──────────────────────────────────────────────────────

type stubDisk struct {
	mu     sync.Mutex
	files  map[string][]byte
	putErr error
	puts   int
}

func newStubDisk() *stubDisk { return &stubDisk{files: make(map[string][]byte)} }

func (d *stubDisk) Put(_ context.Context, path string, content []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.puts++
	if d.putErr != nil {
		return d.putErr
	}
	d.files[path] = content
	return nil
}

func (d *stubDisk) Get(_ context.Context, path string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (d *stubDisk) Delete(_ context.Context, path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.files, path)
	return nil
}

func (d *stubDisk) URL(path string) string {
	return "https://files.example.com/" + strings.TrimLeft(path, "/")
}

var _ infra.Disk = (*stubDisk)(nil)
