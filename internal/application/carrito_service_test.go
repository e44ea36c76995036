package application

import (
	"fmt"
	"testing"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

// carritoEnMemoria es un domain.CarritoRepository de prueba.
type carritoEnMemoria struct {
	items    []domain.ItemCarrito
	fallaEn  string
	limpiado int
}

func (c *carritoEnMemoria) Cargar() ([]domain.ItemCarrito, error) {
	if c.fallaEn == "cargar" {
		return nil, fmt.Errorf("cargar falló")
	}
	return append([]domain.ItemCarrito{}, c.items...), nil
}

func (c *carritoEnMemoria) Guardar(items []domain.ItemCarrito) error {
	if c.fallaEn == "guardar" {
		return fmt.Errorf("guardar falló")
	}
	c.items = append([]domain.ItemCarrito{}, items...)
	return nil
}

func (c *carritoEnMemoria) Limpiar() error {
	if c.fallaEn == "limpiar" {
		return fmt.Errorf("limpiar falló")
	}
	c.items = nil
	c.limpiado++
	return nil
}

// apiFalsa registra las llamadas al API externo.
type apiFalsa struct {
	ordenes   [][]domain.ItemCarrito
	recargos  []int64
	fallaTodo bool
}

func (a *apiFalsa) CrearReserva(r *domain.Reserva, servicioID int, metodo domain.MetodoPago) (string, error) {
	if a.fallaTodo {
		return "", fmt.Errorf("api caída")
	}
	return "MT-0001", nil
}

func (a *apiFalsa) CrearCotizacion(r *domain.Reserva, servicioID int, precioManual int64) (string, error) {
	if a.fallaTodo {
		return "", fmt.Errorf("api caída")
	}
	return "MT-C-0001", nil
}

func (a *apiFalsa) CrearOrden(items []domain.ItemCarrito, metodo domain.MetodoPago, recargo int64) (string, error) {
	if a.fallaTodo {
		return "", fmt.Errorf("api caída")
	}
	a.ordenes = append(a.ordenes, items)
	a.recargos = append(a.recargos, recargo)
	return "MT-O-0001", nil
}

func wizardListo(total int64) *Wizard {
	ws := nuevoWizardService()
	s := servicioPrivado()
	s.PrecioBase = total
	w := ws.NuevoWizard(s, nil)
	completarDetalles(ws, w)
	ws.Actualizar(w, func(r *domain.Reserva) {
		r.VehiculoID = 0 // deja el precio base como total
	})
	return w
}

func TestAgregarAlCarrito(t *testing.T) {
	repo := &carritoEnMemoria{}
	cs := NewCarritoService(repo, &apiFalsa{}, NewPrecioService())

	w := wizardListo(200000)
	item, err := cs.Agregar(w)
	if err != nil {
		t.Fatalf("agregar falló: %v", err)
	}
	if item.Total != 200000 {
		t.Fatalf("el item debe congelar el total, got %d", item.Total)
	}
	if item.ID == "" {
		t.Fatal("el item debe tener ID propio")
	}
	if len(repo.items) != 1 {
		t.Fatalf("el carrito debe quedar con 1 item, got %d", len(repo.items))
	}

	// El segundo servicio se acumula, no reemplaza.
	if _, err := cs.Agregar(wizardListo(100000)); err != nil {
		t.Fatalf("segundo agregar falló: %v", err)
	}
	if len(repo.items) != 2 {
		t.Fatalf("el carrito debe quedar con 2 items, got %d", len(repo.items))
	}
}

func TestCheckoutSumaItemsYReservaActual(t *testing.T) {
	repo := &carritoEnMemoria{}
	api := &apiFalsa{}
	cs := NewCarritoService(repo, api, NewPrecioService())

	if _, err := cs.Agregar(wizardListo(200000)); err != nil {
		t.Fatalf("agregar falló: %v", err)
	}

	orden, err := cs.Checkout(wizardListo(100000), domain.PagoTarjeta)
	if err != nil {
		t.Fatalf("checkout falló: %v", err)
	}
	if orden.Items != 2 {
		t.Fatalf("la orden debe incluir el item guardado y la reserva actual, got %d", orden.Items)
	}
	if orden.Subtotal != 300000 {
		t.Fatalf("subtotal incorrecto: %d", orden.Subtotal)
	}
	if orden.Recargo != 18000 {
		t.Fatalf("recargo de tarjeta incorrecto: %d", orden.Recargo)
	}
	if orden.Total != 318000 {
		t.Fatalf("total incorrecto: %d", orden.Total)
	}
	if repo.limpiado != 1 {
		t.Fatalf("el carrito debe limpiarse tras la orden, limpiado=%d", repo.limpiado)
	}
	if len(api.ordenes) != 1 || len(api.ordenes[0]) != 2 {
		t.Fatalf("el API debe recibir una orden con 2 items: %+v", api.ordenes)
	}
}

func TestCheckoutEfectivoSinRecargo(t *testing.T) {
	repo := &carritoEnMemoria{}
	cs := NewCarritoService(repo, &apiFalsa{}, NewPrecioService())

	orden, err := cs.Checkout(wizardListo(150000), domain.PagoEfectivo)
	if err != nil {
		t.Fatalf("checkout falló: %v", err)
	}
	if orden.Recargo != 0 {
		t.Fatalf("el pago en efectivo no lleva recargo, got %d", orden.Recargo)
	}
}

func TestCheckoutCarritoVacio(t *testing.T) {
	cs := NewCarritoService(&carritoEnMemoria{}, &apiFalsa{}, NewPrecioService())

	if _, err := cs.Checkout(nil, domain.PagoEfectivo); err == nil {
		t.Fatal("un checkout sin reservas debe fallar")
	}
}

func TestCheckoutNoLimpiaSiElAPIFalla(t *testing.T) {
	repo := &carritoEnMemoria{}
	cs := NewCarritoService(repo, &apiFalsa{fallaTodo: true}, NewPrecioService())

	if _, err := cs.Agregar(wizardListo(200000)); err != nil {
		t.Fatalf("agregar falló: %v", err)
	}

	if _, err := cs.Checkout(nil, domain.PagoTarjeta); err == nil {
		t.Fatal("el checkout debe propagar el fallo del API")
	}
	if len(repo.items) != 1 {
		t.Fatalf("el carrito debe quedar intacto para reintentar, got %d items", len(repo.items))
	}
	if repo.limpiado != 0 {
		t.Fatal("el carrito no debe limpiarse si la orden no se creó")
	}
}

func TestCheckoutSoloItemsGuardados(t *testing.T) {
	repo := &carritoEnMemoria{}
	cs := NewCarritoService(repo, &apiFalsa{}, NewPrecioService())

	if _, err := cs.Agregar(wizardListo(200000)); err != nil {
		t.Fatalf("agregar falló: %v", err)
	}

	orden, err := cs.Checkout(nil, domain.PagoEfectivo)
	if err != nil {
		t.Fatalf("checkout sin reserva en curso falló: %v", err)
	}
	if orden.Items != 1 || orden.Subtotal != 200000 {
		t.Fatalf("orden incorrecta: %+v", orden)
	}
}
