package application

import (
	"fmt"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/google/uuid"
)

// ClienteReservas es el contrato del API externo de creación de reservas,
// cotizaciones y órdenes multi-servicio. El API externo es el sistema de
// registro; este backend no persiste reservas.
type ClienteReservas interface {
	// CrearReserva envía la reserva finalizada y retorna el código de reserva.
	CrearReserva(r *domain.Reserva, servicioID int, metodo domain.MetodoPago) (string, error)
	// CrearCotizacion envía la reserva con el precio manual del aliado/admin.
	CrearCotizacion(r *domain.Reserva, servicioID int, precioManual int64) (string, error)
	// CrearOrden envía una orden con varios servicios y su recargo de pago.
	CrearOrden(items []domain.ItemCarrito, metodo domain.MetodoPago, recargo int64) (string, error)
}

// OrdenCreada es el resultado de un checkout exitoso.
type OrdenCreada struct {
	Codigo   string `json:"codigo"`
	Items    int    `json:"items"`
	Subtotal int64  `json:"subtotal"`
	Recargo  int64  `json:"recargo"`
	Total    int64  `json:"total"`
}

// CarritoService combina las reservas finalizadas del carrito con la reserva
// actual en una sola orden de pago.
type CarritoService struct {
	repo    domain.CarritoRepository
	api     ClienteReservas
	precios *PrecioService
}

func NewCarritoService(repo domain.CarritoRepository, api ClienteReservas, precios *PrecioService) *CarritoService {
	return &CarritoService{
		repo:    repo,
		api:     api,
		precios: precios,
	}
}

// Agregar guarda la reserva del asistente como item del carrito.
func (cs *CarritoService) Agregar(w *Wizard) (*domain.ItemCarrito, error) {
	items, err := cs.repo.Cargar()
	if err != nil {
		return nil, fmt.Errorf("error al cargar el carrito: %w", err)
	}

	item := domain.ItemCarrito{
		ID:         uuid.NewString(),
		ServicioID: w.Servicio.ID,
		AliadoID:   w.Reserva.AliadoID,
		Reserva:    *w.Reserva,
		Total:      w.Reserva.Desglose.Total,
		CreadoEn:   time.Now(),
	}

	items = append(items, item)
	if err := cs.repo.Guardar(items); err != nil {
		return nil, fmt.Errorf("error al guardar el carrito: %w", err)
	}
	return &item, nil
}

// Checkout crea una sola orden con los items guardados más la reserva actual
// (si hay una), suma los totales y agrega el recargo de procesamiento del
// método de pago. El carrito se limpia únicamente si el API acepta la orden;
// si falla queda intacto para reintentar.
func (cs *CarritoService) Checkout(w *Wizard, metodo domain.MetodoPago) (*OrdenCreada, error) {
	items, err := cs.repo.Cargar()
	if err != nil {
		return nil, fmt.Errorf("error al cargar el carrito: %w", err)
	}

	if w != nil {
		items = append(items, domain.ItemCarrito{
			ID:         uuid.NewString(),
			ServicioID: w.Servicio.ID,
			AliadoID:   w.Reserva.AliadoID,
			Reserva:    *w.Reserva,
			Total:      w.Reserva.Desglose.Total,
			CreadoEn:   time.Now(),
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no hay reservas para pagar")
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.Total
	}
	recargo := cs.precios.ComisionPago(subtotal, metodo, nil)

	codigo, err := cs.api.CrearOrden(items, metodo, recargo)
	if err != nil {
		return nil, err
	}

	if err := cs.repo.Limpiar(); err != nil {
		// La orden ya existe en el API externo; solo se reporta.
		return nil, fmt.Errorf("orden %s creada pero el carrito no se pudo limpiar: %w", codigo, err)
	}

	return &OrdenCreada{
		Codigo:   codigo,
		Items:    len(items),
		Subtotal: subtotal,
		Recargo:  recargo,
		Total:    subtotal + recargo,
	}, nil
}
