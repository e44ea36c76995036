package domain

import "time"

// ItemCarrito es una reserva finalizada a la espera del checkout multi-servicio.
type ItemCarrito struct {
	ID         string    `json:"id"`
	ServicioID int       `json:"servicioId"`
	AliadoID   *int      `json:"aliadoId,omitempty"`
	Reserva    Reserva   `json:"reserva"`
	Total      int64     `json:"total"`
	CreadoEn   time.Time `json:"creadoEn"`
}

// CarritoRepository abstrae el almacenamiento local del carrito. Las
// escrituras son lectura-modificación-escritura sin bloqueo: gana la última
// escritura, igual que el almacenamiento del navegador que reemplaza.
type CarritoRepository interface {
	// Cargar retorna los items guardados; lista vacía si no hay carrito.
	Cargar() ([]ItemCarrito, error)
	// Guardar reemplaza el contenido completo del carrito.
	Guardar(items []ItemCarrito) error
	// Limpiar vacía el carrito.
	Limpiar() error
}
