package domain

import "strings"

// TipoServicio clasifica el servicio. Los flags EsAeropuerto / EsPorHoras /
// EsTourCompartido gobiernan el precio; el tipo gobierna qué campos de viaje
// se piden al cliente.
type TipoServicio string

const (
	TipoPrivado           TipoServicio = "privado"
	TipoTrasladoMunicipal TipoServicio = "traslado_municipal"
	TipoTourCompartido    TipoServicio = "tour_compartido"
)

// RecargoNocturno define la ventana horaria y el valor del recargo. La
// ventana puede cruzar medianoche (HoraFin < HoraInicio).
type RecargoNocturno struct {
	Activo     bool   `json:"activo"`
	HoraInicio string `json:"horaInicio"` // HH:MM
	HoraFin    string `json:"horaFin"`    // HH:MM
	Valor      int64  `json:"valor"`
}

// Vehiculo es una opción de vehículo con su precio por servicio (o por hora
// en servicios por horas).
type Vehiculo struct {
	ID        int    `json:"id"`
	Nombre    string `json:"nombre"`
	Capacidad int    `json:"capacidad"`
	Precio    int64  `json:"precio"`
}

// Servicio es la configuración de solo lectura que el catálogo entrega al
// asistente de reserva.
type Servicio struct {
	ID          int          `json:"id"`
	Nombre      string       `json:"nombre"`
	Descripcion string       `json:"descripcion"`
	Tipo        TipoServicio `json:"tipo"`

	EsAeropuerto     bool  `json:"esAeropuerto"`
	EsPorHoras       bool  `json:"esPorHoras"`
	EsTourCompartido bool  `json:"esTourCompartido"`
	PrecioBase       int64 `json:"precioBase"`
	PrecioPorPersona int64 `json:"precioPorPersona"` // tours compartidos

	// Punto y hora fijos de salida en tours compartidos.
	LugarFijo string `json:"lugarFijo,omitempty"`
	HoraFija  string `json:"horaFija,omitempty"`

	Recargo   RecargoNocturno      `json:"recargo"`
	Vehiculos []Vehiculo           `json:"vehiculos"`
	Campos    []CampoPersonalizado `json:"campos"`

	Status int `json:"status"`
}

// EsTrasladoMunicipal decide si el servicio pide dirección y destino de
// traslado. Mantiene la heurística histórica sobre el nombre además del tipo.
func (s *Servicio) EsTrasladoMunicipal() bool {
	if s.Tipo == TipoTrasladoMunicipal {
		return true
	}
	return strings.Contains(strings.ToLower(s.Nombre), "traslado")
}

// Vehiculo busca un vehículo por ID; nil si no existe.
func (s *Servicio) Vehiculo(id int) *Vehiculo {
	for i := range s.Vehiculos {
		if s.Vehiculos[i].ID == id {
			return &s.Vehiculos[i]
		}
	}
	return nil
}

// ServicioRepository define la consulta del catálogo de servicios.
type ServicioRepository interface {
	// GetServicioByID obtiene la configuración completa de un servicio,
	// incluyendo vehículos y campos personalizados.
	GetServicioByID(id int) (*Servicio, error)
	// GetAllServicios retorna los servicios activos del catálogo.
	GetAllServicios() ([]Servicio, error)
}
