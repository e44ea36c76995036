package domain

// Idioma del cliente para correos y mensajes.
type Idioma string

const (
	IdiomaES Idioma = "ES"
	IdiomaEN Idioma = "EN"
)

type MetodoPago string

const (
	PagoEfectivo      MetodoPago = "Efectivo"
	PagoTarjeta       MetodoPago = "Tarjeta"
	PagoTransferencia MetodoPago = "Transferencia"
)

// DireccionAeropuerto indica el sentido de un servicio de aeropuerto.
type DireccionAeropuerto string

const (
	// DesdeAeropuerto es una recogida de llegada: requiere número de vuelo.
	DesdeAeropuerto DireccionAeropuerto = "desde_aeropuerto"
	HaciaAeropuerto DireccionAeropuerto = "hacia_aeropuerto"
)

// DireccionTraslado indica el sentido de un traslado municipal.
type DireccionTraslado string

const (
	// MunicipioAUbicacion requiere además el destino donde se deja al cliente.
	MunicipioAUbicacion DireccionTraslado = "municipio_a_ubicacion"
	UbicacionAMunicipio DireccionTraslado = "ubicacion_a_municipio"
)

// Asistente es un pasajero del viaje. El primero de la lista es el
// representante de la reserva.
type Asistente struct {
	Nombre          string `json:"nombre"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Email           string `json:"email,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
}

// Desglose es el desglose de precio derivado de la reserva. Nunca se edita a
// mano: siempre es el resultado del último recálculo.
type Desglose struct {
	PrecioBase      int64 `json:"precioBase"`
	PrecioVehiculo  int64 `json:"precioVehiculo"`
	CamposExtra     int64 `json:"camposExtra"`
	RecargoNocturno int64 `json:"recargoNocturno"`
	TarifaMunicipio int64 `json:"tarifaMunicipio"`
	DescuentoAliado int64 `json:"descuentoAliado"`
	Total           int64 `json:"total"`
}

// Reserva es el borrador de reserva que el asistente de pasos va mutando.
// Las fechas se manejan como texto YYYY-MM-DD (solo calendario, sin zona
// horaria) para evitar corrimientos de un día al serializar.
type Reserva struct {
	NombreCliente   string `json:"nombreCliente"`
	TipoDocumento   string `json:"tipoDocumento"`
	NumeroDocumento string `json:"numeroDocumento"`
	Whatsapp        string `json:"whatsapp"`
	Email           string `json:"email"`
	Idioma          Idioma `json:"idioma"`

	Fecha           string    `json:"fecha"` // YYYY-MM-DD
	Hora            string    `json:"hora"`  // HH:MM, 24 horas
	Municipio       Municipio `json:"municipio"`
	MunicipioManual string    `json:"municipioManual,omitempty"` // texto libre cuando Municipio == Otro
	LugarRecogida   string    `json:"lugarRecogida"`
	NumeroPasajeros int       `json:"numeroPasajeros"`
	VehiculoID      int       `json:"vehiculoId"`
	CantidadHoras   int       `json:"cantidadHoras,omitempty"` // servicios por horas

	// Solo servicios de aeropuerto.
	DireccionAeropuerto DireccionAeropuerto `json:"direccionAeropuerto,omitempty"`
	Aeropuerto          string              `json:"aeropuerto,omitempty"`
	NumeroVuelo         string              `json:"numeroVuelo,omitempty"`

	// Solo traslados municipales.
	DireccionTraslado DireccionTraslado `json:"direccionTraslado,omitempty"`
	DestinoTraslado   string            `json:"destinoTraslado,omitempty"`

	Asistentes    []Asistente    `json:"asistentes"`
	ValoresCampos map[string]any `json:"valoresCampos"`

	Notas      string     `json:"notas,omitempty"`
	MetodoPago MetodoPago `json:"metodoPago,omitempty"`

	// AliadoID identifica la reserva mediada por un aliado; nil para clientes
	// directos.
	AliadoID *int `json:"aliadoId,omitempty"`

	// EsCotizacion marca el flujo de cotización manual (variante aliado/admin)
	// donde el precio final lo digita una persona.
	EsCotizacion bool  `json:"esCotizacion,omitempty"`
	PrecioManual int64 `json:"precioManual,omitempty"`

	Desglose Desglose `json:"desglose"`
}

// NuevaReserva crea un borrador vacío listo para el primer paso.
func NuevaReserva() *Reserva {
	return &Reserva{
		Idioma:        IdiomaES,
		ValoresCampos: map[string]any{},
	}
}

// EsAliado indica si la reserva está mediada por un aliado.
func (r *Reserva) EsAliado() bool {
	return r.AliadoID != nil
}
