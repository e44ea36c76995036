package domain

// RecargoAliado sobreescribe el recargo nocturno del servicio cuando
// UsarPropio es true; si es false se ignora por completo.
type RecargoAliado struct {
	UsarPropio bool   `json:"usarPropio"`
	Activo     bool   `json:"activo"`
	HoraInicio string `json:"horaInicio"`
	HoraFin    string `json:"horaFin"`
	Valor      int64  `json:"valor"`
}

// Aliado es un socio comercial (hotel, agencia o independiente) que origina
// reservas bajo sus propios precios y descuentos.
type Aliado struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`

	// PreciosVehiculo reemplaza el precio del vehículo del servicio cuando
	// existe entrada para el ID.
	PreciosVehiculo map[int]int64 `json:"preciosVehiculo"`
	// TarifasMunicipio tiene precedencia sobre la tabla estática.
	TarifasMunicipio map[Municipio]int64 `json:"tarifasMunicipio"`

	Recargo   *RecargoAliado `json:"recargo,omitempty"`
	Descuento int64          `json:"descuento"`
}

// TarifaMunicipio retorna la tarifa del aliado para el municipio y si existe
// una entrada.
func (a *Aliado) TarifaMunicipio(m Municipio) (int64, bool) {
	if a == nil || a.TarifasMunicipio == nil {
		return 0, false
	}
	tarifa, ok := a.TarifasMunicipio[m]
	return tarifa, ok
}

// PrecioVehiculo retorna el precio del aliado para el vehículo y si existe
// una entrada.
func (a *Aliado) PrecioVehiculo(vehiculoID int) (int64, bool) {
	if a == nil || a.PreciosVehiculo == nil {
		return 0, false
	}
	precio, ok := a.PreciosVehiculo[vehiculoID]
	return precio, ok
}

// AliadoRepository define la consulta de aliados y sus sobreescrituras.
type AliadoRepository interface {
	GetAliadoByID(id int) (*Aliado, error)
}
