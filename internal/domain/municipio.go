package domain

// Municipio identifica el municipio de recogida o destino dentro de la zona
// de cobertura del servicio.
type Municipio string

const (
	MunicipioMedellin         Municipio = "Medellín"
	MunicipioEnvigado         Municipio = "Envigado"
	MunicipioSabaneta         Municipio = "Sabaneta"
	MunicipioItagui           Municipio = "Itagüí"
	MunicipioBello            Municipio = "Bello"
	MunicipioRionegro         Municipio = "Rionegro"
	MunicipioGuatape          Municipio = "Guatapé"
	MunicipioElRetiro         Municipio = "El Retiro"
	MunicipioSanJeronimo      Municipio = "San Jerónimo"
	MunicipioSantaFeAntioquia Municipio = "Santa Fe de Antioquia"
	// MunicipioOtro es el valor centinela de cotización manual: el cliente
	// escribe el municipio a mano y el precio queda pendiente de un humano.
	MunicipioOtro Municipio = "Otro"
)

// tarifasMunicipio es la tabla estática de recargos por municipio, en pesos
// colombianos. Los aliados pueden sobreescribirla con sus propias tarifas.
var tarifasMunicipio = map[Municipio]int64{
	MunicipioMedellin:         0,
	MunicipioEnvigado:         10000,
	MunicipioSabaneta:         15000,
	MunicipioItagui:           15000,
	MunicipioBello:            20000,
	MunicipioRionegro:         40000,
	MunicipioGuatape:          60000,
	MunicipioElRetiro:         35000,
	MunicipioSanJeronimo:      50000,
	MunicipioSantaFeAntioquia: 60000,
}

// TarifaMunicipio retorna el recargo de la tabla estática, o 0 si el
// municipio no tiene entrada.
func TarifaMunicipio(m Municipio) int64 {
	return tarifasMunicipio[m]
}

// Municipios retorna la lista de municipios seleccionables en el orden de
// presentación.
func Municipios() []Municipio {
	return []Municipio{
		MunicipioMedellin,
		MunicipioEnvigado,
		MunicipioSabaneta,
		MunicipioItagui,
		MunicipioBello,
		MunicipioRionegro,
		MunicipioGuatape,
		MunicipioElRetiro,
		MunicipioSanJeronimo,
		MunicipioSantaFeAntioquia,
		MunicipioOtro,
	}
}
