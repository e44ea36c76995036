package domain

import (
	"encoding/json"
	"log"
)

// TipoCampo es el tipo cerrado de un campo personalizado.
type TipoCampo string

const (
	CampoSwitch  TipoCampo = "SWITCH"
	CampoCounter TipoCampo = "COUNTER"
	CampoSelect  TipoCampo = "SELECT"
)

// OpcionCampo es una opción de un campo SELECT. El precio es opcional
// (cero = sin costo).
type OpcionCampo struct {
	Valor    string `json:"valor"`
	Etiqueta string `json:"etiqueta"`
	Precio   int64  `json:"precio,omitempty"`
}

// CampoPersonalizado es un extra configurable por servicio que el cliente
// diligencia en el paso de detalles del viaje. Cuando ConPrecio es false el
// campo es puramente informativo y nunca suma al total.
type CampoPersonalizado struct {
	Clave     string        `json:"clave"`
	Etiqueta  string        `json:"etiqueta"`
	Tipo      TipoCampo     `json:"tipo"`
	ConPrecio bool          `json:"conPrecio"`
	Precio    int64         `json:"precio,omitempty"`
	Opciones  []OpcionCampo `json:"opciones,omitempty"`
}

// DecodificarCampos convierte la definición cruda de campos (lista JSON, o
// lista JSON doblemente serializada como texto) en la variante tipada. Una
// definición ilegible nunca es fatal: se degrada a lista vacía y el recálculo
// del precio continúa con cero extras.
func DecodificarCampos(raw []byte) []CampoPersonalizado {
	if len(raw) == 0 {
		return nil
	}

	var campos []CampoPersonalizado
	if err := json.Unmarshal(raw, &campos); err == nil {
		return campos
	}

	// Algunas configuraciones llegan con la lista serializada como string.
	var texto string
	if err := json.Unmarshal(raw, &texto); err == nil {
		if err := json.Unmarshal([]byte(texto), &campos); err == nil {
			return campos
		}
	}

	log.Printf("ADVERTENCIA: definición de campos personalizados ilegible, se ignora: %.80s", string(raw))
	return nil
}
