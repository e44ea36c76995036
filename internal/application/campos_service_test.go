package application

import (
	"testing"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

func camposEjemplo() []domain.CampoPersonalizado {
	return []domain.CampoPersonalizado{
		{Clave: "silla_bebe", Tipo: domain.CampoSwitch, ConPrecio: true, Precio: 20000},
		{Clave: "maletas_extra", Tipo: domain.CampoCounter, ConPrecio: true, Precio: 5000},
		{Clave: "idioma_guia", Tipo: domain.CampoSelect, ConPrecio: true, Opciones: []domain.OpcionCampo{
			{Valor: "es", Etiqueta: "Español"},
			{Valor: "en", Etiqueta: "Inglés", Precio: 10000},
		}},
		{Clave: "mascota", Tipo: domain.CampoSwitch, ConPrecio: false, Precio: 99999},
	}
}

func TestEvaluarSwitch(t *testing.T) {
	var cs CamposService
	campos := camposEjemplo()

	if got := cs.Evaluar(campos, map[string]any{"silla_bebe": true}); got != 20000 {
		t.Fatalf("switch activo debe sumar su precio, got %d", got)
	}
	if got := cs.Evaluar(campos, map[string]any{"silla_bebe": false}); got != 0 {
		t.Fatalf("switch apagado no suma, got %d", got)
	}
}

func TestEvaluarCounter(t *testing.T) {
	var cs CamposService
	campos := camposEjemplo()

	// Los números llegan como float64 cuando vienen de JSON.
	if got := cs.Evaluar(campos, map[string]any{"maletas_extra": float64(3)}); got != 15000 {
		t.Fatalf("counter: esperaba 5000*3=15000, got %d", got)
	}
	if got := cs.Evaluar(campos, map[string]any{"maletas_extra": 0}); got != 0 {
		t.Fatalf("counter en cero no suma, got %d", got)
	}
	if got := cs.Evaluar(campos, map[string]any{"maletas_extra": -2}); got != 0 {
		t.Fatalf("counter negativo no suma, got %d", got)
	}
}

func TestEvaluarSelect(t *testing.T) {
	var cs CamposService
	campos := camposEjemplo()

	if got := cs.Evaluar(campos, map[string]any{"idioma_guia": "en"}); got != 10000 {
		t.Fatalf("select: esperaba el precio de la opción, got %d", got)
	}
	if got := cs.Evaluar(campos, map[string]any{"idioma_guia": "es"}); got != 0 {
		t.Fatalf("opción sin precio no suma, got %d", got)
	}
	if got := cs.Evaluar(campos, map[string]any{"idioma_guia": "fr"}); got != 0 {
		t.Fatalf("opción desconocida no suma, got %d", got)
	}
}

func TestEvaluarSinPrecio(t *testing.T) {
	var cs CamposService
	if got := cs.Evaluar(camposEjemplo(), map[string]any{"mascota": true}); got != 0 {
		t.Fatalf("los campos informativos nunca suman, got %d", got)
	}
}

func TestEvaluarCombinado(t *testing.T) {
	var cs CamposService
	valores := map[string]any{
		"silla_bebe":    true,
		"maletas_extra": float64(2),
		"idioma_guia":   "en",
		"mascota":       true,
	}
	if got := cs.Evaluar(camposEjemplo(), valores); got != 40000 {
		t.Fatalf("esperaba 20000+10000+10000=40000, got %d", got)
	}
}

func TestEvaluarTipoDesconocido(t *testing.T) {
	var cs CamposService
	campos := []domain.CampoPersonalizado{
		{Clave: "misterio", Tipo: "SLIDER", ConPrecio: true, Precio: 5000},
	}
	if got := cs.Evaluar(campos, map[string]any{"misterio": true}); got != 0 {
		t.Fatalf("los tipos desconocidos se ignoran, got %d", got)
	}
}
