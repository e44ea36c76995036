package application

import (
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

// CamposService evalúa los campos personalizados de un servicio contra los
// valores diligenciados por el cliente. Las definiciones crudas se decodifican
// antes con domain.DecodificarCampos.
type CamposService struct{}

// Evaluar calcula la contribución aditiva de los campos personalizados.
// Valores ausentes no aportan nada y tipos de campo desconocidos se ignoran.
func (cs *CamposService) Evaluar(campos []domain.CampoPersonalizado, valores map[string]any) int64 {
	if len(campos) == 0 || len(valores) == 0 {
		return 0
	}

	var total int64
	for _, campo := range campos {
		if !campo.ConPrecio {
			continue
		}

		valor, ok := valores[campo.Clave]
		if !ok {
			continue
		}

		switch campo.Tipo {
		case domain.CampoSwitch:
			if activo, ok := valor.(bool); ok && activo {
				total += campo.Precio
			}
		case domain.CampoCounter:
			if cantidad, ok := comoEntero(valor); ok && cantidad > 0 {
				total += cantidad * campo.Precio
			}
		case domain.CampoSelect:
			seleccion, ok := valor.(string)
			if !ok {
				continue
			}
			for _, opcion := range campo.Opciones {
				if opcion.Valor == seleccion {
					total += opcion.Precio
					break
				}
			}
		}
	}
	return total
}

// comoEntero acepta los números tal como llegan del JSON (float64) o de
// código Go (int, int64).
func comoEntero(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
