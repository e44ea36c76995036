package application

import (
	"testing"
	"time"
)

func TestRegistroSesiones(t *testing.T) {
	rs := NewRegistroSesiones(time.Hour)
	ws := nuevoWizardService()

	w := ws.NuevoWizard(servicioPrivado(), nil)
	rs.Registrar(w)

	if got := rs.Obtener(w.ID); got != w {
		t.Fatalf("la sesión registrada debe recuperarse, got %v", got)
	}
	if rs.Obtener("no-existe") != nil {
		t.Fatal("un ID desconocido retorna nil")
	}
	if rs.Cantidad() != 1 {
		t.Fatalf("cantidad incorrecta: %d", rs.Cantidad())
	}

	rs.Eliminar(w.ID)
	if rs.Obtener(w.ID) != nil {
		t.Fatal("la sesión eliminada no debe recuperarse")
	}
}

func TestLimpiarExpiradas(t *testing.T) {
	rs := NewRegistroSesiones(30 * time.Minute)
	ws := nuevoWizardService()

	vieja := ws.NuevoWizard(servicioPrivado(), nil)
	vieja.ActualizadoEn = time.Now().Add(-time.Hour)
	activa := ws.NuevoWizard(servicioPrivado(), nil)

	rs.Registrar(vieja)
	rs.Registrar(activa)

	if eliminadas := rs.LimpiarExpiradas(); eliminadas != 1 {
		t.Fatalf("debía barrer exactamente 1 sesión, got %d", eliminadas)
	}
	if rs.Obtener(vieja.ID) != nil {
		t.Fatal("la sesión abandonada debe desaparecer")
	}
	if rs.Obtener(activa.ID) == nil {
		t.Fatal("la sesión activa debe sobrevivir")
	}
}
