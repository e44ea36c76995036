package reservasapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

func TestCrearReservaRetornaCodigo(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"codigo":"MT-0001"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "clave-secreta")
	codigo, err := c.CrearReserva(domain.NuevaReserva(), 7, domain.PagoEfectivo)
	if err != nil {
		t.Fatalf("CrearReserva: %v", err)
	}
	if codigo != "MT-0001" {
		t.Errorf("codigo = %q, esperado MT-0001", codigo)
	}
	if gotAuth != "Bearer clave-secreta" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestCrearReservaConservaLaRazonDelServidor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"sin cupo para la fecha"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.CrearReserva(domain.NuevaReserva(), 7, domain.PagoTarjeta)
	if err == nil || !strings.Contains(err.Error(), "sin cupo para la fecha") {
		t.Fatalf("esperaba la razón del servidor, got %v", err)
	}
}

func TestCrearReservaRespuestaCortada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Anuncia más bytes de los que envía para que la lectura del
		// cuerpo falle del lado del cliente.
		w.Header().Set("Content-Length", "100")
		w.Write([]byte(`{"codigo":`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.CrearReserva(domain.NuevaReserva(), 7, domain.PagoEfectivo)
	if err == nil || !strings.Contains(err.Error(), "leer la respuesta") {
		t.Fatalf("esperaba error de lectura de la respuesta, got %v", err)
	}
}
