package application

import (
	"testing"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

func TestEnviarReserva(t *testing.T) {
	s := NewReservaService(&apiFalsa{}, nil, nil)

	w := wizardListo(200000)
	codigo, err := s.Enviar(w, domain.PagoTransferencia)
	if err != nil {
		t.Fatalf("enviar falló: %v", err)
	}
	if codigo != "MT-0001" {
		t.Fatalf("código inesperado: %s", codigo)
	}
	if w.Reserva.MetodoPago != domain.PagoTransferencia {
		t.Fatalf("el método de pago debe quedar en la reserva, got %s", w.Reserva.MetodoPago)
	}
}

func TestEnviarConservaElBorradorSiFalla(t *testing.T) {
	s := NewReservaService(&apiFalsa{fallaTodo: true}, nil, nil)

	w := wizardListo(200000)
	fecha := w.Reserva.Fecha
	if _, err := s.Enviar(w, domain.PagoEfectivo); err == nil {
		t.Fatal("el fallo del API debe propagarse")
	}
	if w.Reserva.Fecha != fecha {
		t.Fatal("un envío fallido no debe tocar el borrador")
	}
}

func TestCotizarExigePrecioManual(t *testing.T) {
	s := NewReservaService(&apiFalsa{}, nil, nil)

	w := wizardListo(200000)
	w.Reserva.EsCotizacion = true
	if _, err := s.Cotizar(w); err == nil {
		t.Fatal("cotizar sin precio manual debe fallar")
	}

	w.Reserva.PrecioManual = 350000
	codigo, err := s.Cotizar(w)
	if err != nil {
		t.Fatalf("cotizar falló: %v", err)
	}
	if codigo != "MT-C-0001" {
		t.Fatalf("código inesperado: %s", codigo)
	}
}
