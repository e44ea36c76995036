package application

import (
	"math"
	"strconv"
	"strings"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

// ComisionTarjeta es la tasa de procesamiento para pagos no-efectivo.
const ComisionTarjeta = 0.06

// PrecioService recalcula el desglose de precio de una reserva. Recalcular es
// una función pura y total: entradas fuera de rango degradan a componentes en
// cero y es el validador de pasos quien bloquea el avance, nunca este motor.
type PrecioService struct {
	campos CamposService
}

func NewPrecioService() *PrecioService {
	return &PrecioService{}
}

// Recalcular computa el desglose completo a partir del estado actual del
// borrador. Se invoca después de cada mutación que pueda afectar el precio;
// dos invocaciones seguidas sobre el mismo borrador producen el mismo
// desglose.
func (p *PrecioService) Recalcular(r *domain.Reserva, s *domain.Servicio, a *domain.Aliado) domain.Desglose {
	if s == nil {
		return domain.Desglose{}
	}

	// Tours compartidos: precio estricto por persona, todo lo demás se ignora.
	if s.EsTourCompartido {
		total := s.PrecioPorPersona * int64(r.NumeroPasajeros)
		return domain.Desglose{Total: total}
	}

	extras := p.campos.Evaluar(s.Campos, r.ValoresCampos)

	// Municipio "Otro": cotización manual pendiente. Solo sobreviven los
	// extras de campos personalizados.
	if r.Municipio == domain.MunicipioOtro {
		return domain.Desglose{CamposExtra: extras, Total: extras}
	}

	recargo := p.recargoNocturno(r.Hora, s, a)

	base := s.PrecioBase
	vehiculo := p.precioVehiculo(r, s, a)
	if vehiculo > 0 {
		// El precio del vehículo reemplaza por completo al precio base.
		base = 0
	}

	tarifa := p.tarifaMunicipio(r.Municipio, a)

	var descuento int64
	if a != nil {
		descuento = a.Descuento
	}

	subtotal := base + vehiculo + tarifa + recargo - descuento

	return domain.Desglose{
		PrecioBase:      base,
		PrecioVehiculo:  vehiculo,
		CamposExtra:     extras,
		RecargoNocturno: recargo,
		TarifaMunicipio: tarifa,
		DescuentoAliado: descuento,
		Total:           subtotal + extras,
	}
}

// ComisionPago calcula la comisión de procesamiento sobre un total. Aplica
// solo a pagos distintos de efectivo y nunca a servicios por horas, que se
// cobran en efectivo al conductor.
func (p *PrecioService) ComisionPago(total int64, metodo domain.MetodoPago, s *domain.Servicio) int64 {
	if metodo == domain.PagoEfectivo || metodo == "" {
		return 0
	}
	if s != nil && s.EsPorHoras {
		return 0
	}
	return redondear(float64(total) * ComisionTarjeta)
}

func (p *PrecioService) precioVehiculo(r *domain.Reserva, s *domain.Servicio, a *domain.Aliado) int64 {
	if r.VehiculoID == 0 {
		return 0
	}

	var precio int64
	if override, ok := a.PrecioVehiculo(r.VehiculoID); ok {
		precio = override
	} else if v := s.Vehiculo(r.VehiculoID); v != nil {
		precio = v.Precio
	}

	if s.EsPorHoras && r.CantidadHoras > 0 {
		precio *= int64(r.CantidadHoras)
	}
	return precio
}

func (p *PrecioService) tarifaMunicipio(m domain.Municipio, a *domain.Aliado) int64 {
	if m == "" {
		return 0
	}
	if tarifa, ok := a.TarifaMunicipio(m); ok {
		return tarifa
	}
	return domain.TarifaMunicipio(m)
}

// recargoNocturno resuelve la configuración efectiva (aliado con UsarPropio
// tiene precedencia sobre el servicio) y aplica la ventana horaria, que puede
// cruzar medianoche.
func (p *PrecioService) recargoNocturno(hora string, s *domain.Servicio, a *domain.Aliado) int64 {
	activo := s.Recargo.Activo
	inicio := s.Recargo.HoraInicio
	fin := s.Recargo.HoraFin
	valor := s.Recargo.Valor

	if a != nil && a.Recargo != nil && a.Recargo.UsarPropio {
		activo = a.Recargo.Activo
		inicio = a.Recargo.HoraInicio
		fin = a.Recargo.HoraFin
		valor = a.Recargo.Valor
	}

	if !activo {
		return 0
	}
	if !horaEnVentana(hora, inicio, fin) {
		return 0
	}
	return valor
}

// horaEnVentana decide si t cae en [inicio, fin). Si fin < inicio la ventana
// cruza medianoche: [inicio, 24:00) ∪ [00:00, fin).
func horaEnVentana(t, inicio, fin string) bool {
	tm, ok := minutosDelDia(t)
	if !ok {
		return false
	}
	im, ok := minutosDelDia(inicio)
	if !ok {
		return false
	}
	fm, ok := minutosDelDia(fin)
	if !ok {
		return false
	}

	if im <= fm {
		return tm >= im && tm < fm
	}
	return tm >= im || tm < fm
}

// minutosDelDia convierte "HH:MM" a minutos desde medianoche.
func minutosDelDia(hora string) (int, bool) {
	partes := strings.SplitN(strings.TrimSpace(hora), ":", 2)
	if len(partes) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(partes[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(partes[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func redondear(x float64) int64 {
	return int64(math.Round(x))
}
