package application

import (
	"fmt"
	"sync"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/google/uuid"
)

// Wizard es una sesión del asistente de reserva: el borrador, su
// configuración resuelta y la posición dentro de los pasos. El servidor
// atiende peticiones en paralelo y varias pueden llegar con el mismo ID de
// sesión: quien use la sesión debe tomar su mutex mientras la lee o muta.
type Wizard struct {
	mu sync.Mutex

	ID            string           `json:"id"`
	PasoActual    Paso             `json:"pasoActual"`
	PasoMaximo    Paso             `json:"pasoMaximo"`
	Reserva       *domain.Reserva  `json:"reserva"`
	Servicio      *domain.Servicio `json:"-"`
	Aliado        *domain.Aliado   `json:"-"`
	ActualizadoEn time.Time        `json:"actualizadoEn"`
}

// Bloquear toma el mutex de la sesión. Cada petición que lee o muta la
// sesión lo toma al entrar y lo libera al responder.
func (w *Wizard) Bloquear() {
	w.mu.Lock()
}

// Desbloquear libera el mutex de la sesión.
func (w *Wizard) Desbloquear() {
	w.mu.Unlock()
}

// ResumenPago es el desglose final junto con la comisión del método de pago
// elegido. La comisión no se guarda en el borrador: se deriva al momento de
// presentar el resumen.
type ResumenPago struct {
	Desglose   domain.Desglose   `json:"desglose"`
	MetodoPago domain.MetodoPago `json:"metodoPago"`
	Comision   int64             `json:"comision"`
	Total      int64             `json:"total"`
}

// WizardService orquesta el orden de los pasos: valida antes de avanzar,
// permite retroceder libremente y recalcula el precio tras cada mutación del
// borrador. Nunca calcula precios por sí mismo ni muta el borrador al navegar.
type WizardService struct {
	precios   *PrecioService
	validador *ValidadorPasos
}

func NewWizardService(precios *PrecioService, validador *ValidadorPasos) *WizardService {
	return &WizardService{
		precios:   precios,
		validador: validador,
	}
}

// NuevoWizard crea una sesión en el paso inicial con un borrador vacío. Para
// tours compartidos el borrador arranca con el punto y hora de salida fijos.
func (ws *WizardService) NuevoWizard(servicio *domain.Servicio, aliado *domain.Aliado) *Wizard {
	w := &Wizard{
		ID:            uuid.NewString(),
		PasoActual:    PasoInfoServicio,
		PasoMaximo:    PasoInfoServicio,
		Reserva:       domain.NuevaReserva(),
		Servicio:      servicio,
		Aliado:        aliado,
		ActualizadoEn: time.Now(),
	}
	if aliado != nil {
		id := aliado.ID
		w.Reserva.AliadoID = &id
	}
	ws.forzarTourCompartido(w)
	w.Reserva.Desglose = ws.precios.Recalcular(w.Reserva, w.Servicio, w.Aliado)
	return w
}

// Actualizar aplica una mutación al borrador y recalcula el desglose de
// inmediato, de modo que el precio siempre es función pura del borrador
// actual.
func (ws *WizardService) Actualizar(w *Wizard, mutar func(*domain.Reserva)) {
	mutar(w.Reserva)
	ws.forzarTourCompartido(w)
	w.Reserva.Desglose = ws.precios.Recalcular(w.Reserva, w.Servicio, w.Aliado)
	w.ActualizadoEn = time.Now()
}

// Avanzar valida el paso actual; si pasa, avanza y extiende el paso máximo
// alcanzado. Si falla, el asistente permanece donde está y retorna el error
// de la primera regla que no se cumplió.
func (ws *WizardService) Avanzar(w *Wizard) *ErrorValidacion {
	if errVal := ws.validador.ValidarPaso(w.PasoActual, w.Reserva, w.Servicio); errVal != nil {
		return errVal
	}
	if w.PasoActual < PasoFinal {
		w.PasoActual++
		if w.PasoActual > w.PasoMaximo {
			w.PasoMaximo = w.PasoActual
		}
	}
	w.ActualizadoEn = time.Now()
	return nil
}

// Retroceder vuelve un paso atrás. Regresar nunca requiere validación.
func (ws *WizardService) Retroceder(w *Wizard) {
	if w.PasoActual > PasoInfoServicio {
		w.PasoActual--
	}
	w.ActualizadoEn = time.Now()
}

// IrAPaso salta a un paso ya alcanzado (navegación tipo miga de pan). Saltar
// más allá del paso máximo alcanzado se rechaza sin alterar el estado.
func (ws *WizardService) IrAPaso(w *Wizard, paso Paso) error {
	if paso < PasoInfoServicio || paso > PasoFinal {
		return fmt.Errorf("paso inválido: %d", paso)
	}
	if paso > w.PasoMaximo {
		return fmt.Errorf("el paso %d aún no ha sido habilitado", paso)
	}
	w.PasoActual = paso
	w.ActualizadoEn = time.Now()
	return nil
}

// Cerrar abandona el asistente: vuelve al paso inicial y descarta el borrador.
func (ws *WizardService) Cerrar(w *Wizard) {
	w.PasoActual = PasoInfoServicio
	w.PasoMaximo = PasoInfoServicio
	w.Reserva = domain.NuevaReserva()
	if w.Aliado != nil {
		id := w.Aliado.ID
		w.Reserva.AliadoID = &id
	}
	ws.forzarTourCompartido(w)
	w.Reserva.Desglose = ws.precios.Recalcular(w.Reserva, w.Servicio, w.Aliado)
	w.ActualizadoEn = time.Now()
}

// Resumen arma el resumen de pago de la sesión: el desglose vigente más la
// comisión que aplica al método de pago elegido.
func (ws *WizardService) Resumen(w *Wizard, metodo domain.MetodoPago) ResumenPago {
	comision := ws.precios.ComisionPago(w.Reserva.Desglose.Total, metodo, w.Servicio)
	return ResumenPago{
		Desglose:   w.Reserva.Desglose,
		MetodoPago: metodo,
		Comision:   comision,
		Total:      w.Reserva.Desglose.Total + comision,
	}
}

// forzarTourCompartido fija los valores centinela de los tours compartidos:
// punto y hora de salida fijos, sin municipio ni vehículo seleccionables. Se
// aplica al entrar y tras cada mutación para que ninguna edición los altere.
func (ws *WizardService) forzarTourCompartido(w *Wizard) {
	if w.Servicio == nil || !w.Servicio.EsTourCompartido {
		return
	}
	w.Reserva.Municipio = domain.MunicipioMedellin
	w.Reserva.MunicipioManual = ""
	w.Reserva.VehiculoID = 0
	w.Reserva.LugarRecogida = w.Servicio.LugarFijo
	w.Reserva.Hora = w.Servicio.HoraFija
}
