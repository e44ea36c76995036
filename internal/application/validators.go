package application

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

// Paso es el índice de un paso del asistente de reserva.
type Paso int

const (
	PasoInfoServicio Paso = iota
	PasoDetallesViaje
	PasoDatosContacto
	PasoNotas
	PasoResumen
	PasoConfirmacion
)

// PasoFinal es el último paso del asistente.
const PasoFinal = PasoConfirmacion

// ErrorValidacion es el resultado de una regla de paso que falla. Siempre es
// recuperable: el asistente permanece en el paso y muestra el mensaje.
type ErrorValidacion struct {
	Regla   string `json:"regla"`
	Mensaje string `json:"mensaje"`
}

func (e *ErrorValidacion) Error() string {
	return e.Mensaje
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
var noDigitos = regexp.MustCompile(`\D`)

// Validator contiene funciones de validación de datos
type Validator struct{}

// ValidateEmail valida el formato de un email
func (v *Validator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}
	return nil
}

// ValidateWhatsapp valida un número de WhatsApp: al menos 10 dígitos después
// de limpiar el formato.
func (v *Validator) ValidateWhatsapp(numero string) error {
	if strings.TrimSpace(numero) == "" {
		return fmt.Errorf("el número de WhatsApp es requerido")
	}
	digitos := noDigitos.ReplaceAllString(numero, "")
	if len(digitos) < 10 {
		return fmt.Errorf("el número de WhatsApp debe tener al menos 10 dígitos")
	}
	return nil
}

// ValidateDocumentNumber valida el número de documento (mínimo 4 caracteres)
func (v *Validator) ValidateDocumentNumber(docNumber string) error {
	if len(strings.TrimSpace(docNumber)) < 4 {
		return fmt.Errorf("el número de documento debe tener al menos 4 caracteres")
	}
	return nil
}

// ValidateName valida que un nombre tenga el largo mínimo indicado
func (v *Validator) ValidateName(name string, minimo int, fieldName string) error {
	if len(strings.TrimSpace(name)) < minimo {
		return fmt.Errorf("el %s debe tener al menos %d caracteres", fieldName, minimo)
	}
	return nil
}

// ValidateFecha valida una fecha calendario YYYY-MM-DD
func (v *Validator) ValidateFecha(fecha string) error {
	if fecha == "" {
		return fmt.Errorf("la fecha del viaje es requerida")
	}
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return fmt.Errorf("formato de fecha inválido, use YYYY-MM-DD")
	}
	return nil
}

// regla es un predicado con nombre sobre una foto inmutable del borrador.
// Retorna "" cuando pasa, o el mensaje de error.
type regla struct {
	nombre  string
	validar func(r *domain.Reserva, s *domain.Servicio) string
}

// ValidadorPasos decide si el borrador puede avanzar más allá de un paso.
// Las reglas de cada paso se evalúan en orden fijo y gana la primera que
// falla.
type ValidadorPasos struct {
	v      Validator
	reglas map[Paso][]regla
}

func NewValidadorPasos() *ValidadorPasos {
	vp := &ValidadorPasos{}
	vp.reglas = map[Paso][]regla{
		PasoDetallesViaje: vp.reglasDetallesViaje(),
		PasoDatosContacto: vp.reglasDatosContacto(),
		PasoResumen:       vp.reglasResumen(),
	}
	return vp
}

// ValidarPaso evalúa las reglas del paso; nil significa que el borrador puede
// avanzar. Los pasos sin reglas (información del servicio, notas) siempre
// pasan.
func (vp *ValidadorPasos) ValidarPaso(paso Paso, r *domain.Reserva, s *domain.Servicio) *ErrorValidacion {
	for _, regla := range vp.reglas[paso] {
		if msg := regla.validar(r, s); msg != "" {
			return &ErrorValidacion{Regla: regla.nombre, Mensaje: msg}
		}
	}
	return nil
}

func (vp *ValidadorPasos) reglasDetallesViaje() []regla {
	return []regla{
		{"fecha", func(r *domain.Reserva, s *domain.Servicio) string {
			if err := vp.v.ValidateFecha(r.Fecha); err != nil {
				return err.Error()
			}
			return ""
		}},
		{"pasajeros", func(r *domain.Reserva, s *domain.Servicio) string {
			if r.NumeroPasajeros <= 0 {
				return "debe indicar cuántas personas viajan"
			}
			return ""
		}},
		{"hora", func(r *domain.Reserva, s *domain.Servicio) string {
			if s.EsTourCompartido {
				return "" // la hora de salida es fija
			}
			if _, ok := minutosDelDia(r.Hora); !ok {
				return "la hora del viaje es requerida"
			}
			return ""
		}},
		{"municipio", func(r *domain.Reserva, s *domain.Servicio) string {
			if s.EsTourCompartido {
				return ""
			}
			if r.Municipio == "" {
				return "el municipio de recogida es requerido"
			}
			if r.Municipio == domain.MunicipioOtro && strings.TrimSpace(r.MunicipioManual) == "" {
				return "escriba el nombre del municipio"
			}
			return ""
		}},
		{"vehiculo", func(r *domain.Reserva, s *domain.Servicio) string {
			if s.EsTourCompartido {
				return ""
			}
			if r.VehiculoID == 0 {
				return "seleccione un vehículo"
			}
			return ""
		}},
		{"horas", func(r *domain.Reserva, s *domain.Servicio) string {
			if s.EsPorHoras && r.CantidadHoras < 4 {
				return "los servicios por horas requieren mínimo 4 horas"
			}
			return ""
		}},
		{"aeropuerto", func(r *domain.Reserva, s *domain.Servicio) string {
			if !s.EsAeropuerto || s.EsTourCompartido {
				return ""
			}
			if r.DireccionAeropuerto == "" {
				return "indique si viene del aeropuerto o va hacia él"
			}
			if strings.TrimSpace(r.LugarRecogida) == "" {
				return "indique el lugar de recogida o destino"
			}
			// El número de vuelo solo es obligatorio en llegadas.
			if r.DireccionAeropuerto == domain.DesdeAeropuerto && strings.TrimSpace(r.NumeroVuelo) == "" {
				return "el número de vuelo es requerido para recogidas en el aeropuerto"
			}
			return ""
		}},
		{"traslado", func(r *domain.Reserva, s *domain.Servicio) string {
			if s.EsAeropuerto || s.EsTourCompartido || !s.EsTrasladoMunicipal() {
				return ""
			}
			if r.DireccionTraslado == "" {
				return "indique el sentido del traslado"
			}
			if strings.TrimSpace(r.LugarRecogida) == "" {
				return "indique el punto de origen del traslado"
			}
			if r.DireccionTraslado == domain.MunicipioAUbicacion && strings.TrimSpace(r.DestinoTraslado) == "" {
				return "indique el destino del traslado"
			}
			return ""
		}},
	}
}

func (vp *ValidadorPasos) reglasDatosContacto() []regla {
	return []regla{
		{"nombre", func(r *domain.Reserva, s *domain.Servicio) string {
			if err := vp.v.ValidateName(r.NombreCliente, 3, "nombre"); err != nil {
				return err.Error()
			}
			return ""
		}},
		{"whatsapp", func(r *domain.Reserva, s *domain.Servicio) string {
			if err := vp.v.ValidateWhatsapp(r.Whatsapp); err != nil {
				return err.Error()
			}
			return ""
		}},
		{"email", func(r *domain.Reserva, s *domain.Servicio) string {
			if err := vp.v.ValidateEmail(r.Email); err != nil {
				return err.Error()
			}
			return ""
		}},
		{"documento", func(r *domain.Reserva, s *domain.Servicio) string {
			if err := vp.v.ValidateDocumentNumber(r.NumeroDocumento); err != nil {
				return err.Error()
			}
			return ""
		}},
		{"asistentes", func(r *domain.Reserva, s *domain.Servicio) string {
			return vp.validarAsistentes(r, s)
		}},
	}
}

// validarAsistentes aplica la exención aeropuerto/aliado: esas reservas solo
// exigen al representante; las demás exigen una lista que coincida con el
// número de pasajeros.
func (vp *ValidadorPasos) validarAsistentes(r *domain.Reserva, s *domain.Servicio) string {
	exento := s.EsAeropuerto || r.EsAliado()

	requeridos := r.NumeroPasajeros
	if exento {
		requeridos = 1
	}

	if len(r.Asistentes) < requeridos {
		if exento {
			return "registre los datos del pasajero principal"
		}
		return fmt.Sprintf("registre los datos de los %d pasajeros", r.NumeroPasajeros)
	}
	if !exento && len(r.Asistentes) > r.NumeroPasajeros {
		return fmt.Sprintf("la lista tiene %d pasajeros pero la reserva es para %d", len(r.Asistentes), r.NumeroPasajeros)
	}

	for i := 0; i < requeridos; i++ {
		asistente := r.Asistentes[i]
		if err := vp.v.ValidateName(asistente.Nombre, 2, fmt.Sprintf("nombre del pasajero %d", i+1)); err != nil {
			return err.Error()
		}
		if len(strings.TrimSpace(asistente.NumeroDocumento)) < 4 {
			return fmt.Sprintf("el documento del pasajero %d debe tener al menos 4 caracteres", i+1)
		}
	}
	return ""
}

func (vp *ValidadorPasos) reglasResumen() []regla {
	return []regla{
		{"precio_manual", func(r *domain.Reserva, s *domain.Servicio) string {
			if r.EsCotizacion && r.PrecioManual <= 0 {
				return "ingrese el precio de la cotización"
			}
			return ""
		}},
	}
}
