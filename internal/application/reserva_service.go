package application

import (
	"fmt"
	"log"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/email"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/whatsapp"
)

// ReservaService finaliza reservas: las envía al API externo y dispara las
// notificaciones de confirmación. Los envíos de correo y WhatsApp son
// fire-and-forget: un fallo se registra pero nunca tumba la reserva.
type ReservaService struct {
	api            ClienteReservas
	emailClient    *email.Client
	whatsappClient *whatsapp.Client
}

func NewReservaService(api ClienteReservas, emailClient *email.Client, whatsappClient *whatsapp.Client) *ReservaService {
	return &ReservaService{
		api:            api,
		emailClient:    emailClient,
		whatsappClient: whatsappClient,
	}
}

// Enviar somete la reserva finalizada del asistente y retorna el código de
// reserva del API externo. El borrador no se descarta si el envío falla, para
// que el cliente pueda reintentar sin digitar todo de nuevo.
func (s *ReservaService) Enviar(w *Wizard, metodo domain.MetodoPago) (string, error) {
	w.Reserva.MetodoPago = metodo

	codigo, err := s.api.CrearReserva(w.Reserva, w.Servicio.ID, metodo)
	if err != nil {
		return "", err
	}

	s.notificar(w, codigo)
	return codigo, nil
}

// Cotizar somete la variante de cotización manual del aliado/admin. El precio
// manual ya fue exigido por el paso de resumen.
func (s *ReservaService) Cotizar(w *Wizard) (string, error) {
	if w.Reserva.PrecioManual <= 0 {
		return "", fmt.Errorf("la cotización requiere un precio manual mayor a 0")
	}
	return s.api.CrearCotizacion(w.Reserva, w.Servicio.ID, w.Reserva.PrecioManual)
}

func (s *ReservaService) notificar(w *Wizard, codigo string) {
	r := w.Reserva

	if s.emailClient != nil && r.Email != "" {
		info := email.ReservaInfo{
			Codigo:        codigo,
			NombreCliente: r.NombreCliente,
			Email:         r.Email,
			Servicio:      w.Servicio.Nombre,
			Fecha:         r.Fecha,
			Hora:          r.Hora,
			Municipio:     string(r.Municipio),
			Pasajeros:     r.NumeroPasajeros,
			Idioma:        r.Idioma,
			Desglose:      r.Desglose,
		}
		go func() {
			if err := s.emailClient.SendReservaConfirmacion(info); err != nil {
				log.Printf("ALERTA: falló el correo de confirmación de la reserva %s: %v", codigo, err)
			}
		}()
	}

	if s.whatsappClient != nil && r.Whatsapp != "" {
		go func() {
			if err := s.whatsappClient.EnviarConfirmacion(r.Whatsapp, codigo, r.Fecha, r.Hora, r.Desglose.Total, r.Idioma); err != nil {
				log.Printf("ALERTA: falló el WhatsApp de confirmación de la reserva %s: %v", codigo, err)
			}
		}()
	}
}
