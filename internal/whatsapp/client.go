package whatsapp

import (
	"fmt"
	"log"
	"strings"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client envía mensajes de WhatsApp vía Twilio.
type Client struct {
	rest *twilio.RestClient
	from string
}

// NewClient crea el cliente de WhatsApp. Retorna nil si faltan credenciales,
// para que el resto del sistema continúe sin notificaciones.
func NewClient(accountSID, authToken, fromNumber string) *Client {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		log.Println("ADVERTENCIA: credenciales de Twilio no configuradas. No se enviarán mensajes de WhatsApp.")
		return nil
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSID,
		Password:   authToken,
		AccountSid: accountSID,
	})

	return &Client{
		rest: rest,
		from: fromNumber,
	}
}

// EnviarConfirmacion envía el código de reserva al WhatsApp del cliente.
func (c *Client) EnviarConfirmacion(to, codigo, fecha, hora string, total int64, idioma domain.Idioma) error {
	var cuerpo string
	if idioma == domain.IdiomaEN {
		cuerpo = fmt.Sprintf("Your booking %s is confirmed!\nDate: %s %s\nTotal: $%d COP\nMore details in your email.",
			codigo, fecha, hora, total)
	} else {
		cuerpo = fmt.Sprintf("¡Tu reserva %s está confirmada!\nFecha: %s %s\nTotal: $%d COP\nMás detalles en tu correo.",
			codigo, fecha, hora, total)
	}

	return c.enviar(to, cuerpo)
}

func (c *Client) enviar(to, cuerpo string) error {
	if !strings.HasPrefix(to, "+") {
		// Sin indicativo se asume Colombia.
		to = "+57" + strings.TrimLeft(to, "0")
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + c.from)
	params.SetBody(cuerpo)

	if _, err := c.rest.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("error al enviar WhatsApp a %s: %w", to, err)
	}
	return nil
}
