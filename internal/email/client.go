package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// ReservaInfo contiene la información de la reserva para el correo de
// confirmación.
type ReservaInfo struct {
	Codigo        string
	NombreCliente string
	Email         string
	Servicio      string
	Fecha         string // YYYY-MM-DD
	Hora          string
	Municipio     string
	Pasajeros     int
	Idioma        domain.Idioma
	Desglose      domain.Desglose
}

// SendReservaConfirmacion envía el correo de confirmación con el desglose de
// precio.
func (c *Client) SendReservaConfirmacion(reserva ReservaInfo) error {
	var subject string
	if reserva.Idioma == domain.IdiomaEN {
		subject = fmt.Sprintf("Your booking is confirmed - Code %s", reserva.Codigo)
	} else {
		subject = fmt.Sprintf("Confirmación de Reserva %s - %s", reserva.Codigo, c.fromName)
	}

	htmlBody := generarHTMLConfirmacion(reserva)
	return c.SendEmail(reserva.Email, subject, htmlBody)
}

// generarHTMLConfirmacion genera el HTML del correo de confirmación
func generarHTMLConfirmacion(reserva ReservaInfo) string {
	filaDesglose := func(etiqueta string, valor int64) string {
		if valor == 0 {
			return ""
		}
		return fmt.Sprintf(`
			<tr>
				<td style="padding: 8px 0;">%s</td>
				<td style="padding: 8px 0; text-align: right;">$%d COP</td>
			</tr>`, etiqueta, valor)
	}

	d := reserva.Desglose
	desgloseHTML := filaDesglose("Precio base", d.PrecioBase) +
		filaDesglose("Vehículo", d.PrecioVehiculo) +
		filaDesglose("Recargo nocturno", d.RecargoNocturno) +
		filaDesglose("Tarifa municipio", d.TarifaMunicipio) +
		filaDesglose("Extras", d.CamposExtra) +
		filaDesglose("Descuento aliado", -d.DescuentoAliado)

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<head>
	<meta charset="UTF-8">
	<title>Confirmación de Reserva</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f4f4f4; padding: 20px;">
		<tr>
			<td align="center">
				<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
					<tr>
						<td style="background-color: #1b7a43; padding: 40px 20px; text-align: center;">
							<h1 style="color: #ffffff; margin: 0; font-size: 28px;">¡Reserva Confirmada!</h1>
							<p style="color: #ffffff; margin: 10px 0 0 0; font-size: 16px;">Código: %s</p>
						</td>
					</tr>
					<tr>
						<td style="padding: 40px 30px;">
							<div style="background-color: #f8f9fa; border-left: 4px solid #1b7a43; padding: 20px; margin-bottom: 30px;">
								<h2 style="margin: 0 0 15px 0; color: #333; font-size: 20px;">Detalles del Viaje</h2>
								<table width="100%%" cellpadding="0" cellspacing="0">
									<tr>
										<td style="padding: 8px 0;"><strong>Servicio:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Fecha:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s %s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Municipio:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%s</td>
									</tr>
									<tr>
										<td style="padding: 8px 0;"><strong>Pasajeros:</strong></td>
										<td style="padding: 8px 0; text-align: right;">%d</td>
									</tr>
								</table>
							</div>

							<div style="padding: 20px; background-color: #f8f9fa; border-radius: 8px;">
								<table width="100%%" cellpadding="0" cellspacing="0">
									%s
									<tr style="border-top: 2px solid #1b7a43;">
										<td style="padding: 15px 0 0 0;"><strong style="font-size: 18px;">Total:</strong></td>
										<td style="padding: 15px 0 0 0; text-align: right;"><strong style="font-size: 24px; color: #1b7a43;">$%d COP</strong></td>
									</tr>
								</table>
							</div>

							<p style="margin-top: 30px; color: #666;">
								Hola %s, el conductor te contactará por WhatsApp antes del viaje.
							</p>
						</td>
					</tr>
					<tr>
						<td style="background-color: #f8f9fa; padding: 30px; text-align: center; border-top: 1px solid #e0e0e0;">
							<p style="margin: 0; color: #999; font-size: 12px;">
								Este es un correo automático, por favor no responder directamente
							</p>
						</td>
					</tr>
				</table>
			</td>
		</tr>
	</table>
</body>
</html>
	`,
		reserva.Codigo,
		reserva.Servicio,
		reserva.Fecha,
		reserva.Hora,
		reserva.Municipio,
		reserva.Pasajeros,
		desgloseHTML,
		d.Total,
		reserva.NombreCliente,
	)
}
