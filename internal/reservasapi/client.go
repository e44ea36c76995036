package reservasapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

// Client consume el API externo de reservas, el sistema de registro de las
// reservas confirmadas. Los errores del API se retornan como valores con la
// razón del servidor cuando está disponible; el borrador queda intacto para
// reintentar.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// reservaPayload es la serialización de la reserva hacia el API. La fecha
// viaja como texto YYYY-MM-DD: una fecha calendario sin zona horaria no puede
// correrse un día al cruzar UTC.
type reservaPayload struct {
	ServicioID   int               `json:"servicioId"`
	AliadoID     *int              `json:"aliadoId"`
	MetodoPago   domain.MetodoPago `json:"metodoPago,omitempty"`
	PrecioManual int64             `json:"precioManual,omitempty"`
	Reserva      *domain.Reserva   `json:"reserva"`
}

type ordenPayload struct {
	Items      []domain.ItemCarrito `json:"items"`
	MetodoPago domain.MetodoPago    `json:"metodoPago"`
	Recargo    int64                `json:"recargo"`
}

type codigoResponse struct {
	Codigo string `json:"codigo"`
	Error  string `json:"error,omitempty"`
}

// CrearReserva envía la reserva finalizada y retorna el código de reserva.
func (c *Client) CrearReserva(r *domain.Reserva, servicioID int, metodo domain.MetodoPago) (string, error) {
	return c.post("/api/reservas", reservaPayload{
		ServicioID: servicioID,
		AliadoID:   r.AliadoID,
		MetodoPago: metodo,
		Reserva:    r,
	})
}

// CrearCotizacion envía la variante de cotización con el precio manual.
func (c *Client) CrearCotizacion(r *domain.Reserva, servicioID int, precioManual int64) (string, error) {
	return c.post("/api/cotizaciones", reservaPayload{
		ServicioID:   servicioID,
		AliadoID:     r.AliadoID,
		PrecioManual: precioManual,
		Reserva:      r,
	})
}

// CrearOrden envía una orden multi-servicio con su recargo de pago.
func (c *Client) CrearOrden(items []domain.ItemCarrito, metodo domain.MetodoPago, recargo int64) (string, error) {
	return c.post("/api/ordenes", ordenPayload{
		Items:      items,
		MetodoPago: metodo,
		Recargo:    recargo,
	})
}

func (c *Client) post(path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error al serializar la petición: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error al construir la petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("el API de reservas no está disponible: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error al leer la respuesta del API de reservas: %w", err)
	}

	var parsed codigoResponse
	if err := json.Unmarshal(raw, &parsed); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("respuesta ilegible del API de reservas: %w", err)
	}

	if resp.StatusCode >= 300 {
		if parsed.Error != "" {
			return "", fmt.Errorf("el API de reservas rechazó la petición: %s", parsed.Error)
		}
		return "", fmt.Errorf("el API de reservas respondió estado %d", resp.StatusCode)
	}

	if parsed.Codigo == "" {
		return "", fmt.Errorf("el API de reservas no retornó código")
	}
	return parsed.Codigo, nil
}
