package http

import (
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/application"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type WizardHandler struct {
	catalogo *application.CatalogoService
	wizard   *application.WizardService
	sesiones *application.RegistroSesiones
	reservas *application.ReservaService
	carrito  *application.CarritoService
}

// NewWizardHandler crea una nueva instancia del handler del asistente
func NewWizardHandler(
	catalogo *application.CatalogoService,
	wizard *application.WizardService,
	sesiones *application.RegistroSesiones,
	reservas *application.ReservaService,
	carrito *application.CarritoService,
) *WizardHandler {
	return &WizardHandler{
		catalogo: catalogo,
		wizard:   wizard,
		sesiones: sesiones,
		reservas: reservas,
		carrito:  carrito,
	}
}

// CrearSesionRequest representa la petición para abrir el asistente
type CrearSesionRequest struct {
	ServicioID int  `json:"servicioId"`
	AliadoID   *int `json:"aliadoId,omitempty"`
}

// ActualizarReservaRequest es una actualización parcial del borrador. Solo los
// campos presentes en el JSON se aplican.
type ActualizarReservaRequest struct {
	NombreCliente   *string `json:"nombreCliente,omitempty"`
	TipoDocumento   *string `json:"tipoDocumento,omitempty"`
	NumeroDocumento *string `json:"numeroDocumento,omitempty"`
	Whatsapp        *string `json:"whatsapp,omitempty"`
	Email           *string `json:"email,omitempty"`
	Idioma          *string `json:"idioma,omitempty"`

	Fecha           *string `json:"fecha,omitempty"`
	Hora            *string `json:"hora,omitempty"`
	Municipio       *string `json:"municipio,omitempty"`
	MunicipioManual *string `json:"municipioManual,omitempty"`
	LugarRecogida   *string `json:"lugarRecogida,omitempty"`
	NumeroPasajeros *int    `json:"numeroPasajeros,omitempty"`
	VehiculoID      *int    `json:"vehiculoId,omitempty"`
	CantidadHoras   *int    `json:"cantidadHoras,omitempty"`

	DireccionAeropuerto *string `json:"direccionAeropuerto,omitempty"`
	Aeropuerto          *string `json:"aeropuerto,omitempty"`
	NumeroVuelo         *string `json:"numeroVuelo,omitempty"`

	DireccionTraslado *string `json:"direccionTraslado,omitempty"`
	DestinoTraslado   *string `json:"destinoTraslado,omitempty"`

	Asistentes    *[]domain.Asistente `json:"asistentes,omitempty"`
	ValoresCampos *map[string]any     `json:"valoresCampos,omitempty"`

	Notas        *string `json:"notas,omitempty"`
	EsCotizacion *bool   `json:"esCotizacion,omitempty"`
	PrecioManual *int64  `json:"precioManual,omitempty"`
}

// IrAPasoRequest representa la petición para saltar a un paso ya alcanzado
type IrAPasoRequest struct {
	Paso int `json:"paso"`
}

// MetodoPagoRequest representa la petición de envío o checkout con su método
// de pago
type MetodoPagoRequest struct {
	MetodoPago string `json:"metodoPago"`
}

// CrearSesion abre una sesión del asistente para un servicio
func (h *WizardHandler) CrearSesion(c *fiber.Ctx) error {
	var req CrearSesionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if req.ServicioID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "servicioId es requerido",
		})
	}

	servicio, err := h.catalogo.GetServicio(req.ServicioID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var aliado *domain.Aliado
	if req.AliadoID != nil {
		aliado, err = h.catalogo.GetAliado(*req.AliadoID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	w := h.wizard.NuevoWizard(servicio, aliado)
	w.Bloquear()
	defer w.Desbloquear()
	h.sesiones.Registrar(w)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"data": w,
	})
}

// GetSesion retorna el estado actual de la sesión
func (h *WizardHandler) GetSesion(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	return c.JSON(fiber.Map{
		"data": w,
	})
}

// Resumen retorna el desglose vigente con la comisión del método de pago
// indicado en el query param metodoPago. Sin método se asume Efectivo, que no
// genera comisión.
func (h *WizardHandler) Resumen(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	metodo := domain.PagoEfectivo
	if q := c.Query("metodoPago"); q != "" {
		var ok bool
		metodo, ok = parseMetodoPago(q)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Método de pago inválido. Use Efectivo, Tarjeta o Transferencia",
			})
		}
	}

	return c.JSON(fiber.Map{
		"data": h.wizard.Resumen(w, metodo),
	})
}

// ActualizarReserva aplica una actualización parcial al borrador y retorna el
// estado con el desglose recalculado
func (h *WizardHandler) ActualizarReserva(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	var req ActualizarReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	h.wizard.Actualizar(w, func(r *domain.Reserva) {
		aplicarActualizacion(r, &req)
	})

	return c.JSON(fiber.Map{
		"data": w,
	})
}

// Avanzar valida el paso actual y avanza al siguiente
func (h *WizardHandler) Avanzar(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	if errVal := h.wizard.Avanzar(w); errVal != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": errVal.Mensaje,
			"regla": errVal.Regla,
		})
	}

	return c.JSON(fiber.Map{
		"data": w,
	})
}

// Retroceder vuelve al paso anterior
func (h *WizardHandler) Retroceder(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	h.wizard.Retroceder(w)

	return c.JSON(fiber.Map{
		"data": w,
	})
}

// IrAPaso salta a un paso ya alcanzado
func (h *WizardHandler) IrAPaso(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	var req IrAPasoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if err := h.wizard.IrAPaso(w, application.Paso(req.Paso)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": w,
	})
}

// CerrarSesion abandona el asistente y descarta la sesión
func (h *WizardHandler) CerrarSesion(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	h.wizard.Cerrar(w)
	h.sesiones.Eliminar(w.ID)

	return c.JSON(fiber.Map{
		"message": "Sesión cerrada",
	})
}

// AgregarAlCarrito guarda la reserva actual como item del carrito y reinicia
// el asistente para que el cliente configure otro servicio
func (h *WizardHandler) AgregarAlCarrito(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	if w.PasoActual < application.PasoResumen {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Complete los pasos del asistente antes de agregar al carrito",
		})
	}

	item, err := h.carrito.Agregar(w)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.wizard.Cerrar(w)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Reserva agregada al carrito",
		"data":    item,
	})
}

// EnviarReserva somete la reserva finalizada y retorna el código de reserva
func (h *WizardHandler) EnviarReserva(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	var req MetodoPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	metodo, ok := parseMetodoPago(req.MetodoPago)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Método de pago inválido. Use Efectivo, Tarjeta o Transferencia",
		})
	}

	if w.PasoActual < application.PasoResumen {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Complete los pasos del asistente antes de enviar la reserva",
		})
	}

	resumen := h.wizard.Resumen(w, metodo)

	codigo, err := h.reservas.Enviar(w, metodo)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.sesiones.Eliminar(w.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Reserva creada exitosamente",
		"codigo":   codigo,
		"comision": resumen.Comision,
		"total":    resumen.Total,
	})
}

// Cotizar somete la variante de cotización con precio manual
func (h *WizardHandler) Cotizar(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	codigo, err := h.reservas.Cotizar(w)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.sesiones.Eliminar(w.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Cotización creada exitosamente",
		"codigo":  codigo,
	})
}

// Checkout crea la orden con los items del carrito más la reserva actual
func (h *WizardHandler) Checkout(c *fiber.Ctx) error {
	w, errResp := h.sesion(c)
	if w == nil {
		return errResp
	}
	w.Bloquear()
	defer w.Desbloquear()

	var req MetodoPagoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	metodo, ok := parseMetodoPago(req.MetodoPago)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Método de pago inválido. Use Efectivo, Tarjeta o Transferencia",
		})
	}

	if w.PasoActual < application.PasoResumen {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Complete los pasos del asistente antes del checkout",
		})
	}

	orden, err := h.carrito.Checkout(w, metodo)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.sesiones.Eliminar(w.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Orden creada exitosamente",
		"data":    orden,
	})
}

// sesion resuelve la sesión del parámetro de ruta; si no existe ya respondió
// 404 y retorna nil.
func (h *WizardHandler) sesion(c *fiber.Ctx) (*application.Wizard, error) {
	id := c.Params("id")
	w := h.sesiones.Obtener(id)
	if w == nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sesión no encontrada o expirada",
		})
	}
	return w, nil
}

func parseMetodoPago(s string) (domain.MetodoPago, bool) {
	switch domain.MetodoPago(s) {
	case domain.PagoEfectivo, domain.PagoTarjeta, domain.PagoTransferencia:
		return domain.MetodoPago(s), true
	}
	return "", false
}

// aplicarActualizacion copia al borrador solo los campos presentes en la
// petición.
func aplicarActualizacion(r *domain.Reserva, req *ActualizarReservaRequest) {
	if req.NombreCliente != nil {
		r.NombreCliente = *req.NombreCliente
	}
	if req.TipoDocumento != nil {
		r.TipoDocumento = *req.TipoDocumento
	}
	if req.NumeroDocumento != nil {
		r.NumeroDocumento = *req.NumeroDocumento
	}
	if req.Whatsapp != nil {
		r.Whatsapp = *req.Whatsapp
	}
	if req.Email != nil {
		r.Email = *req.Email
	}
	if req.Idioma != nil {
		r.Idioma = domain.Idioma(*req.Idioma)
	}
	if req.Fecha != nil {
		r.Fecha = *req.Fecha
	}
	if req.Hora != nil {
		r.Hora = *req.Hora
	}
	if req.Municipio != nil {
		r.Municipio = domain.Municipio(*req.Municipio)
	}
	if req.MunicipioManual != nil {
		r.MunicipioManual = *req.MunicipioManual
	}
	if req.LugarRecogida != nil {
		r.LugarRecogida = *req.LugarRecogida
	}
	if req.NumeroPasajeros != nil {
		r.NumeroPasajeros = *req.NumeroPasajeros
	}
	if req.VehiculoID != nil {
		r.VehiculoID = *req.VehiculoID
	}
	if req.CantidadHoras != nil {
		r.CantidadHoras = *req.CantidadHoras
	}
	if req.DireccionAeropuerto != nil {
		r.DireccionAeropuerto = domain.DireccionAeropuerto(*req.DireccionAeropuerto)
	}
	if req.Aeropuerto != nil {
		r.Aeropuerto = *req.Aeropuerto
	}
	if req.NumeroVuelo != nil {
		r.NumeroVuelo = *req.NumeroVuelo
	}
	if req.DireccionTraslado != nil {
		r.DireccionTraslado = domain.DireccionTraslado(*req.DireccionTraslado)
	}
	if req.DestinoTraslado != nil {
		r.DestinoTraslado = *req.DestinoTraslado
	}
	if req.Asistentes != nil {
		r.Asistentes = *req.Asistentes
	}
	if req.ValoresCampos != nil {
		r.ValoresCampos = *req.ValoresCampos
	}
	if req.Notas != nil {
		r.Notas = *req.Notas
	}
	if req.EsCotizacion != nil {
		r.EsCotizacion = *req.EsCotizacion
	}
	if req.PrecioManual != nil {
		r.PrecioManual = *req.PrecioManual
	}
}
