package http

import (
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/application"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type CarritoHandler struct {
	repo    domain.CarritoRepository
	service *application.CarritoService
}

// NewCarritoHandler crea una nueva instancia del handler del carrito
func NewCarritoHandler(repo domain.CarritoRepository, service *application.CarritoService) *CarritoHandler {
	return &CarritoHandler{
		repo:    repo,
		service: service,
	}
}

// GetItems retorna los items guardados en el carrito
func (h *CarritoHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.repo.Cargar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var subtotal int64
	for _, item := range items {
		subtotal += item.Total
	}

	return c.JSON(fiber.Map{
		"data":     items,
		"subtotal": subtotal,
	})
}

// Limpiar vacía el carrito
func (h *CarritoHandler) Limpiar(c *fiber.Ctx) error {
	if err := h.repo.Limpiar(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Carrito vaciado",
	})
}

// Checkout crea una orden solo con los items guardados, sin reserva en curso
func (h *CarritoHandler) Checkout(c *fiber.Ctx) error {
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

	orden, err := h.service.Checkout(nil, metodo)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Orden creada exitosamente",
		"data":    orden,
	})
}
