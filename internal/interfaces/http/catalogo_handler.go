package http

import (
	"strconv"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/application"
	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type CatalogoHandler struct {
	service *application.CatalogoService
}

// NewCatalogoHandler crea una nueva instancia del handler del catálogo
func NewCatalogoHandler(service *application.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{
		service: service,
	}
}

// GetAllServicios retorna los servicios activos del catálogo
func (h *CatalogoHandler) GetAllServicios(c *fiber.Ctx) error {
	servicios, err := h.service.GetServicios()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": servicios,
	})
}

// GetServicioByID retorna un servicio con sus vehículos y campos dinámicos
func (h *CatalogoHandler) GetServicioByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de servicio inválido",
		})
	}

	servicio, err := h.service.GetServicio(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": servicio,
	})
}

// GetMunicipios retorna los municipios de recogida con su tarifa estándar
func (h *CatalogoHandler) GetMunicipios(c *fiber.Ctx) error {
	type municipioInfo struct {
		Nombre string `json:"nombre"`
		Tarifa int64  `json:"tarifa"`
	}

	municipios := domain.Municipios()
	data := make([]municipioInfo, 0, len(municipios))
	for _, m := range municipios {
		data = append(data, municipioInfo{
			Nombre: string(m),
			Tarifa: domain.TarifaMunicipio(m),
		})
	}

	return c.JSON(fiber.Map{
		"data": data,
	})
}
