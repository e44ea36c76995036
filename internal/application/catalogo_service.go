package application

import "github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"

type CatalogoService struct {
	servicios domain.ServicioRepository
	aliados   domain.AliadoRepository
}

func NewCatalogoService(servicios domain.ServicioRepository, aliados domain.AliadoRepository) *CatalogoService {
	return &CatalogoService{
		servicios: servicios,
		aliados:   aliados,
	}
}

func (s *CatalogoService) GetServicio(id int) (*domain.Servicio, error) {
	return s.servicios.GetServicioByID(id)
}

func (s *CatalogoService) GetServicios() ([]domain.Servicio, error) {
	return s.servicios.GetAllServicios()
}

func (s *CatalogoService) GetAliado(id int) (*domain.Aliado, error) {
	return s.aliados.GetAliadoByID(id)
}
