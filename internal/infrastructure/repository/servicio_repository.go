package repository

import (
	"database/sql"
	"fmt"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

type servicioRepository struct {
	db *sql.DB
}

// NewServicioRepository crea una nueva instancia de servicioRepository
func NewServicioRepository(db *sql.DB) domain.ServicioRepository {
	return &servicioRepository{
		db: db,
	}
}

// GetServicioByID obtiene la configuración completa de un servicio: flags de
// precio, recargo nocturno, vehículos y campos personalizados.
func (r *servicioRepository) GetServicioByID(id int) (*domain.Servicio, error) {
	query := `
		SELECT
			service_id,
			nombre,
			descripcion,
			tipo,
			es_aeropuerto,
			es_por_horas,
			es_tour_compartido,
			precio_base,
			precio_por_persona,
			COALESCE(lugar_fijo, ''),
			COALESCE(hora_fija, ''),
			recargo_activo,
			COALESCE(recargo_hora_inicio, ''),
			COALESCE(recargo_hora_fin, ''),
			recargo_valor,
			COALESCE(campos, 'null'),
			status
		FROM service
		WHERE service_id = $1`

	var s domain.Servicio
	var camposRaw []byte
	err := r.db.QueryRow(query, id).Scan(
		&s.ID,
		&s.Nombre,
		&s.Descripcion,
		&s.Tipo,
		&s.EsAeropuerto,
		&s.EsPorHoras,
		&s.EsTourCompartido,
		&s.PrecioBase,
		&s.PrecioPorPersona,
		&s.LugarFijo,
		&s.HoraFija,
		&s.Recargo.Activo,
		&s.Recargo.HoraInicio,
		&s.Recargo.HoraFin,
		&s.Recargo.Valor,
		&camposRaw,
		&s.Status,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("servicio %d no encontrado", id)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying service: %w", err)
	}

	// La definición de campos vive como JSON en la BD; una definición
	// ilegible degrada a lista vacía, nunca tumba la consulta.
	s.Campos = domain.DecodificarCampos(camposRaw)

	vehiculos, err := r.getVehiculos(id)
	if err != nil {
		return nil, err
	}
	s.Vehiculos = vehiculos

	return &s, nil
}

// GetAllServicios implementa domain.ServicioRepository
func (r *servicioRepository) GetAllServicios() ([]domain.Servicio, error) {
	query := `
		SELECT
			service_id,
			nombre,
			descripcion,
			tipo,
			es_aeropuerto,
			es_por_horas,
			es_tour_compartido,
			precio_base,
			precio_por_persona,
			status
		FROM service
		WHERE status = 1
		ORDER BY service_id;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying services: %w", err)
	}
	defer rows.Close()

	var servicios []domain.Servicio
	for rows.Next() {
		var s domain.Servicio
		err := rows.Scan(
			&s.ID,
			&s.Nombre,
			&s.Descripcion,
			&s.Tipo,
			&s.EsAeropuerto,
			&s.EsPorHoras,
			&s.EsTourCompartido,
			&s.PrecioBase,
			&s.PrecioPorPersona,
			&s.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning service: %w", err)
		}
		servicios = append(servicios, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating services: %w", err)
	}

	return servicios, nil
}

func (r *servicioRepository) getVehiculos(servicioID int) ([]domain.Vehiculo, error) {
	query := `
		SELECT vehicle_id, nombre, capacidad, precio
		FROM vehicle
		WHERE service_id = $1
		ORDER BY vehicle_id;`

	rows, err := r.db.Query(query, servicioID)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	var vehiculos []domain.Vehiculo
	for rows.Next() {
		var v domain.Vehiculo
		if err := rows.Scan(&v.ID, &v.Nombre, &v.Capacidad, &v.Precio); err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		vehiculos = append(vehiculos, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicles: %w", err)
	}

	return vehiculos, nil
}
