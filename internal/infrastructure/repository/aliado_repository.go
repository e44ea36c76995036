package repository

import (
	"database/sql"
	"fmt"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

type aliadoRepository struct {
	db *sql.DB
}

// NewAliadoRepository crea una nueva instancia de aliadoRepository
func NewAliadoRepository(db *sql.DB) domain.AliadoRepository {
	return &aliadoRepository{
		db: db,
	}
}

// GetAliadoByID obtiene el aliado con sus sobreescrituras de precios de
// vehículo, tarifas de municipio y recargo nocturno.
func (r *aliadoRepository) GetAliadoByID(id int) (*domain.Aliado, error) {
	query := `
		SELECT
			ally_id,
			nombre,
			descuento,
			recargo_usar_propio,
			recargo_activo,
			COALESCE(recargo_hora_inicio, ''),
			COALESCE(recargo_hora_fin, ''),
			recargo_valor
		FROM ally
		WHERE ally_id = $1`

	var a domain.Aliado
	var recargo domain.RecargoAliado
	err := r.db.QueryRow(query, id).Scan(
		&a.ID,
		&a.Nombre,
		&a.Descuento,
		&recargo.UsarPropio,
		&recargo.Activo,
		&recargo.HoraInicio,
		&recargo.HoraFin,
		&recargo.Valor,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("aliado %d no encontrado", id)
	}
	if err != nil {
		return nil, fmt.Errorf("error querying ally: %w", err)
	}
	a.Recargo = &recargo

	if a.PreciosVehiculo, err = r.getPreciosVehiculo(id); err != nil {
		return nil, err
	}
	if a.TarifasMunicipio, err = r.getTarifasMunicipio(id); err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *aliadoRepository) getPreciosVehiculo(aliadoID int) (map[int]int64, error) {
	rows, err := r.db.Query(
		`SELECT vehicle_id, precio FROM ally_vehicle_price WHERE ally_id = $1`, aliadoID)
	if err != nil {
		return nil, fmt.Errorf("error querying ally vehicle prices: %w", err)
	}
	defer rows.Close()

	precios := map[int]int64{}
	for rows.Next() {
		var vehiculoID int
		var precio int64
		if err := rows.Scan(&vehiculoID, &precio); err != nil {
			return nil, fmt.Errorf("error scanning ally vehicle price: %w", err)
		}
		precios[vehiculoID] = precio
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ally vehicle prices: %w", err)
	}

	return precios, nil
}

func (r *aliadoRepository) getTarifasMunicipio(aliadoID int) (map[domain.Municipio]int64, error) {
	rows, err := r.db.Query(
		`SELECT municipio, tarifa FROM ally_municipality_rate WHERE ally_id = $1`, aliadoID)
	if err != nil {
		return nil, fmt.Errorf("error querying ally municipality rates: %w", err)
	}
	defer rows.Close()

	tarifas := map[domain.Municipio]int64{}
	for rows.Next() {
		var municipio string
		var tarifa int64
		if err := rows.Scan(&municipio, &tarifa); err != nil {
			return nil, fmt.Errorf("error scanning ally municipality rate: %w", err)
		}
		tarifas[domain.Municipio(municipio)] = tarifa
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ally municipality rates: %w", err)
	}

	return tarifas, nil
}
