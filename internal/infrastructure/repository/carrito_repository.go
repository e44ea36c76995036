package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

type carritoRepository struct {
	ruta string
}

// NewCarritoRepository crea un almacenamiento de carrito respaldado por un
// archivo JSON en la ruta indicada.
func NewCarritoRepository(ruta string) domain.CarritoRepository {
	return &carritoRepository{
		ruta: ruta,
	}
}

// Cargar lee los items del carrito. Un archivo inexistente o corrupto se
// trata como carrito vacío.
func (r *carritoRepository) Cargar() ([]domain.ItemCarrito, error) {
	data, err := os.ReadFile(r.ruta)
	if os.IsNotExist(err) {
		return []domain.ItemCarrito{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading cart file: %w", err)
	}

	var items []domain.ItemCarrito
	if err := json.Unmarshal(data, &items); err != nil {
		return []domain.ItemCarrito{}, nil
	}

	return items, nil
}

// Guardar reemplaza el contenido completo del carrito. Última escritura gana.
func (r *carritoRepository) Guardar(items []domain.ItemCarrito) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("error encoding cart: %w", err)
	}

	if dir := filepath.Dir(r.ruta); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating cart directory: %w", err)
		}
	}

	if err := os.WriteFile(r.ruta, data, 0o644); err != nil {
		return fmt.Errorf("error writing cart file: %w", err)
	}

	return nil
}

// Limpiar vacía el carrito eliminando el archivo.
func (r *carritoRepository) Limpiar() error {
	err := os.Remove(r.ruta)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing cart file: %w", err)
	}
	return nil
}
