package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/domain"
)

func itemPrueba(id string, total int64) domain.ItemCarrito {
	return domain.ItemCarrito{
		ID:         id,
		ServicioID: 1,
		Reserva:    *domain.NuevaReserva(),
		Total:      total,
		CreadoEn:   time.Now().Truncate(time.Second),
	}
}

func TestCarritoGuardarYCargar(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "carrito.json")
	repo := NewCarritoRepository(ruta)

	items := []domain.ItemCarrito{itemPrueba("a", 200000), itemPrueba("b", 100000)}
	if err := repo.Guardar(items); err != nil {
		t.Fatalf("guardar falló: %v", err)
	}

	cargados, err := repo.Cargar()
	if err != nil {
		t.Fatalf("cargar falló: %v", err)
	}
	if len(cargados) != 2 {
		t.Fatalf("esperaba 2 items, got %d", len(cargados))
	}
	if cargados[0].ID != "a" || cargados[1].Total != 100000 {
		t.Fatalf("items mal persistidos: %+v", cargados)
	}
}

func TestCarritoVacioSinArchivo(t *testing.T) {
	repo := NewCarritoRepository(filepath.Join(t.TempDir(), "no-existe.json"))

	items, err := repo.Cargar()
	if err != nil {
		t.Fatalf("un archivo inexistente es carrito vacío, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("esperaba lista vacía, got %+v", items)
	}
}

func TestCarritoArchivoCorrupto(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "carrito.json")
	if err := os.WriteFile(ruta, []byte(`{{{roto`), 0o644); err != nil {
		t.Fatalf("escribiendo archivo de prueba: %v", err)
	}

	repo := NewCarritoRepository(ruta)
	items, err := repo.Cargar()
	if err != nil {
		t.Fatalf("un archivo corrupto degrada a carrito vacío, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("esperaba lista vacía, got %+v", items)
	}
}

func TestCarritoGuardarReemplaza(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "carrito.json")
	repo := NewCarritoRepository(ruta)

	if err := repo.Guardar([]domain.ItemCarrito{itemPrueba("a", 1), itemPrueba("b", 2)}); err != nil {
		t.Fatalf("primer guardar falló: %v", err)
	}
	if err := repo.Guardar([]domain.ItemCarrito{itemPrueba("c", 3)}); err != nil {
		t.Fatalf("segundo guardar falló: %v", err)
	}

	items, err := repo.Cargar()
	if err != nil {
		t.Fatalf("cargar falló: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c" {
		t.Fatalf("guardar debe reemplazar el contenido completo: %+v", items)
	}
}

func TestCarritoLimpiar(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "carrito.json")
	repo := NewCarritoRepository(ruta)

	if err := repo.Guardar([]domain.ItemCarrito{itemPrueba("a", 1)}); err != nil {
		t.Fatalf("guardar falló: %v", err)
	}
	if err := repo.Limpiar(); err != nil {
		t.Fatalf("limpiar falló: %v", err)
	}
	items, err := repo.Cargar()
	if err != nil || len(items) != 0 {
		t.Fatalf("tras limpiar el carrito queda vacío: %v %+v", err, items)
	}

	// Limpiar un carrito ya vacío no es error.
	if err := repo.Limpiar(); err != nil {
		t.Fatalf("limpiar dos veces falló: %v", err)
	}
}

func TestCarritoCreaDirectorio(t *testing.T) {
	ruta := filepath.Join(t.TempDir(), "anidado", "carrito.json")
	repo := NewCarritoRepository(ruta)

	if err := repo.Guardar([]domain.ItemCarrito{itemPrueba("a", 1)}); err != nil {
		t.Fatalf("guardar debe crear el directorio, got %v", err)
	}
}
