package application

import (
	"sync"
	"time"
)

// RegistroSesiones guarda en memoria las sesiones activas del asistente,
// indexadas por ID. Las sesiones que no se tocan dentro del TTL se consideran
// abandonadas y las barre el scheduler.
type RegistroSesiones struct {
	mu       sync.RWMutex
	sesiones map[string]*Wizard
	ttl      time.Duration
}

func NewRegistroSesiones(ttl time.Duration) *RegistroSesiones {
	return &RegistroSesiones{
		sesiones: map[string]*Wizard{},
		ttl:      ttl,
	}
}

// Registrar agrega una sesión nueva al registro.
func (rs *RegistroSesiones) Registrar(w *Wizard) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.sesiones[w.ID] = w
}

// Obtener retorna la sesión por ID, o nil si no existe.
func (rs *RegistroSesiones) Obtener(id string) *Wizard {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.sesiones[id]
}

// Eliminar descarta la sesión.
func (rs *RegistroSesiones) Eliminar(id string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.sesiones, id)
}

// Cantidad retorna cuántas sesiones hay registradas.
func (rs *RegistroSesiones) Cantidad() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.sesiones)
}

// LimpiarExpiradas elimina las sesiones sin actividad dentro del TTL y
// retorna cuántas se descartaron.
func (rs *RegistroSesiones) LimpiarExpiradas() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	limite := time.Now().Add(-rs.ttl)
	eliminadas := 0
	for id, w := range rs.sesiones {
		// ActualizadoEn lo escriben las peticiones bajo el mutex de la
		// sesión. Una sesión con el mutex tomado está atendiendo una
		// petición en este momento: no está expirada.
		if !w.mu.TryLock() {
			continue
		}
		expirada := w.ActualizadoEn.Before(limite)
		w.mu.Unlock()
		if expirada {
			delete(rs.sesiones, id)
			eliminadas++
		}
	}
	return eliminadas
}
