package scheduler

import (
	"log"
	"time"

	"github.com/NicoHurtado/MedellinTravelTransportes-sub000/internal/application"
)

type SessionScheduler struct {
	sesiones  *application.RegistroSesiones
	intervalo time.Duration
	ticker    *time.Ticker
	done      chan struct{}
}

// NewSessionScheduler crea una nueva instancia del scheduler de sesiones
func NewSessionScheduler(sesiones *application.RegistroSesiones, intervalo time.Duration) *SessionScheduler {
	return &SessionScheduler{
		sesiones:  sesiones,
		intervalo: intervalo,
		done:      make(chan struct{}),
	}
}

// Start inicia el scheduler que barre las sesiones abandonadas del asistente
func (s *SessionScheduler) Start() {
	log.Printf("🕐 Scheduler de sesiones iniciado - Se ejecutará cada %s", s.intervalo)

	// Ejecutar inmediatamente al iniciar
	s.LimpiarSesionesExpiradas()

	s.ticker = time.NewTicker(s.intervalo)
	go func() {
		for {
			select {
			case <-s.ticker.C:
				s.LimpiarSesionesExpiradas()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop detiene el scheduler
func (s *SessionScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		log.Println("🛑 Scheduler de sesiones detenido")
	}
}

// LimpiarSesionesExpiradas descarta las sesiones del asistente sin actividad
func (s *SessionScheduler) LimpiarSesionesExpiradas() {
	log.Println("🔄 Ejecutando limpieza de sesiones expiradas...")

	eliminadas := s.sesiones.LimpiarExpiradas()
	if eliminadas > 0 {
		log.Printf("✅ %d sesiones expiradas eliminadas, %d activas", eliminadas, s.sesiones.Cantidad())
	} else {
		log.Println("✅ Sin sesiones expiradas")
	}
}
