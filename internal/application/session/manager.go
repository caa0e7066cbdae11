package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
	"github.com/jhoicas/tienda-ledger/pkg/logger"
)

// Manager mantiene una sesión por tenant, creada al primer uso, y programa la recarga periódica.
type Manager struct {
	store repository.CollectionStore
	opts  Options
	log   *logger.Logger

	mu        sync.Mutex
	sessions  map[string]*Session
	scheduler *gocron.Scheduler
}

// NewManager construye el manager; Start activa la recarga periódica.
func NewManager(store repository.CollectionStore, opts Options, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{store: store, opts: opts, log: log, sessions: map[string]*Session{}}
}

// Session devuelve la sesión del tenant, cargando sus colecciones si es la primera vez.
func (m *Manager) Session(ctx context.Context, ownerID string) (*Session, error) {
	if ownerID == "" {
		return nil, errors.New("session: owner id vacío")
	}
	m.mu.Lock()
	s, ok := m.sessions[ownerID]
	m.mu.Unlock()
	if ok {
		return s, nil
	}

	loadCtx, cancel := context.WithTimeout(ctx, m.opts.Timeout)
	defer cancel()
	snap, err := loadSnapshot(loadCtx, m.store, ownerID)
	if err != nil {
		return nil, fmt.Errorf("cargar colecciones de %s: %w", ownerID, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[ownerID]; ok {
		return s, nil
	}
	s = newSession(ownerID, m.store, snap, m.opts, m.log)
	m.sessions[ownerID] = s
	m.log.Info().Str("owner_id", ownerID).Msg("sesión cargada")
	return s, nil
}

// Start programa la recarga de todas las sesiones cada RefetchInterval.
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scheduler != nil {
		return nil
	}
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	if _, err := s.Every(m.opts.RefetchInterval).WaitForSchedule().Do(m.RefetchAll); err != nil {
		return fmt.Errorf("programar recarga: %w", err)
	}
	s.StartAsync()
	m.scheduler = s
	return nil
}

// RefetchAll recarga cada sesión abierta. Los errores quedan en el log.
func (m *Manager) RefetchAll() {
	for _, s := range m.snapshotSessions() {
		_ = s.Refetch(context.Background())
	}
}

// Close detiene la recarga y guarda lo pendiente de todas las sesiones.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	if m.scheduler != nil {
		m.scheduler.Stop()
		m.scheduler = nil
	}
	m.mu.Unlock()

	var errs []error
	for _, s := range m.snapshotSessions() {
		if err := s.close(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Manager) snapshotSessions() []*Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
