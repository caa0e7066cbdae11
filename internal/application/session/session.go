// Package session mantiene el estado en memoria de cada tenant y lo sincroniza con el
// almacén de colecciones: guardado diferido (debounce) de las colecciones modificadas,
// recarga periódica y estado de sincronización visible para la interfaz.
package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/tienda-ledger/internal/domain/entity"
	"github.com/jhoicas/tienda-ledger/internal/domain/ledger"
	"github.com/jhoicas/tienda-ledger/internal/domain/repository"
	"github.com/jhoicas/tienda-ledger/pkg/logger"
)

// State estado de sincronización de una sesión.
type State string

const (
	StateSynced  State = "synced"  // sin cambios pendientes
	StatePending State = "pending" // hay cambios esperando la ventana de silencio
	StateSaving  State = "saving"  // guardado en curso
	StateError   State = "error"   // el último guardado falló; los cambios siguen pendientes
)

// Status foto del estado de sincronización.
type Status struct {
	State         State      `json:"state"`
	LastSavedAt   *time.Time `json:"lastSavedAt,omitempty"`
	LastFetchedAt *time.Time `json:"lastFetchedAt,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
	DirtyKeys     []string   `json:"dirtyKeys"`
}

// Options tiempos de sincronización.
type Options struct {
	Debounce        time.Duration
	RefetchInterval time.Duration
	Timeout         time.Duration
	LedgerOptions   []ledger.Option
}

// Session estado de un tenant. Todas las operaciones del ledger pasan por el mutex de la
// sesión; el guardado y la recarga trabajan sobre copias.
type Session struct {
	ownerID string
	store   repository.CollectionStore
	opts    Options
	log     *logger.Logger

	saveMu sync.Mutex // serializa guardados y recargas contra el almacén

	mu     sync.Mutex
	ledger *ledger.Ledger
	dirty  map[string]bool
	timer  *time.Timer
	closed bool
	status Status
}

func newSession(ownerID string, store repository.CollectionStore, snap entity.Snapshot, opts Options, log *logger.Logger) *Session {
	now := time.Now()
	return &Session{
		ownerID: ownerID,
		store:   store,
		opts:    opts,
		log:     log.ForOwner(ownerID),
		ledger:  ledger.New(snap, opts.LedgerOptions...),
		dirty:   map[string]bool{},
		status:  Status{State: StateSynced, LastFetchedAt: &now},
	}
}

// OwnerID tenant de la sesión.
func (s *Session) OwnerID() string {
	return s.ownerID
}

// Mutate ejecuta un comando del ledger. Si tiene éxito, las colecciones que cambió quedan
// pendientes de guardado y se reinicia la ventana de silencio.
func (s *Session) Mutate(fn func(l *ledger.Ledger) (ledger.Result, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := fn(s.ledger)
	if err != nil {
		return err
	}
	if len(res.Changed) == 0 {
		return nil
	}
	for _, k := range res.Changed {
		s.dirty[k] = true
	}
	if s.status.State == StateSynced {
		s.status.State = StatePending
	}
	s.scheduleLocked()
	return nil
}

// Read ejecuta una consulta sobre el ledger bajo el mutex de la sesión.
func (s *Session) Read(fn func(l *ledger.Ledger)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ledger)
}

func (s *Session) scheduleLocked() {
	if s.closed {
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.opts.Debounce, s.flushInBackground)
		return
	}
	s.timer.Reset(s.opts.Debounce)
}

func (s *Session) flushInBackground() {
	// El error ya queda en Status y en el log.
	_ = s.Flush(context.Background())
}

// Flush guarda ya todas las colecciones pendientes con un único SaveMany.
// Un fallo deja las claves pendientes y el estado en error; el estado en memoria sigue mandando.
func (s *Session) Flush(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if len(s.dirty) == 0 {
		s.mu.Unlock()
		return nil
	}
	keys := sortedKeys(s.dirty)
	values, err := EncodeSnapshot(s.ledger.Snapshot(), keys)
	if err != nil {
		s.failLocked(err)
		s.mu.Unlock()
		return err
	}
	s.dirty = map[string]bool{}
	s.status.State = StateSaving
	s.mu.Unlock()

	saveCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	err = s.store.SaveMany(saveCtx, s.ownerID, values)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		for _, k := range keys {
			s.dirty[k] = true
		}
		s.failLocked(err)
		s.log.Warn().Err(err).Strs("keys", keys).Msg("guardado de colecciones fallido")
		return err
	}
	now := time.Now()
	s.status.LastSavedAt = &now
	s.status.LastError = ""
	if len(s.dirty) == 0 {
		s.status.State = StateSynced
	} else {
		s.status.State = StatePending
		s.scheduleLocked()
	}
	s.log.Debug().Strs("keys", keys).Msg("colecciones guardadas")
	return nil
}

func (s *Session) failLocked(err error) {
	s.status.State = StateError
	s.status.LastError = err.Error()
}

// Refetch recarga todas las colecciones del almacén y reemplaza el estado local
// (last-write-wins). Los cambios locales aún no guardados se descartan.
func (s *Session) Refetch(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	loadCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	snap, err := loadSnapshot(loadCtx, s.store, s.ownerID)
	if err != nil {
		s.log.Warn().Err(err).Msg("recarga de colecciones fallida")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.dirty) > 0 {
		s.log.Warn().Strs("keys", sortedKeys(s.dirty)).Msg("recarga descarta cambios locales sin guardar")
		s.dirty = map[string]bool{}
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.ledger.Replace(snap)
	now := time.Now()
	s.status.LastFetchedAt = &now
	s.status.State = StateSynced
	s.status.LastError = ""
	return nil
}

// Status estado de sincronización actual.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.status
	out.DirtyKeys = sortedKeys(s.dirty)
	return out
}

// close detiene el temporizador y guarda lo pendiente.
func (s *Session) close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	if err := s.Flush(ctx); err != nil {
		return fmt.Errorf("sesión %s: %w", s.ownerID, err)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
