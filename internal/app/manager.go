// Package app manages recognition sessions: one recognizer per tracked hand,
// frame processing, event recording, and result fan-out.
package app

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/landmark"
	"github.com/ayusman/mudra/internal/motion"
	"github.com/ayusman/mudra/internal/recognizer"
	"github.com/ayusman/mudra/internal/store"
)

// ErrSessionNotFound is returned for operations on unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// session pairs a recognizer with the mutex that serializes its frames.
// Frames within one session are strictly sequential; independent sessions
// process concurrently without sharing state.
type session struct {
	id  string
	rec *recognizer.Recognizer
	mu  sync.Mutex
}

// Manager owns all live recognition sessions.
type Manager struct {
	store    *store.Store
	mu       sync.RWMutex
	sessions map[string]*session
	onResult func(sessionID string, res recognizer.Result)
}

// NewManager creates a Manager. The store is optional; without it results
// are not persisted.
func NewManager(st *store.Store) *Manager {
	return &Manager{
		store:    st,
		sessions: make(map[string]*session),
	}
}

// OnResult registers a callback invoked after every processed frame,
// recognized or not. Used by the server to broadcast results.
func (m *Manager) OnResult(fn func(sessionID string, res recognizer.Result)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onResult = fn
}

// CreateSession starts a new tracked-hand session and returns its ID.
func (m *Manager) CreateSession(label string) (string, error) {
	id := uuid.New().String()

	if m.store != nil {
		if err := m.store.Sessions().Create(&store.Session{ID: id, Label: label}); err != nil {
			return "", err
		}
	}

	m.mu.Lock()
	m.sessions[id] = &session{id: id, rec: recognizer.New()}
	m.mu.Unlock()

	return id, nil
}

func (m *Manager) lookup(id string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// ProcessFrame runs one frame of a session through the recognizer, records
// the outcome, and notifies the result callback.
func (m *Manager) ProcessFrame(id string, rect landmark.Rect, set landmark.Set) (recognizer.Result, error) {
	s, err := m.lookup(id)
	if err != nil {
		return recognizer.Result{}, err
	}

	s.mu.Lock()
	res, err := s.rec.Process(rect, set)
	s.mu.Unlock()
	if err != nil {
		return res, err
	}

	m.record(id, res)

	m.mu.RLock()
	fn := m.onResult
	m.mu.RUnlock()
	if fn != nil {
		fn(id, res)
	}

	return res, nil
}

// record persists frames that recognized something. Fully sentinel frames
// are skipped to keep the event log at signal rather than camera rate.
func (m *Manager) record(id string, res recognizer.Result) {
	if m.store == nil {
		return
	}
	if res.Gesture == gesture.None &&
		res.Scroll == motion.ScrollNone &&
		res.Zoom == motion.ZoomNone &&
		res.Slide == motion.SlideNone {
		return
	}

	ev := &store.Event{
		ID:        uuid.New().String(),
		SessionID: id,
		Gesture:   string(res.Gesture),
		Scroll:    string(res.Scroll),
		Zoom:      string(res.Zoom),
		Slide:     string(res.Slide),
	}
	if err := m.store.Events().Create(ev); err != nil {
		log.Printf("Failed to record event for session %s: %v", id, err)
	}
}

// ResetSession clears a session's movement history, starting it fresh.
func (m *Manager) ResetSession(id string) error {
	s, err := m.lookup(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.rec.Reset()
	s.mu.Unlock()
	return nil
}

// RemoveSession drops a live session and its stored rows.
func (m *Manager) RemoveSession(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	if m.store != nil {
		if err := m.store.Sessions().Delete(id); err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
	}
	return nil
}

// Sessions returns the IDs of all live sessions.
func (m *Manager) Sessions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Events returns the recorded events of a session, newest first.
func (m *Manager) Events(id string, limit int) ([]store.Event, error) {
	if _, err := m.lookup(id); err != nil {
		return nil, err
	}
	if m.store == nil {
		return nil, nil
	}
	return m.store.Events().ListBySession(id, limit)
}
