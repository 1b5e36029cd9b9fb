package store

import (
	"database/sql"
	"time"
)

// Event represents one recognized frame recorded for a session.
type Event struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Gesture   string    `json:"gesture"`
	Scroll    string    `json:"scroll"`
	Zoom      string    `json:"zoom"`
	Slide     string    `json:"slide"`
	CreatedAt time.Time `json:"created_at"`
}

// EventRepository provides operations for recognition events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Create inserts a new event into the database.
func (r *EventRepository) Create(e *Event) error {
	e.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO events (id, session_id, gesture, scroll, zoom, slide, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SessionID, e.Gesture, e.Scroll, e.Zoom, e.Slide, e.CreatedAt,
	)
	return err
}

// ListBySession retrieves the most recent events for a session, newest first.
// A limit of 0 or less returns all events.
func (r *EventRepository) ListBySession(sessionID string, limit int) ([]Event, error) {
	query := `SELECT id, session_id, gesture, scroll, zoom, slide, created_at
		 FROM events WHERE session_id = ? ORDER BY created_at DESC`
	args := []any{sessionID}

	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Gesture, &e.Scroll, &e.Zoom, &e.Slide, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountBySession returns the number of events recorded for a session.
func (r *EventRepository) CountBySession(sessionID string) (int, error) {
	var n int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM events WHERE session_id = ?`,
		sessionID,
	).Scan(&n)
	return n, err
}
