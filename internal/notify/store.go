package notify

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Channel describes a notification channel registered with the platform
// store, mirroring channel-based notification systems.
type Channel struct {
	ID         string
	Name       string
	Importance string
	Vibration  string // comma-separated on/off millisecond pattern
	Color      string // tint color, hex
	Banner     bool
	Sound      bool
	Badge      bool
}

// Store is the platform's notification store: a sqlite database holding
// scheduled notifications, registered channels and permission decisions. It
// is the single source of truth; the app keeps no in-memory cache of
// scheduled notification ids.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create notification store directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open notification store: %w", err)
	}
	// sqlite allows a single writer at a time and the scheduler submits its
	// whole window on concurrent goroutines; funnel everything through one
	// connection so those inserts queue instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	s.db = db

	if _, err := db.Exec(`PRAGMA busy_timeout = 10000`); err != nil {
		db.Close()
		s.db = nil
		return fmt.Errorf("failed to configure notification store: %w", err)
	}

	if err := s.ensureSchema(); err != nil {
		s.db.Close()
		s.db = nil
		return fmt.Errorf("failed to prepare notification store: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS scheduled_notifications (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			trigger_at TEXT NOT NULL,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			day_count INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			delivered_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scheduled_kind ON scheduled_notifications(kind)`,
		`CREATE TABLE IF NOT EXISTS channels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			importance TEXT NOT NULL,
			vibration TEXT,
			color TEXT,
			banner INTEGER NOT NULL,
			sound INTEGER NOT NULL,
			badge INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS permissions (
			scope TEXT PRIMARY KEY,
			granted INTEGER NOT NULL,
			decided_at TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// RegisterChannel creates or replaces a channel registration.
func (s *Store) RegisterChannel(ch Channel) error {
	_, err := s.db.Exec(`INSERT INTO channels (id, name, importance, vibration, color, banner, sound, badge)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			importance = excluded.importance,
			vibration = excluded.vibration,
			color = excluded.color,
			banner = excluded.banner,
			sound = excluded.sound,
			badge = excluded.badge`,
		ch.ID, ch.Name, ch.Importance, ch.Vibration, ch.Color,
		boolToInt(ch.Banner), boolToInt(ch.Sound), boolToInt(ch.Badge))
	if err != nil {
		return fmt.Errorf("failed to register channel %s: %w", ch.ID, err)
	}
	return nil
}

// Schedule inserts one scheduled notification. The trigger instant is
// normalized to UTC so RFC3339 strings compare and sort chronologically
// regardless of the local offset at scheduling time.
func (s *Store) Schedule(n Notification) error {
	_, err := s.db.Exec(`INSERT INTO scheduled_notifications
		(id, kind, trigger_at, title, body, day_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.Kind, n.TriggerAt.UTC().Format(time.RFC3339), n.Title, n.Body, n.DayCount,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to schedule notification: %w", err)
	}
	return nil
}

// Pending returns the undelivered notifications of the given kind ordered by
// trigger instant. An empty kind returns all undelivered notifications.
func (s *Store) Pending(kind string) ([]Notification, error) {
	query := `SELECT id, kind, trigger_at, title, body, day_count
		FROM scheduled_notifications WHERE delivered_at IS NULL`
	args := []any{}
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY trigger_at`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// Due returns the undelivered notifications whose trigger instant is at or
// before now.
func (s *Store) Due(now time.Time) ([]Notification, error) {
	rows, err := s.db.Query(`SELECT id, kind, trigger_at, title, body, day_count
		FROM scheduled_notifications
		WHERE delivered_at IS NULL AND trigger_at <= ?
		ORDER BY trigger_at`,
		now.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to list due notifications: %w", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// Cancel removes one scheduled notification by id.
func (s *Store) Cancel(id string) error {
	_, err := s.db.Exec(`DELETE FROM scheduled_notifications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to cancel notification %s: %w", id, err)
	}
	return nil
}

// MarkDelivered records that a notification was handed to the delivery
// agent.
func (s *Store) MarkDelivered(id string, at time.Time) error {
	_, err := s.db.Exec(`UPDATE scheduled_notifications SET delivered_at = ? WHERE id = ?`,
		at.UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s delivered: %w", id, err)
	}
	return nil
}

// PermissionGranted reports whether a grant has been recorded for the scope.
func (s *Store) PermissionGranted(scope string) (bool, error) {
	var granted int
	err := s.db.QueryRow(`SELECT granted FROM permissions WHERE scope = ?`, scope).Scan(&granted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read permission %s: %w", scope, err)
	}
	return granted != 0, nil
}

// GrantPermission records a permission grant for the scope. Denials are not
// persisted; a later request may still succeed.
func (s *Store) GrantPermission(scope string) error {
	_, err := s.db.Exec(`INSERT INTO permissions (scope, granted, decided_at) VALUES (?, 1, ?)
		ON CONFLICT(scope) DO UPDATE SET granted = 1, decided_at = excluded.decided_at`,
		scope, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record permission %s: %w", scope, err)
	}
	return nil
}

func scanNotifications(rows *sql.Rows) ([]Notification, error) {
	var notifications []Notification
	for rows.Next() {
		var n Notification
		var triggerAt string
		if err := rows.Scan(&n.ID, &n.Kind, &triggerAt, &n.Title, &n.Body, &n.DayCount); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		t, err := time.Parse(time.RFC3339, triggerAt)
		if err != nil {
			return nil, fmt.Errorf("invalid trigger timestamp %q: %w", triggerAt, err)
		}
		n.TriggerAt = t
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
