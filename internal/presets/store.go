package presets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"discdump/internal/execctx"
	"discdump/internal/logging"
	"discdump/internal/programs"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
	lockRetryDelay          = 25 * time.Millisecond
	lockTimeout             = 2 * time.Second
)

// Store manages preset persistence backed by SQLite.
type Store struct {
	db       *sql.DB
	path     string
	lock     *flock.Flock
	registry *programs.Registry
	logger   *slog.Logger
	now      func() time.Time
}

// Open initializes or connects to the preset database at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create preset directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:       db,
		path:     path,
		lock:     flock.New(path + ".lock"),
		registry: programs.NewRegistry(logger),
		logger:   logging.NewComponentLogger(logger, "presets"),
		now:      time.Now,
	}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Save parses params with program's grammar and stores the regenerated
// string under name, replacing any preset with the same program and name.
func (s *Store) Save(ctx context.Context, program execctx.Program, name, params, description string) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, ErrInvalidName
	}
	parsed, err := s.registry.Parse(program, params)
	if err != nil {
		return Preset{}, err
	}
	if err := parsed.Validate(); err != nil {
		return Preset{}, fmt.Errorf("validate parameters: %w", err)
	}
	normalized := parsed.Generate()

	unlock, err := s.acquire(ctx)
	if err != nil {
		return Preset{}, err
	}
	defer unlock()

	now := s.now().UTC()
	preset := Preset{
		Program:     program,
		Name:        name,
		Parameters:  normalized,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	existing, err := s.Get(ctx, program, name)
	switch {
	case err == nil:
		preset.ID = existing.ID
		preset.CreatedAt = existing.CreatedAt
		err = s.execWithoutResultRetry(ctx,
			"UPDATE presets SET parameters = ?, description = ?, updated_at = ? WHERE id = ?",
			preset.Parameters, preset.Description, formatTime(now), preset.ID)
	case errors.Is(err, ErrNotFound):
		preset.ID = uuid.NewString()
		err = s.execWithoutResultRetry(ctx,
			`INSERT INTO presets (id, program, name, parameters, description, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			preset.ID, string(program), name, preset.Parameters, preset.Description,
			formatTime(now), formatTime(now))
	}
	if err != nil {
		return Preset{}, fmt.Errorf("save preset %s: %w", name, err)
	}

	s.logger.Info("preset saved",
		logging.String(logging.FieldPreset, name),
		logging.String(logging.FieldProgram, string(program)),
		logging.Bool("normalized", normalized != strings.TrimSpace(params)),
	)
	return preset, nil
}

// Get returns the preset stored for program and name.
func (s *Store) Get(ctx context.Context, program execctx.Program, name string) (Preset, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, program, name, parameters, description, created_at, updated_at
		 FROM presets WHERE program = ? AND name = ?`,
		string(program), strings.TrimSpace(name))
	preset, err := scanPreset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, fmt.Errorf("%w: %s/%s", ErrNotFound, program, name)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("load preset %s: %w", name, err)
	}
	return preset, nil
}

// List returns presets ordered by program and name. An empty program lists
// every preset.
func (s *Store) List(ctx context.Context, program execctx.Program) ([]Preset, error) {
	query := `SELECT id, program, name, parameters, description, created_at, updated_at FROM presets`
	var args []any
	if program != "" {
		query += " WHERE program = ?"
		args = append(args, string(program))
	}
	query += " ORDER BY program, name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	defer rows.Close()

	var out []Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan preset: %w", err)
		}
		out = append(out, preset)
	}
	return out, rows.Err()
}

// Delete removes the preset stored for program and name.
func (s *Store) Delete(ctx context.Context, program execctx.Program, name string) error {
	unlock, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	res, err := s.execWithRetry(ctx, "DELETE FROM presets WHERE program = ? AND name = ?",
		string(program), strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete preset %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, program, name)
	}
	s.logger.Info("preset deleted",
		logging.String(logging.FieldPreset, name),
		logging.String(logging.FieldProgram, string(program)),
	)
	return nil
}

// Context parses a stored preset back into an execution context.
func (s *Store) Context(preset Preset) (execctx.Context, error) {
	return s.registry.Parse(preset.Program, preset.Parameters)
}

func (s *Store) acquire(ctx context.Context) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	ok, err := s.lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("lock preset database: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return func() { _ = s.lock.Unlock() }, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (Preset, error) {
	var (
		p                Preset
		program          string
		created, updated string
	)
	if err := row.Scan(&p.ID, &program, &p.Name, &p.Parameters, &p.Description, &created, &updated); err != nil {
		return Preset{}, err
	}
	p.Program = execctx.Program(program)
	p.CreatedAt = parseTime(created)
	p.UpdatedAt = parseTime(updated)
	return p, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
