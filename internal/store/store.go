// Package store persists sweep runs in SQLite so parameter studies can
// be compared after the fact. Undefined quantities are stored as NULL
// and come back undefined, never as a placeholder number.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	lqg "github.com/arnavk23/LQG-Analysis"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	gamma      REAL NOT NULL,
	lambda     REAL NOT NULL,
	r_min      REAL NOT NULL,
	r_max      REAL NOT NULL,
	points     INTEGER NOT NULL,
	samples    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS samples (
	run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	r      REAL NOT NULL,
	t      REAL NOT NULL,
	p      REAL NOT NULL,
	v      REAL NOT NULL,
	s      REAL NOT NULL,
	m      REAL,
	g      REAL,
	cp     REAL
);

CREATE INDEX IF NOT EXISTS samples_run_r ON samples(run_id, r);
`

// Run is the stored metadata of one sweep.
type Run struct {
	ID        string  `db:"id" json:"id"`
	CreatedAt string  `db:"created_at" json:"created_at"` // RFC 3339 UTC
	Gamma     float64 `db:"gamma" json:"gamma"`
	Lambda    float64 `db:"lambda" json:"lambda"`
	RMin      float64 `db:"r_min" json:"r_min"`
	RMax      float64 `db:"r_max" json:"r_max"`
	Points    int     `db:"points" json:"points"`
	Samples   int     `db:"samples" json:"samples"`
}

// NewRun stamps a fresh run for the given sweep.
func NewRun(cfg lqg.SweepConfig) Run {
	return Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Gamma:     cfg.Params.Gamma,
		Lambda:    cfg.Params.Lambda,
		RMin:      cfg.RMin,
		RMax:      cfg.RMax,
		Points:    cfg.Points,
	}
}

type sampleRow struct {
	RunID string          `db:"run_id"`
	R     float64         `db:"r"`
	T     float64         `db:"t"`
	P     float64         `db:"p"`
	V     float64         `db:"v"`
	S     float64         `db:"s"`
	M     sql.NullFloat64 `db:"m"`
	G     sql.NullFloat64 `db:"g"`
	Cp    sql.NullFloat64 `db:"cp"`
}

func toNull(q lqg.Quantity) sql.NullFloat64 {
	return sql.NullFloat64{Float64: q.Value, Valid: q.Defined}
}

func fromNull(n sql.NullFloat64) lqg.Quantity {
	if !n.Valid {
		return lqg.Quantity{}
	}
	return lqg.Quantity{Value: n.Float64, Defined: true}
}

// Store wraps the SQLite handle.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun writes the run and its samples in one transaction. The
// run's sample count is set from the slice.
func (s *Store) SaveRun(run Run, samples []lqg.ThermoSample) error {
	run.Samples = len(samples)

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		INSERT INTO runs (id, created_at, gamma, lambda, r_min, r_max, points, samples)
		VALUES (:id, :created_at, :gamma, :lambda, :r_min, :r_max, :points, :samples)`, run)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	for _, sm := range samples {
		row := sampleRow{
			RunID: run.ID,
			R:     sm.R,
			T:     sm.T,
			P:     sm.P,
			V:     sm.V,
			S:     sm.S,
			M:     toNull(sm.M),
			G:     toNull(sm.G),
			Cp:    toNull(sm.Cp),
		}
		_, err = tx.NamedExec(`
			INSERT INTO samples (run_id, r, t, p, v, s, m, g, cp)
			VALUES (:run_id, :r, :t, :p, :v, :s, :m, :g, :cp)`, row)
		if err != nil {
			return fmt.Errorf("insert sample r=%g: %w", sm.R, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", run.ID, err)
	}
	return nil
}

// LoadRun returns the run and its samples ordered by radius.
func (s *Store) LoadRun(id string) (Run, []lqg.ThermoSample, error) {
	var run Run
	if err := s.db.Get(&run, `SELECT * FROM runs WHERE id = ?`, id); err != nil {
		return Run{}, nil, fmt.Errorf("load run %s: %w", id, err)
	}

	var rows []sampleRow
	err := s.db.Select(&rows, `
		SELECT run_id, r, t, p, v, s, m, g, cp
		FROM samples WHERE run_id = ? ORDER BY r`, id)
	if err != nil {
		return Run{}, nil, fmt.Errorf("load samples for %s: %w", id, err)
	}

	samples := make([]lqg.ThermoSample, len(rows))
	for i, row := range rows {
		samples[i] = lqg.ThermoSample{
			R:  row.R,
			T:  row.T,
			P:  row.P,
			V:  row.V,
			S:  row.S,
			M:  fromNull(row.M),
			G:  fromNull(row.G),
			Cp: fromNull(row.Cp),
		}
	}
	return run, samples, nil
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns() ([]Run, error) {
	var runs []Run
	if err := s.db.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC, id`); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}
