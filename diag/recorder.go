package diag

import (
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const (
	recorderQueue     = 1024
	recorderBatch     = 50
	recorderFlushTick = 2 * time.Second
)

// Recorder stores snapshots in a SQLite database with batched background
// writes. Each Recorder tags its rows with a fresh run id.
type Recorder struct {
	conn  *sql.DB
	runID string
	log   logrus.FieldLogger

	rows   chan snapshotRow
	stop   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

type snapshotRow struct {
	snap Snapshot
	at   time.Time
}

// OpenRecorder opens (or creates) the database at path and starts the writer
func OpenRecorder(path string, log logrus.FieldLogger) (*Recorder, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases usable
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, err
	}

	r := &Recorder{
		conn:  conn,
		runID: uuid.NewString(),
		log:   log.WithField("component", "recorder"),
		rows:  make(chan snapshotRow, recorderQueue),
		stop:  make(chan struct{}),
	}
	if err := r.migrate(); err != nil {
		conn.Close()
		return nil, err
	}

	r.wg.Add(1)
	go r.writer()
	return r, nil
}

// RunID returns the id tagging this recorder's rows
func (r *Recorder) RunID() string { return r.runID }

func (r *Recorder) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		tick INTEGER NOT NULL,
		flags INTEGER NOT NULL,
		fps INTEGER,
		level TEXT,
		objects INTEGER NOT NULL DEFAULT 0,
		x REAL,
		y REAL,
		speed_x REAL,
		speed_y REAL,
		dir_x REAL,
		dir_y REAL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_run ON snapshots(run_id, tick);
	`
	_, err := r.conn.Exec(schema)
	if err != nil {
		r.log.WithError(err).Error("migration failed")
	}
	return err
}

// Report implements Sink. It never blocks: snapshots are dropped when the
// queue is full or the recorder is closed.
func (r *Recorder) Report(s Snapshot) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.log.WithField("tick", s.Tick).Warn("recorder closed, dropping snapshot")
		return
	}

	select {
	case r.rows <- snapshotRow{snap: s, at: time.Now().UTC()}:
	default:
		r.log.WithField("tick", s.Tick).Warn("queue full, dropping snapshot")
	}
}

// Close flushes pending snapshots and closes the database
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.once.Do(func() { close(r.stop) })
	r.wg.Wait()
	return r.conn.Close()
}

// writer batches queued snapshots into the database
func (r *Recorder) writer() {
	defer r.wg.Done()

	batch := make([]snapshotRow, 0, recorderBatch)
	ticker := time.NewTicker(recorderFlushTick)
	defer ticker.Stop()

	for {
		select {
		case row := <-r.rows:
			batch = append(batch, row)
			if len(batch) >= recorderBatch {
				r.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.flush(batch)
				batch = batch[:0]
			}
		case <-r.stop:
			// Drain whatever is still queued
			for {
				select {
				case row := <-r.rows:
					batch = append(batch, row)
				default:
					if len(batch) > 0 {
						r.flush(batch)
					}
					return
				}
			}
		}
	}
}

func (r *Recorder) flush(rows []snapshotRow) {
	tx, err := r.conn.Begin()
	if err != nil {
		r.log.WithError(err).Error("begin tx")
		return
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO snapshots
		(run_id, tick, flags, fps, level, objects, x, y, speed_x, speed_y, dir_x, dir_y, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		r.log.WithError(err).Error("prepare insert")
		return
	}
	defer stmt.Close()

	for _, row := range rows {
		s := row.snap
		fps := sql.NullInt64{Int64: int64(s.FPS), Valid: s.Flags.Has(PerformanceInfo)}
		level := sql.NullString{String: s.Level, Valid: s.Flags.Has(LevelInfo)}
		var x, y, sx, sy, dx, dy sql.NullFloat64
		if s.Player != nil {
			x = sql.NullFloat64{Float64: s.Player.X, Valid: true}
			y = sql.NullFloat64{Float64: s.Player.Y, Valid: true}
			sx = sql.NullFloat64{Float64: s.Player.SpeedX, Valid: true}
			sy = sql.NullFloat64{Float64: s.Player.SpeedY, Valid: true}
			dx = sql.NullFloat64{Float64: s.Player.DirX, Valid: true}
			dy = sql.NullFloat64{Float64: s.Player.DirY, Valid: true}
		}
		_, err := stmt.Exec(r.runID, int64(s.Tick), int64(s.Flags), fps, level, s.Objects,
			x, y, sx, sy, dx, dy, row.at.Format(time.RFC3339))
		if err != nil {
			r.log.WithError(err).Error("insert snapshot")
		}
	}
	if err := tx.Commit(); err != nil {
		r.log.WithError(err).Error("commit snapshots")
	}
}

// RecordedRun is a summary of one run stored in the database
type RecordedRun struct {
	RunID     string
	Snapshots int
	LastTick  uint64
}

// Runs summarises every run stored in the recorder's database
func (r *Recorder) Runs() ([]RecordedRun, error) {
	rows, err := r.conn.Query(`
		SELECT run_id, COUNT(*), MAX(tick) FROM snapshots
		GROUP BY run_id ORDER BY MIN(id)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecordedRun
	for rows.Next() {
		var run RecordedRun
		var last int64
		if err := rows.Scan(&run.RunID, &run.Snapshots, &last); err != nil {
			return nil, err
		}
		run.LastTick = uint64(last)
		out = append(out, run)
	}
	return out, rows.Err()
}
