package sqlite

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"voice-blog/internal/app/model"
	"voice-blog/internal/app/util/files"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS step_runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	folder TEXT NOT NULL,
	step INTEGER NOT NULL,
	step_name TEXT NOT NULL,
	status TEXT NOT NULL,
	output_path TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	error_kind TEXT NOT NULL DEFAULT '',
	error_message TEXT NOT NULL DEFAULT '',
	started_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_step_runs_folder ON step_runs(folder);
CREATE INDEX IF NOT EXISTS idx_step_runs_run_id ON step_runs(run_id);
`

type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens (creating if needed) the history database at
// dbFilePath and ensures the schema exists.
func NewSQLiteDB(dbFilePath string) (*SQLiteDB, error) {
	if err := files.EnsureDir(filepath.Dir(dbFilePath)); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?cache=shared&mode=rwc", dbFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &SQLiteDB{db: db}, nil
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) RecordStepRun(run model.StepRun) error {
	insertSQL := `INSERT INTO step_runs (run_id, folder, step, step_name, status, output_path, duration_ms, error_kind, error_message, started_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, run.RunID, run.Folder, run.Step, run.StepName, run.Status,
		run.OutputPath, run.DurationMS, run.ErrorKind, run.ErrorMessage, run.StartedAt)
	if err != nil {
		return fmt.Errorf("failed to insert step run: %w", err)
	}
	return nil
}

func (sdb *SQLiteDB) GetByFolder(folder string) ([]model.StepRun, error) {
	sqlStr := `
		SELECT id, run_id, folder, step, step_name, status, output_path, duration_ms, error_kind, error_message, started_at
		FROM step_runs
		WHERE folder = ?
		ORDER BY started_at DESC, step ASC;`
	rows, err := sdb.db.Query(sqlStr, folder)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanStepRuns(rows)
}

func (sdb *SQLiteDB) GetAll() ([]model.StepRun, error) {
	sqlStr := `
		SELECT id, run_id, folder, step, step_name, status, output_path, duration_ms, error_kind, error_message, started_at
		FROM step_runs
		ORDER BY started_at DESC, folder ASC, step ASC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	return scanStepRuns(rows)
}

func scanStepRuns(rows *sql.Rows) ([]model.StepRun, error) {
	runs := make([]model.StepRun, 0)
	for rows.Next() {
		var r model.StepRun
		err := rows.Scan(&r.ID, &r.RunID, &r.Folder, &r.Step, &r.StepName, &r.Status,
			&r.OutputPath, &r.DurationMS, &r.ErrorKind, &r.ErrorMessage, &r.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return runs, nil
}
