// Package store persists completed assessments to SQLite. One row per
// diagnostic run: the raw input, the result envelope, and the rendered
// report markdown, all as JSON/text columns.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Valid assessment modes. The store rejects anything else on save.
const (
	ModeFlashScan = "flash_scan"
	ModeFullAudit = "full_audit"
	ModeApexAudit = "apex_audit"
	ModeFramework = "framework"
)

var validModes = map[string]bool{
	ModeFlashScan: true,
	ModeFullAudit: true,
	ModeApexAudit: true,
	ModeFramework: true,
}

type Assessment struct {
	ID             string          `db:"assessment_id" json:"assessment_id"`
	Mode           string          `db:"mode" json:"mode"`
	BusinessName   string          `db:"business_name" json:"business_name,omitempty"`
	Input          json.RawMessage `db:"input" json:"input"`
	Result         json.RawMessage `db:"result" json:"result"`
	ReportMarkdown string          `db:"report_markdown" json:"report_markdown,omitempty"`
	CreatedAt      time.Time       `db:"-" json:"created_at"`

	// CreatedAtRaw is the RFC3339 text column; CreatedAt is derived on load.
	CreatedAtRaw string `db:"created_at" json:"-"`
}

type ListFilter struct {
	Mode  string
	Limit int
}

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	assessment_id   TEXT PRIMARY KEY,
	mode            TEXT NOT NULL,
	business_name   TEXT NOT NULL DEFAULT '',
	input           TEXT NOT NULL DEFAULT '{}',
	result          TEXT NOT NULL DEFAULT '{}',
	report_markdown TEXT NOT NULL DEFAULT '',
	created_at      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_mode ON assessments (mode, created_at);

CREATE TABLE IF NOT EXISTS counters (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL DEFAULT 0
);
`

// SQLiteStore is safe for concurrent use. SQLite runs with a single open
// connection and WAL mode, matching its writer model.
type SQLiteStore struct {
	db     *sqlx.DB
	mu     sync.Mutex
	nextID int64
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.loadCounter(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load counter: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) loadCounter() error {
	row := s.db.QueryRow("SELECT value FROM counters WHERE key = 'next_assessment_id'")
	if err := row.Scan(&s.nextID); err != nil {
		s.nextID = 1
	}
	if s.nextID < 1 {
		s.nextID = 1
	}
	return nil
}

// SaveAssessment assigns the ID and timestamp and persists the row.
func (s *SQLiteStore) SaveAssessment(a *Assessment) error {
	if !validModes[a.Mode] {
		return fmt.Errorf("unknown assessment mode %q", a.Mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = fmt.Sprintf("asm-%06d", s.nextID)
	a.CreatedAt = time.Now().UTC()
	a.CreatedAtRaw = a.CreatedAt.Format(time.RFC3339Nano)
	if a.Input == nil {
		a.Input = json.RawMessage("{}")
	}
	if a.Result == nil {
		a.Result = json.RawMessage("{}")
	}

	if _, err := s.db.Exec(`INSERT INTO assessments (assessment_id, mode, business_name, input, result, report_markdown, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Mode, a.BusinessName, string(a.Input), string(a.Result), a.ReportMarkdown, a.CreatedAtRaw,
	); err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}

	s.nextID++
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO counters (key, value) VALUES ('next_assessment_id', ?)`, s.nextID); err != nil {
		return fmt.Errorf("save counter: %w", err)
	}
	return nil
}

// GetAssessment returns (nil, nil) when the ID does not exist.
func (s *SQLiteStore) GetAssessment(id string) (*Assessment, error) {
	var a Assessment
	// CAST the JSON columns to BLOB so the driver returns []byte; the
	// modernc driver returns TEXT as string, which database/sql cannot
	// scan into json.RawMessage.
	err := s.db.Get(&a, `SELECT assessment_id, mode, business_name, CAST(input AS BLOB) AS input, CAST(result AS BLOB) AS result, report_markdown, created_at
		FROM assessments WHERE assessment_id = ?`, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, a.CreatedAtRaw)
	return &a, nil
}

// ListAssessments returns rows newest first, without the heavy report and
// input columns.
func (s *SQLiteStore) ListAssessments(filter ListFilter) ([]Assessment, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `SELECT assessment_id, mode, business_name, CAST('{}' AS BLOB) AS input, CAST(result AS BLOB) AS result, '' AS report_markdown, created_at
		FROM assessments`
	args := []any{}
	if filter.Mode != "" {
		if !validModes[filter.Mode] {
			return nil, fmt.Errorf("unknown assessment mode %q", filter.Mode)
		}
		query += " WHERE mode = ?"
		args = append(args, filter.Mode)
	}
	query += " ORDER BY created_at DESC, assessment_id DESC LIMIT ?"
	args = append(args, limit)

	var out []Assessment
	if err := s.db.Select(&out, query, args...); err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	for i := range out {
		out[i].CreatedAt, _ = time.Parse(time.RFC3339Nano, out[i].CreatedAtRaw)
	}
	return out, nil
}

func (s *SQLiteStore) Health() map[string]any {
	var count int
	_ = s.db.Get(&count, "SELECT COUNT(*) FROM assessments")
	return map[string]any{
		"status":      "ok",
		"assessments": count,
	}
}
