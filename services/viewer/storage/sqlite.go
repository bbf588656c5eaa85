package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/iulianpascalau/xrd-launcher/commonGo"
	"github.com/iulianpascalau/xrd-launcher/services/viewer/common"
	_ "github.com/mattn/go-sqlite3"
	logger "github.com/multiversx/mx-chain-logger-go"
)

const inMemoryDatabase = ":memory:"

var log = logger.GetOrCreate("storage")

// ErrPatternNotFound signals that no pattern has the requested id
var ErrPatternNotFound = errors.New("pattern not found")

// sqliteStorage is the sqlite implementation for the uploaded patterns
type sqliteStorage struct {
	db               *sql.DB
	retentionSeconds int
	cancelFunc       context.CancelFunc
}

// NewSQLiteStorage creates the database, schema, and starts the retention cleaner if retentionSeconds is positive
func NewSQLiteStorage(dbPath string, retentionSeconds int) (*sqliteStorage, error) {
	err := prepareDirectories(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial empty DB file: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == inMemoryDatabase {
		// every new connection would open its own empty in-memory database
		db.SetMaxOpenConns(1)
	}

	err = createSchema(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &sqliteStorage{
		db:               db,
		retentionSeconds: retentionSeconds,
		cancelFunc:       cancel,
	}

	if retentionSeconds > 0 {
		s.startRetentionCleaner(ctx)
	}

	return s, nil
}

func prepareDirectories(dbPath string) error {
	if dbPath == inMemoryDatabase {
		return nil
	}

	return os.MkdirAll(filepath.Dir(dbPath), os.ModePerm)
}

func createSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS patterns (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT    NOT NULL UNIQUE,
		filename    TEXT    NOT NULL,
		content     TEXT    NOT NULL,
		uploaded_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_patterns_uploaded_at ON patterns(uploaded_at);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SavePattern stores a new pattern at the end of the list
func (s *sqliteStorage) SavePattern(ctx context.Context, filename string, content string, uploadedAt int64) (*common.Pattern, error) {
	pattern := &common.Pattern{
		ID:         uuid.NewString(),
		Filename:   filename,
		Content:    content,
		UploadedAt: uploadedAt,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO patterns (id, filename, content, uploaded_at)
		VALUES (?, ?, ?, ?)
	`, pattern.ID, pattern.Filename, pattern.Content, pattern.UploadedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pattern: %w", err)
	}

	return pattern, nil
}

// ListPatterns returns all patterns in upload order
func (s *sqliteStorage) ListPatterns(ctx context.Context) ([]common.Pattern, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, filename, content, uploaded_at FROM patterns ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	results := make([]common.Pattern, 0)
	for rows.Next() {
		var p common.Pattern
		err = rows.Scan(&p.ID, &p.Filename, &p.Content, &p.UploadedAt)
		if err != nil {
			return nil, err
		}

		results = append(results, p)
	}

	return results, rows.Err()
}

// DeletePattern removes a single pattern
func (s *sqliteStorage) DeletePattern(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM patterns WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrPatternNotFound, id)
	}

	return nil
}

// DeleteAllPatterns removes every pattern
func (s *sqliteStorage) DeleteAllPatterns(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM patterns")
	return err
}

func (s *sqliteStorage) cleanRetainedPatterns(ctx context.Context) {
	cutoff := time.Now().Unix() - int64(s.retentionSeconds)
	res, err := s.db.ExecContext(ctx, "DELETE FROM patterns WHERE uploaded_at < ?", cutoff)
	if err != nil {
		log.Warn("failed to cleanup retained patterns", "error", err)
		return
	}

	affected, _ := res.RowsAffected()
	log.Debug("retention cleanup done", "removed", affected)
}

func (s *sqliteStorage) startRetentionCleaner(ctx context.Context) {
	// max(RetentionSeconds/10, 60)
	intervalSec := s.retentionSeconds / 10
	if intervalSec < 60 {
		intervalSec = 60
	}

	commonGo.CronJobStarter(ctx, s.cleanRetainedPatterns, time.Duration(intervalSec)*time.Second)
}

// Close closes the database and stops background routines
func (s *sqliteStorage) Close() error {
	s.cancelFunc()
	return s.db.Close()
}

// IsInterfaceNil returns true if the value under the interface is nil
func (s *sqliteStorage) IsInterfaceNil() bool {
	return s == nil
}
