package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/Iron-Ham/todomvc/internal/config"
	"github.com/Iron-Ham/todomvc/internal/controller"
	apperrors "github.com/Iron-Ham/todomvc/internal/errors"
	"github.com/Iron-Ham/todomvc/internal/logging"
	"github.com/Iron-Ham/todomvc/internal/todo"
)

var _ controller.Store = (*SQL)(nil)

// Schemas applied at open. Each is a single idempotent statement.
const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS todos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0
)`

	mysqlSchema = `CREATE TABLE IF NOT EXISTS todos (
	id BIGINT PRIMARY KEY AUTO_INCREMENT,
	title VARCHAR(1024) NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE
)`
)

// SQL is a Store backed by a "todos" table.
type SQL struct {
	db     *sql.DB
	driver string
	logger *logging.Logger
}

// OpenSQLite opens (creating if needed) a SQLite database at path and
// applies the schema.
func OpenSQLite(path string, logger *logging.Logger) (*SQL, error) {
	if strings.TrimSpace(path) == "" {
		return nil, apperrors.NewValidationError("sqlite path is required").WithField("store.path")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, apperrors.NewStoreError("open", err).WithDriver(config.DriverSQLite)
	}
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	return openSQL(config.DriverSQLite, dsn, sqliteSchema, logger)
}

// OpenMySQL connects to the MySQL database named by dsn and applies the
// schema. Found rows are reported for updates, so an update that changes
// nothing is not mistaken for a missing task.
func OpenMySQL(dsn string, logger *logging.Logger) (*SQL, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid mysql dsn").WithField("store.dsn").WithCause(err)
	}
	cfg.ClientFoundRows = true
	return openSQL(config.DriverMySQL, cfg.FormatDSN(), mysqlSchema, logger)
}

func openSQL(driver, dsn, schema string, logger *logging.Logger) (*SQL, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}
	if driver == config.DriverSQLite {
		// Serialise access; concurrent writers would otherwise fail with SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply %s schema: %w", driver, err)
	}

	s := &SQL{db: db, driver: driver, logger: logger.WithDriver(driver)}
	s.logger.Info("store opened")
	return s, nil
}

// Driver returns the database driver name.
func (s *SQL) Driver() string {
	return s.driver
}

func (s *SQL) wrap(op string, err error) *apperrors.StoreError {
	return apperrors.NewStoreError(op, err).WithDriver(s.driver)
}

// Read returns the tasks matching q ordered by id.
func (s *SQL) Read(ctx context.Context, q todo.Query) ([]todo.Task, error) {
	query := "SELECT id, title, completed FROM todos"
	var (
		where []string
		args  []any
	)
	if q.ID != nil {
		where = append(where, "id = ?")
		args = append(args, *q.ID)
	}
	if q.Completed != nil {
		where = append(where, "completed = ?")
		args = append(args, *q.Completed)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.wrap("read", err)
	}
	defer rows.Close()

	tasks := []todo.Task{}
	for rows.Next() {
		var t todo.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, s.wrap("read", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap("read", err)
	}
	return tasks, nil
}

// GetCount counts every row.
func (s *SQL) GetCount(ctx context.Context) (todo.Counts, error) {
	var counts todo.Counts
	err := s.db.QueryRowContext(ctx, `
SELECT COUNT(*), COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0)
FROM todos
`).Scan(&counts.Total, &counts.Completed)
	if err != nil {
		return todo.Counts{}, s.wrap("count", err)
	}
	counts.Active = counts.Total - counts.Completed
	return counts, nil
}

// Create inserts an incomplete task.
func (s *SQL) Create(ctx context.Context, title string) (todo.Task, error) {
	if err := validateTitle(title); err != nil {
		return todo.Task{}, err
	}
	res, err := s.db.ExecContext(ctx, "INSERT INTO todos (title, completed) VALUES (?, ?)", title, false)
	if err != nil {
		return todo.Task{}, s.wrap("create", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return todo.Task{}, s.wrap("create", err)
	}
	return todo.Task{ID: int(id), Title: title}, nil
}

// Update applies p to the row with the given id.
func (s *SQL) Update(ctx context.Context, id int, p todo.Patch) error {
	var (
		set  []string
		args []any
	)
	if p.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Completed != nil {
		set = append(set, "completed = ?")
		args = append(args, *p.Completed)
	}
	if len(set) == 0 {
		return s.exists(ctx, "update", id)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx, "UPDATE todos SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return s.wrap("update", err).WithTaskID(id)
	}
	return s.affected("update", id, res)
}

// Remove deletes the row with the given id.
func (s *SQL) Remove(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return s.wrap("remove", err).WithTaskID(id)
	}
	return s.affected("remove", id, res)
}

func (s *SQL) affected(op string, id int, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return s.wrap(op, err).WithTaskID(id)
	}
	if n == 0 {
		return notFound(op, s.driver, id)
	}
	return nil
}

func (s *SQL) exists(ctx context.Context, op string, id int) error {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM todos WHERE id = ?", id).Scan(&one)
	if apperrors.Is(err, sql.ErrNoRows) {
		return notFound(op, s.driver, id)
	}
	if err != nil {
		return s.wrap(op, err).WithTaskID(id)
	}
	return nil
}

// Close releases the database connection.
func (s *SQL) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
