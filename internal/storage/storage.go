package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	_ "modernc.org/sqlite"

	"telegram-reminder-bot/internal/models"
)

//go:embed schema.sql
var ddl embed.FS

const (
	sqlDate = "2006-01-02"
	sqlTime = "15:04"
)

// DB is the SQLite-backed Repository. Dates and times are stored as wall clock
// values in loc, so lexical order of (due_date, due_time) is chronological.
type DB struct {
	*sql.DB
	loc   *time.Location
	clock clockwork.Clock
}

var _ Repository = (*DB)(nil)

// New opens (or creates) the database at path and applies the schema.
// clock stamps created_at; nil means the real clock.
func New(path string, loc *time.Location, clock clockwork.Clock) (*DB, error) {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection serializes writers, so create and markSent never interleave
	db.SetMaxOpenConns(1)

	if err = migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{DB: db, loc: loc, clock: clock}, nil
}

func migrate(db *sql.DB) error {
	b, err := ddl.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err = db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// ---------- reminders -------------------------------------------------------

func (d *DB) CreateReminder(ctx context.Context, userID int64, title, description string, dueAt time.Time) (int64, error) {
	local := dueAt.In(d.loc)
	res, err := d.ExecContext(ctx, `
        INSERT INTO reminders (user_id, title, description, due_date, due_time, sent, created_at)
        VALUES (?,?,?,?,?,0,?)
    `, userID, title, description, local.Format(sqlDate), local.Format(sqlTime), d.clock.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("insert reminder: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get inserted id: %w", err)
	}
	return id, nil
}

func (d *DB) ListReminders(ctx context.Context, userID int64) ([]models.Reminder, error) {
	rows, err := d.QueryContext(ctx, `
        SELECT id, user_id, title, description, due_date, due_time, sent, created_at
        FROM reminders WHERE user_id=? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()
	return d.scanReminders(rows)
}

func (d *DB) GetReminder(ctx context.Context, id, userID int64) (*models.Reminder, error) {
	row := d.QueryRowContext(ctx, `
        SELECT id, user_id, title, description, due_date, due_time, sent, created_at
        FROM reminders WHERE id=? AND user_id=?`, id, userID)

	r, err := d.scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reminder %d: %w", id, err)
	}
	return r, nil
}

func (d *DB) DeleteReminder(ctx context.Context, id, userID int64) error {
	if _, err := d.ExecContext(ctx, `DELETE FROM reminders WHERE id=? AND user_id=?`, id, userID); err != nil {
		return fmt.Errorf("delete reminder %d: %w", id, err)
	}
	return nil
}

func (d *DB) ListDueUnsent(ctx context.Context, asOf time.Time) ([]models.Reminder, error) {
	local := asOf.In(d.loc)
	day, hm := local.Format(sqlDate), local.Format(sqlTime)

	rows, err := d.QueryContext(ctx, `
        SELECT id, user_id, title, description, due_date, due_time, sent, created_at
        FROM reminders
        WHERE sent = 0
          AND (due_date < ? OR (due_date = ? AND due_time <= ?))
        ORDER BY due_date, due_time, id`, day, day, hm)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()
	return d.scanReminders(rows)
}

func (d *DB) MarkSent(ctx context.Context, id int64) error {
	if _, err := d.ExecContext(ctx, `UPDATE reminders SET sent=1 WHERE id=? AND sent=0`, id); err != nil {
		return fmt.Errorf("mark reminder %d sent: %w", id, err)
	}
	return nil
}

// ---------- scanning --------------------------------------------------------

type scanner interface {
	Scan(dest ...any) error
}

func (d *DB) scanReminder(row scanner) (*models.Reminder, error) {
	var (
		r        models.Reminder
		day, hm  string
		sentFlag int
	)
	if err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &day, &hm, &sentFlag, &r.CreatedAt); err != nil {
		return nil, err
	}
	due, err := time.ParseInLocation(sqlDate+" "+sqlTime, day+" "+hm, d.loc)
	if err != nil {
		return nil, fmt.Errorf("parse due of reminder %d: %w", r.ID, err)
	}
	r.DueAt = due
	r.Sent = sentFlag != 0
	return &r, nil
}

func (d *DB) scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	var res []models.Reminder
	for rows.Next() {
		r, err := d.scanReminder(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}
	return res, rows.Err()
}
