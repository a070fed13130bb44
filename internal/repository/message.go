package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type MessageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewMessageRepo(db *dbpg.DB) *MessageRepository {
	return &MessageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *MessageRepository) Append(ctx context.Context, m *domain.Message) error {
	query := `INSERT INTO messages (id, booking_id, sender_id, sender_name, body, kind, alert, status_value, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.BookingID, m.SenderID, m.SenderName, m.Body, m.Kind,
		nullString(string(m.Alert)), nullString(m.StatusValue), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	return nil
}

// ListByBooking returns the full log in publish order.
func (r *MessageRepository) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Message, error) {
	query := `SELECT id, booking_id, sender_id, sender_name, body, kind, alert, status_value, created_at
			  FROM messages
			  WHERE booking_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var res []*domain.Message
	for rows.Next() {
		m, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

// UnreadCount counts messages from the other party newer than the viewer's
// read mark on one booking.
func (r *MessageRepository) UnreadCount(ctx context.Context, bookingID, viewerID string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM messages m
			  WHERE m.booking_id = $1
				AND m.sender_id <> $2
				AND m.created_at > COALESCE(
					(SELECT last_read_at FROM message_reads
					 WHERE booking_id = $1 AND viewer_id = $2),
					'epoch'::timestamptz)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, viewerID)
	if err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan unread count: %w", err)
	}

	return n, nil
}

// UnreadTotal sums unread messages across every booking where the viewer is
// a party. Backs the navigation badge poll.
func (r *MessageRepository) UnreadTotal(ctx context.Context, viewerID string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM messages m
			  JOIN bookings b ON b.id = m.booking_id
			  LEFT JOIN message_reads mr
				ON mr.booking_id = m.booking_id AND mr.viewer_id = $1
			  WHERE (b.passenger_id = $1 OR b.driver_id = $1)
				AND m.sender_id <> $1
				AND m.created_at > COALESCE(mr.last_read_at, 'epoch'::timestamptz)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, viewerID)
	if err != nil {
		return 0, fmt.Errorf("unread total: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan unread total: %w", err)
	}

	return n, nil
}

// MarkRead advances the viewer's read mark to now.
func (r *MessageRepository) MarkRead(ctx context.Context, bookingID, viewerID string) error {
	query := `INSERT INTO message_reads (booking_id, viewer_id, last_read_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (booking_id, viewer_id)
			  DO UPDATE SET last_read_at = now()`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, bookingID, viewerID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}

	return nil
}

func scanMessage(scan func(dest ...any) error) (*domain.Message, error) {
	var (
		m           domain.Message
		alert       sql.NullString
		statusValue sql.NullString
	)
	err := scan(
		&m.ID, &m.BookingID, &m.SenderID, &m.SenderName, &m.Body, &m.Kind,
		&alert, &statusValue, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}

	if alert.Valid {
		m.Alert = domain.AlertType(alert.String)
	}
	if statusValue.Valid {
		m.StatusValue = statusValue.String
	}

	return &m, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
