package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookline/internal/common"
	"github.com/dmitrijs2005/bookline/internal/cryptox"
	"github.com/dmitrijs2005/bookline/internal/dbx"
	"github.com/dmitrijs2005/bookline/internal/server/models"
)

// createdAtLayout matches the second-precision UTC timestamps the ledger
// has always stored.
const createdAtLayout = "2006-01-02T15:04:05"

// PostgresRepository implements booking storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). It exclusively owns the persisted representation:
// client_name, client_phone, client_email and notes hold cipher tokens
// produced by the injected FieldCipher.
type PostgresRepository struct {
	db     dbx.DBTX
	cipher *cryptox.FieldCipher
	now    func() time.Time
}

// NewPostgresRepository constructs a repository bound to the given DBTX
// and field cipher.
func NewPostgresRepository(db dbx.DBTX, cipher *cryptox.FieldCipher) *PostgresRepository {
	return &PostgresRepository{db: db, cipher: cipher, now: time.Now}
}

// Create encrypts the sensitive fields, stamps created_at with the current
// UTC time at second precision and appends one row. No other row is read
// or modified.
func (r *PostgresRepository) Create(ctx context.Context, req *models.BookingRequest) (int64, error) {
	query := `
		INSERT INTO appointments (client_name, client_phone, client_email, service, appointment_time, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`

	createdAt := r.now().UTC().Format(createdAtLayout)

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		r.cipher.Encrypt(req.Name),
		r.cipher.Encrypt(req.Phone),
		r.cipher.Encrypt(req.Email),
		req.Service,
		req.AppointmentTime,
		r.cipher.Encrypt(req.Notes),
		createdAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to insert appointment: %w", common.ErrorStorage, err)
	}

	return id, nil
}

// SelectAll reads the whole ledger ordered by the appointment_time text
// column ascending and decrypts each sensitive field independently.
func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*models.Booking, error) {
	query := `
		SELECT id, client_name, client_phone, COALESCE(client_email, ''), service, appointment_time, COALESCE(notes, ''), created_at
		FROM appointments
		ORDER BY appointment_time ASC;
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to select appointments: %w", common.ErrorStorage, err)
	}
	defer rows.Close()

	var result []*models.Booking
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Phone, &item.Email,
			&item.Service, &item.AppointmentTime, &item.Notes, &item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
		}
		item.Name = r.cipher.Decrypt(item.Name)
		item.Phone = r.cipher.Decrypt(item.Phone)
		item.Email = r.cipher.Decrypt(item.Email)
		item.Notes = r.cipher.Decrypt(item.Notes)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorStorage, err)
	}
	return result, nil
}
