package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/uddugarg/email-microservice/internal/core/domain"
)

type EmailLogsStorage struct {
	db *PostgresDB
}

func NewEmailLogsStorage(db *PostgresDB) *EmailLogsStorage {
	return &EmailLogsStorage{
		db: db,
	}
}

func (s *EmailLogsStorage) Append(ctx context.Context, entry *domain.EmailLog) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO email_logs (id, event_id, tenant_id, user_id, from_address, to_address,
		     subject, status, status_details, provider_response, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		entry.ID,
		entry.EventID,
		entry.TenantID,
		entry.UserID,
		entry.FromAddress,
		entry.ToAddress,
		entry.Subject,
		entry.Status,
		entry.StatusDetails,
		entry.ProviderResponse,
	)
	return err
}

// UpdateStatus mutates a log row in place. Rows already in a terminal
// status only match when the incoming status is the same, which makes
// redelivered terminal updates observable no-ops. Empty optional fields
// keep the stored values.
func (s *EmailLogsStorage) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.EmailStatus, update domain.LogUpdate) error {
	_, err := s.db.Exec(ctx,
		`UPDATE email_logs
		 SET status = $2,
		     status_details = COALESCE(NULLIF($3, ''), status_details),
		     from_address = COALESCE(NULLIF($4, ''), from_address),
		     provider_response = COALESCE(NULLIF($5, ''), provider_response),
		     updated_at = now()
		 WHERE id = $1
		   AND (status NOT IN ('SENT', 'FAILED', 'REJECTED') OR status = $2)`,
		id, status, update.Details, update.FromAddress, update.ProviderResponse)
	return err
}

func (s *EmailLogsStorage) GetByEventID(ctx context.Context, eventID uuid.UUID) ([]domain.EmailLog, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, event_id, tenant_id, user_id, from_address, to_address,
		     subject, status, status_details, provider_response, created_at, updated_at
		 FROM email_logs
		 WHERE event_id = $1
		 ORDER BY created_at`,
		eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLogs(rows)
}

func (s *EmailLogsStorage) ListByTenantUser(ctx context.Context, tenantID, userID uuid.UUID, limit, offset int) ([]domain.EmailLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx,
		`SELECT id, event_id, tenant_id, user_id, from_address, to_address,
		     subject, status, status_details, provider_response, created_at, updated_at
		 FROM email_logs
		 WHERE tenant_id = $1 AND user_id = $2
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		tenantID, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLogs(rows)
}

func scanLogs(rows pgx.Rows) ([]domain.EmailLog, error) {
	var logs []domain.EmailLog
	for rows.Next() {
		var entry domain.EmailLog
		err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.TenantID,
			&entry.UserID,
			&entry.FromAddress,
			&entry.ToAddress,
			&entry.Subject,
			&entry.Status,
			&entry.StatusDetails,
			&entry.ProviderResponse,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}
