package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/farmaciags/backend/internal/domain/audit"
	"github.com/farmaciags/backend/internal/infrastructure/database"
)

// AuditRepository implementa la interfaz audit.Repository
type AuditRepository struct {
	db database.Pool
}

// NewAuditRepository crea una nueva instancia de AuditRepository
func NewAuditRepository(db database.Pool) audit.Repository {
	return &AuditRepository{db: db}
}

// Append implementa audit.Repository.Append
func (r *AuditRepository) Append(ctx context.Context, e *audit.Entry) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO audit_logs (user_id, action, details, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id`,
		e.UserID, e.Action, e.Details, e.CreatedAt,
	).Scan(&e.ID)

	if err != nil {
		return fmt.Errorf("error al registrar en la bitácora: %w", err)
	}

	return nil
}

// List implementa audit.Repository.List
func (r *AuditRepository) List(ctx context.Context, f audit.Filter, limit, offset int) ([]*audit.Entry, error) {
	where, args := buildAuditFilter(f)

	args = append(args, limit, offset)
	query := fmt.Sprintf(
		`SELECT a.id, a.user_id, COALESCE(u.name, ''), COALESCE(u.email, ''),
		        a.action, COALESCE(a.details, ''), a.created_at
		 FROM audit_logs a
		 LEFT JOIN users u ON u.id = a.user_id
		 %s
		 ORDER BY a.created_at DESC
		 LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al listar la bitácora: %w", err)
	}
	defer rows.Close()

	entries := make([]*audit.Entry, 0)
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.UserName, &e.UserEmail, &e.Action, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error al leer registro de la bitácora: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return entries, nil
}

// Count implementa audit.Repository.Count
func (r *AuditRepository) Count(ctx context.Context, f audit.Filter) (int, error) {
	where, args := buildAuditFilter(f)

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM audit_logs a %s", where)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar la bitácora: %w", err)
	}

	return count, nil
}

// buildAuditFilter arma la cláusula WHERE con los filtros presentes.
// Los valores siempre viajan como parámetros, nunca interpolados.
func buildAuditFilter(f audit.Filter) (string, []interface{}) {
	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if f.UserID > 0 {
		args = append(args, f.UserID)
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", len(args)))
	}
	if f.Action != "" {
		args = append(args, f.Action)
		conditions = append(conditions, fmt.Sprintf("a.action = $%d", len(args)))
	}
	if f.DateFrom != "" {
		args = append(args, f.DateFrom)
		conditions = append(conditions, fmt.Sprintf("a.created_at >= $%d::date", len(args)))
	}
	if f.DateTo != "" {
		args = append(args, f.DateTo)
		conditions = append(conditions, fmt.Sprintf("a.created_at < ($%d::date + INTERVAL '1 day')", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}
