package dto

import (
	"time"

	"github.com/farmaciags/backend/internal/domain/audit"
)

// AuditEntryResponse es un registro de la bitácora en las respuestas
type AuditEntryResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	UserEmail string    `json:"user_email,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAuditListResponse convierte los registros de la bitácora a DTOs
func ToAuditListResponse(entries []*audit.Entry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			UserName:  e.UserName,
			UserEmail: e.UserEmail,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
