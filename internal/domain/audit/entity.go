package audit

import "time"

// Entry es un registro inmutable de la bitácora de auditoría.
// Se crea una sola vez; la aplicación nunca lo modifica ni lo elimina.
type Entry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	UserEmail string    `json:"user_email,omitempty"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter son los filtros opcionales del listado de la bitácora
type Filter struct {
	UserID   int64
	Action   string
	DateFrom string
	DateTo   string
}
