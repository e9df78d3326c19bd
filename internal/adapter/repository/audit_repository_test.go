package repository

import (
	"context"
	"testing"
	"time"

	"github.com/farmaciags/backend/internal/domain/audit"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestAuditRepository_Append(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewAuditRepository(mock)

	e := &audit.Entry{
		UserID:    3,
		Action:    "CREATE_SALE",
		Details:   `{"sale_id":5}`,
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO audit_logs`).
		WithArgs(e.UserID, e.Action, e.Details, e.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	require.NoError(t, r.Append(context.Background(), e))
	require.Equal(t, int64(11), e.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_List_SinFiltros(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewAuditRepository(mock)

	now := time.Now()
	mock.ExpectQuery(`FROM audit_logs a`).
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "email", "action", "details", "created_at"}).
			AddRow(int64(2), int64(3), "Ana", "ana@farmacia.com", "LOGIN", "", now).
			AddRow(int64(1), int64(3), "Ana", "ana@farmacia.com", "CREATE_CLIENT", `{"id":7}`, now.Add(-time.Hour)))

	entries, err := r.List(context.Background(), audit.Filter{}, 20, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "LOGIN", entries[0].Action)
	require.Equal(t, "Ana", entries[0].UserName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_List_ConFiltros(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewAuditRepository(mock)

	f := audit.Filter{UserID: 3, Action: "LOGIN", DateFrom: "2026-08-01", DateTo: "2026-08-31"}

	mock.ExpectQuery(`WHERE a\.user_id = \$1 AND a\.action = \$2 AND a\.created_at >= \$3::date AND a\.created_at < \(\$4::date \+ INTERVAL '1 day'\)`).
		WithArgs(int64(3), "LOGIN", "2026-08-01", "2026-08-31", 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "email", "action", "details", "created_at"}))

	entries, err := r.List(context.Background(), f, 10, 0)
	require.NoError(t, err)
	require.Empty(t, entries)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_Count_ConFiltro(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewAuditRepository(mock)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM audit_logs a WHERE a\.action = \$1`).
		WithArgs("DELETE_MEDICINE").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))

	count, err := r.Count(context.Background(), audit.Filter{Action: "DELETE_MEDICINE"})
	require.NoError(t, err)
	require.Equal(t, 4, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
