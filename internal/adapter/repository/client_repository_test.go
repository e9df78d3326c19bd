package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/farmaciags/backend/internal/domain/client"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func TestClientRepository_Create_OK_y_Duplicado(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewClientRepository(mock)
	ctx := context.Background()

	c := &client.Client{
		Name:      "Ana Pérez",
		Email:     "ana@example.com",
		Phone:     "809-555-0101",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs(c.Name, c.Email, c.Phone, c.Cedula, c.RNC, c.Address, c.CreatedAt, c.UpdatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	require.NoError(t, r.Create(ctx, c))
	require.Equal(t, int64(7), c.ID)

	mock.ExpectQuery(`INSERT INTO clients`).
		WithArgs(c.Name, c.Email, c.Phone, c.Cedula, c.RNC, c.Address, c.CreatedAt, c.UpdatedAt).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, c)
	require.ErrorIs(t, err, ErrClientDuplicateKey)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_FindByID_NoEncontrado(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewClientRepository(mock)

	mock.ExpectQuery(`SELECT id, name, email, phone`).
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.FindByID(context.Background(), int64(99))
	require.ErrorIs(t, err, ErrClientNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_ExistsByEmail(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewClientRepository(mock)
	ctx := context.Background()

	// La consulta compara en minúsculas y excluye al propio cliente
	// cuando se pasa su ID.
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM clients WHERE LOWER\(email\) = LOWER\(\$1\) AND \(\$2 = 0 OR id != \$2\)\)`).
		WithArgs("Ana@Example.COM", int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := r.ExistsByEmail(ctx, "Ana@Example.COM", 0)
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM clients WHERE LOWER\(email\) = LOWER\(\$1\) AND \(\$2 = 0 OR id != \$2\)\)`).
		WithArgs("ana@example.com", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = r.ExistsByEmail(ctx, "ana@example.com", 7)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_ExistsByPhone_ErrorDeConsulta(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewClientRepository(mock)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM clients WHERE phone = \$1`).
		WithArgs("809-555-0101", int64(0)).
		WillReturnError(errors.New("connection refused"))

	_, err := r.ExistsByPhone(context.Background(), "809-555-0101", 0)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_ExistsByCedula_y_RNC(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewClientRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM clients WHERE cedula = \$1`).
		WithArgs("001-1234567-8", int64(0)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := r.ExistsByCedula(ctx, "001-1234567-8", 0)
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM clients WHERE rnc = \$1`).
		WithArgs("130-12345-6", int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = r.ExistsByRNC(ctx, "130-12345-6", 3)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Delete_NoEncontrado(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewClientRepository(mock)

	mock.ExpectExec(`DELETE FROM clients WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := r.Delete(context.Background(), int64(42))
	require.ErrorIs(t, err, ErrClientNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
