package repository

import (
	"context"
	"testing"

	"github.com/farmaciags/backend/internal/domain/sale"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func TestSaleRepository_Create_ConfirmaTodoEnUnaTransaccion(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewSaleRepository(mock)
	ctx := context.Background()

	s, err := sale.NewSale(1, nil, "cash", "", []sale.Item{
		{MedicineID: 10, Quantity: 2, UnitPrice: 50},
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO sales`).
		WithArgs(s.UserID, s.ClientID, s.Total, s.PaymentMethod, s.RNC, s.Status, s.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectExec(`UPDATE medicines SET stock = stock - \$1`).
		WithArgs(2, int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`INSERT INTO sale_items`).
		WithArgs(int64(5), int64(10), 2, 50.0, 100.0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(21)))
	mock.ExpectCommit()

	require.NoError(t, r.Create(ctx, s))
	require.Equal(t, int64(5), s.ID)
	require.Equal(t, int64(21), s.Items[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_Create_RevierteSiNoHayStock(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewSaleRepository(mock)
	ctx := context.Background()

	s, err := sale.NewSale(1, nil, "card", "", []sale.Item{
		{MedicineID: 10, Quantity: 500, UnitPrice: 50},
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO sales`).
		WithArgs(s.UserID, s.ClientID, s.Total, s.PaymentMethod, s.RNC, s.Status, s.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
	// Sin stock suficiente el UPDATE condicionado no toca ninguna fila.
	mock.ExpectExec(`UPDATE medicines SET stock = stock - \$1`).
		WithArgs(500, int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	err = r.Create(ctx, s)
	require.ErrorIs(t, err, ErrInsufficientStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleRepository_Cancel(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewSaleRepository(mock)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE sales SET status = \$1 WHERE id = \$2 AND status IS DISTINCT FROM \$1`).
		WithArgs(sale.StatusCancelled, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, r.Cancel(ctx, 5))

	// Cancelar dos veces, o una venta inexistente, no afecta filas.
	mock.ExpectExec(`UPDATE sales SET status = \$1 WHERE id = \$2 AND status IS DISTINCT FROM \$1`).
		WithArgs(sale.StatusCancelled, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	require.ErrorIs(t, r.Cancel(ctx, 5), ErrSaleNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
