package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	sales := []*Sale{
		{Total: 10, PaymentMethod: "cash"},
		{Total: 20, PaymentMethod: "card"},
		{Total: 30, PaymentMethod: "cash"},
	}

	summary := Summarize(sales)

	require.Equal(t, 60.0, summary.TotalSales)
	require.Equal(t, 3, summary.TotalTransactions)
	require.Equal(t, map[string]float64{"cash": 40, "card": 20}, summary.ByPaymentMethod)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	require.Zero(t, summary.TotalSales)
	require.Zero(t, summary.TotalTransactions)
	require.Empty(t, summary.ByPaymentMethod)
}

func TestSummarizeUnknownPaymentMethod(t *testing.T) {
	sales := []*Sale{
		{Total: 15, PaymentMethod: ""},
		{Total: 5, PaymentMethod: UnknownPaymentMethod},
	}

	summary := Summarize(sales)

	require.Equal(t, map[string]float64{UnknownPaymentMethod: 20}, summary.ByPaymentMethod)
}

func TestTodayWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC)

	from, to := TodayWindow(now)

	require.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), from)
	require.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), to)
}

func TestNewSaleComputesTotals(t *testing.T) {
	clientID := int64(3)
	s, err := NewSale(1, &clientID, "cash", "", []Item{
		{MedicineID: 10, Quantity: 2, UnitPrice: 5.5},
		{MedicineID: 11, Quantity: 1, UnitPrice: 9},
	})
	require.NoError(t, err)
	require.Equal(t, 20.0, s.Total)
	require.Equal(t, 11.0, s.Items[0].TotalPrice)
	require.Equal(t, StatusCompleted, s.Status)
}

func TestNewSaleRejectsEmptyItems(t *testing.T) {
	_, err := NewSale(1, nil, "cash", "", nil)
	require.ErrorIs(t, err, ErrNoItems)
}

func TestNewSaleRejectsNonPositiveQuantity(t *testing.T) {
	_, err := NewSale(1, nil, "cash", "", []Item{{MedicineID: 10, Quantity: 0, UnitPrice: 5}})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCancelTwice(t *testing.T) {
	s := &Sale{Status: StatusCompleted}
	require.NoError(t, s.Cancel())
	require.ErrorIs(t, s.Cancel(), ErrAlreadyCancelled)
}
