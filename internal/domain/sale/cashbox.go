package sale

import "time"

// CashboxSummary es el cuadre de caja: agregado derivado, no persistente,
// sobre las ventas de una sesión de caja.
type CashboxSummary struct {
	TotalSales        float64            `json:"totalSales"`
	TotalTransactions int                `json:"totalTransactions"`
	ByPaymentMethod   map[string]float64 `json:"byPaymentMethod"`
}

// Summarize reduce un conjunto de ventas al cuadre de caja: total
// vendido, cantidad de transacciones y desglose por método de pago.
// Es un cómputo puro sobre datos ya leídos; no consulta ni muta nada.
func Summarize(sales []*Sale) CashboxSummary {
	summary := CashboxSummary{
		ByPaymentMethod: make(map[string]float64),
	}

	for _, s := range sales {
		summary.TotalSales += s.Total
		summary.TotalTransactions++

		method := s.PaymentMethod
		if method == "" {
			method = UnknownPaymentMethod
		}
		summary.ByPaymentMethod[method] += s.Total
	}

	return summary
}

// TodayWindow retorna el inicio del día actual y el inicio del día
// siguiente, el período implícito de la sesión de caja.
func TodayWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 0, 1)
}
