package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farmaciags/backend/internal/domain/sale"
	"github.com/farmaciags/backend/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio de ventas
var (
	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrInsufficientStock = errors.New("stock insuficiente para el medicamento")
)

// SaleRepository implementa la interfaz sale.Repository
type SaleRepository struct {
	db database.Pool
}

// NewSaleRepository crea una nueva instancia de SaleRepository
func NewSaleRepository(db database.Pool) sale.Repository {
	return &SaleRepository{db: db}
}

// Create implementa sale.Repository.Create. La cabecera, las líneas y el
// descuento de stock se confirman en una sola transacción: si algún
// medicamento no tiene stock suficiente no se registra nada.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO sales (user_id, client_id, total, payment_method, rnc, status, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
		 RETURNING id`,
		s.UserID, s.ClientID, s.Total, s.PaymentMethod, s.RNC, s.Status, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("error al registrar venta: %w", err)
	}

	for i := range s.Items {
		item := &s.Items[i]
		item.SaleID = s.ID

		// El descuento condicionado al stock disponible evita ventas
		// que dejarían el inventario en negativo.
		result, err := tx.Exec(ctx,
			`UPDATE medicines SET stock = stock - $1, updated_at = NOW()
			 WHERE id = $2 AND stock >= $1`,
			item.Quantity, item.MedicineID)
		if err != nil {
			return fmt.Errorf("error al descontar stock: %w", err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("%w (id %d)", ErrInsufficientStock, item.MedicineID)
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO sale_items (sale_id, medicine_id, quantity, unit_price, total_price)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING id`,
			item.SaleID, item.MedicineID, item.Quantity, item.UnitPrice, item.TotalPrice,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("error al registrar línea de venta: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error al confirmar venta: %w", err)
	}

	return nil
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id int64) (*sale.Sale, error) {
	var s sale.Sale
	err := r.db.QueryRow(ctx,
		`SELECT s.id, s.user_id, COALESCE(u.name, ''), s.client_id, COALESCE(c.name, ''),
		        s.total, s.payment_method, COALESCE(s.rnc, ''), s.status, s.created_at
		 FROM sales s
		 LEFT JOIN users u ON u.id = s.user_id
		 LEFT JOIN clients c ON c.id = s.client_id
		 WHERE s.id = $1`,
		id).Scan(&s.ID, &s.UserID, &s.UserName, &s.ClientID, &s.ClientName,
		&s.Total, &s.PaymentMethod, &s.RNC, &s.Status, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("error al buscar venta: %w", err)
	}

	items, err := r.findItems(ctx, []int64{s.ID})
	if err != nil {
		return nil, err
	}
	s.Items = items[s.ID]

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.user_id, COALESCE(u.name, ''), s.client_id, COALESCE(c.name, ''),
		        s.total, s.payment_method, COALESCE(s.rnc, ''), s.status, s.created_at
		 FROM sales s
		 LEFT JOIN users u ON u.id = s.user_id
		 LEFT JOIN clients c ON c.id = s.client_id
		 ORDER BY s.created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar ventas: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar ventas: %w", err)
	}
	return count, nil
}

// Cancel implementa sale.Repository.Cancel
func (r *SaleRepository) Cancel(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sales SET status = $1 WHERE id = $2 AND status IS DISTINCT FROM $1`,
		sale.StatusCancelled, id)
	if err != nil {
		return fmt.Errorf("error al cancelar venta: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// FindByPeriod implementa sale.Repository.FindByPeriod. Las ventas
// canceladas quedan fuera del período.
func (r *SaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.user_id, COALESCE(u.name, ''), s.client_id, COALESCE(c.name, ''),
		        s.total, s.payment_method, COALESCE(s.rnc, ''), s.status, s.created_at
		 FROM sales s
		 LEFT JOIN users u ON u.id = s.user_id
		 LEFT JOIN clients c ON c.id = s.client_id
		 WHERE s.created_at >= $1 AND s.created_at < $2
		   AND s.status IS DISTINCT FROM $3
		 ORDER BY s.created_at DESC`,
		from, to, sale.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("error al listar ventas del período: %w", err)
	}
	defer rows.Close()

	return scanSaleRows(rows)
}

// FindByPeriodWithItems implementa sale.Repository.FindByPeriodWithItems
func (r *SaleRepository) FindByPeriodWithItems(ctx context.Context, from, to time.Time) ([]*sale.Sale, error) {
	sales, err := r.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	ids := make([]int64, 0, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
	}

	items, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, s := range sales {
		s.Items = items[s.ID]
	}

	return sales, nil
}

// findItems carga las líneas de las ventas indicadas, con el nombre del
// medicamento, agrupadas por venta
func (r *SaleRepository) findItems(ctx context.Context, saleIDs []int64) (map[int64][]sale.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.id, i.sale_id, i.medicine_id, COALESCE(m.name, ''), i.quantity, i.unit_price, i.total_price
		 FROM sale_items i
		 LEFT JOIN medicines m ON m.id = i.medicine_id
		 WHERE i.sale_id = ANY($1)
		 ORDER BY i.id ASC`,
		saleIDs)
	if err != nil {
		return nil, fmt.Errorf("error al listar líneas de venta: %w", err)
	}
	defer rows.Close()

	items := make(map[int64][]sale.Item)
	for rows.Next() {
		var it sale.Item
		if err := rows.Scan(&it.ID, &it.SaleID, &it.MedicineID, &it.MedicineName, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, fmt.Errorf("error al leer línea de venta: %w", err)
		}
		items[it.SaleID] = append(items[it.SaleID], it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return items, nil
}

// scanSaleRows recorre el resultado y construye la lista de ventas
func scanSaleRows(rows pgx.Rows) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0)
	for rows.Next() {
		var s sale.Sale
		if err := rows.Scan(&s.ID, &s.UserID, &s.UserName, &s.ClientID, &s.ClientName,
			&s.Total, &s.PaymentMethod, &s.RNC, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("error al leer venta: %w", err)
		}
		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return sales, nil
}
