package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/farmaciags/backend/internal/domain/medicine"
	"github.com/farmaciags/backend/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Errores específicos del repositorio de medicamentos
var (
	ErrMedicineNotFound = errors.New("medicamento no encontrado")
)

// MedicineRepository implementa la interfaz medicine.Repository
type MedicineRepository struct {
	db database.Pool
}

// NewMedicineRepository crea una nueva instancia de MedicineRepository
func NewMedicineRepository(db database.Pool) medicine.Repository {
	return &MedicineRepository{db: db}
}

// Create implementa medicine.Repository.Create
func (r *MedicineRepository) Create(ctx context.Context, m *medicine.Medicine) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO medicines (name, description, stock, price, expiration_date, lot, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		m.Name, m.Description, m.Stock, m.Price, m.ExpirationDate, m.Lot, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)

	if err != nil {
		return fmt.Errorf("error al crear medicamento: %w", err)
	}

	return nil
}

// FindByID implementa medicine.Repository.FindByID
func (r *MedicineRepository) FindByID(ctx context.Context, id int64) (*medicine.Medicine, error) {
	var m medicine.Medicine
	err := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(description, ''), stock, price, expiration_date, lot, created_at, updated_at
		 FROM medicines WHERE id = $1`,
		id).Scan(&m.ID, &m.Name, &m.Description, &m.Stock, &m.Price, &m.ExpirationDate, &m.Lot, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("error al buscar medicamento: %w", err)
	}

	return &m, nil
}

// List implementa medicine.Repository.List
func (r *MedicineRepository) List(ctx context.Context, limit, offset int) ([]*medicine.Medicine, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), stock, price, expiration_date, lot, created_at, updated_at
		 FROM medicines
		 ORDER BY name ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error al listar medicamentos: %w", err)
	}
	defer rows.Close()

	return scanMedicineRows(rows)
}

// Count implementa medicine.Repository.Count
func (r *MedicineRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM medicines").Scan(&count); err != nil {
		return 0, fmt.Errorf("error al contar medicamentos: %w", err)
	}
	return count, nil
}

// Update implementa medicine.Repository.Update
func (r *MedicineRepository) Update(ctx context.Context, m *medicine.Medicine) error {
	result, err := r.db.Exec(ctx,
		`UPDATE medicines
		 SET name = $1, description = $2, stock = $3, price = $4, expiration_date = $5, lot = $6, updated_at = $7
		 WHERE id = $8`,
		m.Name, m.Description, m.Stock, m.Price, m.ExpirationDate, m.Lot, m.UpdatedAt, m.ID)

	if err != nil {
		return fmt.Errorf("error al actualizar medicamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMedicineNotFound
	}

	return nil
}

// Delete implementa medicine.Repository.Delete
func (r *MedicineRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM medicines WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error al eliminar medicamento: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrMedicineNotFound
	}

	return nil
}

// FindAlerts implementa medicine.Repository.FindAlerts
func (r *MedicineRepository) FindAlerts(ctx context.Context, stockThreshold int, expiresBefore time.Time) ([]*medicine.Medicine, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), stock, price, expiration_date, lot, created_at, updated_at
		 FROM medicines
		 WHERE stock <= $1 OR expiration_date < $2
		 ORDER BY expiration_date ASC, stock ASC`,
		stockThreshold, expiresBefore)
	if err != nil {
		return nil, fmt.Errorf("error al listar alertas de medicamentos: %w", err)
	}
	defer rows.Close()

	return scanMedicineRows(rows)
}

// scanMedicineRows recorre el resultado y construye la lista de medicamentos
func scanMedicineRows(rows pgx.Rows) ([]*medicine.Medicine, error) {
	medicines := make([]*medicine.Medicine, 0)
	for rows.Next() {
		var m medicine.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Stock, &m.Price, &m.ExpirationDate, &m.Lot, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error al leer medicamento: %w", err)
		}
		medicines = append(medicines, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al leer resultados: %w", err)
	}

	return medicines, nil
}
