package dto

import (
	"time"

	"github.com/farmaciags/backend/internal/domain/medicine"
)

// MedicineRequest es el cuerpo de creación/actualización de un medicamento.
// Stock y Price son punteros para distinguir el cero válido del campo ausente.
type MedicineRequest struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description"`
	Stock          *int     `json:"stock" validate:"required,gte=0"`
	Price          *float64 `json:"price" validate:"required,gte=0"`
	ExpirationDate string   `json:"expirationDate" validate:"required,datetime=2006-01-02"`
	Lot            string   `json:"lot" validate:"required"`
}

// ParsedExpiration retorna la fecha de vencimiento ya validada
func (r *MedicineRequest) ParsedExpiration() time.Time {
	t, _ := time.Parse(medicine.DateLayout, r.ExpirationDate)
	return t
}

// MedicineResponse es la representación de un medicamento en las respuestas
type MedicineResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Stock          int     `json:"stock"`
	Price          float64 `json:"price"`
	ExpirationDate string  `json:"expiration_date"`
	Lot            string  `json:"lot"`
}

// ToMedicineResponse convierte la entidad a su DTO de respuesta
func ToMedicineResponse(m *medicine.Medicine) MedicineResponse {
	return MedicineResponse{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Stock:          m.Stock,
		Price:          m.Price,
		ExpirationDate: m.ExpirationDate.Format(medicine.DateLayout),
		Lot:            m.Lot,
	}
}

// ToMedicineListResponse convierte la lista de entidades a DTOs
func ToMedicineListResponse(medicines []*medicine.Medicine) []MedicineResponse {
	out := make([]MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, ToMedicineResponse(m))
	}
	return out
}
