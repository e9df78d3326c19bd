package dto

import (
	"github.com/farmaciags/backend/internal/domain/client"
)

// ClientRequest es el cuerpo de creación/actualización de un cliente.
// La unicidad de correo, teléfono, cédula y RNC la decide el verificador
// de duplicados, no las etiquetas de validación.
type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Cedula  string `json:"cedula"`
	RNC     string `json:"rnc"`
	Address string `json:"address"`
}

// CheckInput convierte la petición a la entrada del verificador
func (r *ClientRequest) CheckInput(excludeID int64) client.CheckInput {
	return client.CheckInput{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Cedula:    r.Cedula,
		RNC:       r.RNC,
		ExcludeID: excludeID,
	}
}

// ClientResponse es la representación de un cliente en las respuestas
type ClientResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Cedula  string `json:"cedula,omitempty"`
	RNC     string `json:"rnc,omitempty"`
	Address string `json:"address,omitempty"`
}

// ToClientResponse convierte la entidad a su DTO de respuesta
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Cedula:  c.Cedula,
		RNC:     c.RNC,
		Address: c.Address,
	}
}

// ToClientListResponse convierte la lista de entidades a DTOs
func ToClientListResponse(clients []*client.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ToClientResponse(c))
	}
	return out
}
