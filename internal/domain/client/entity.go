package client

import (
	"errors"
	"time"
)

var (
	ErrEmptyName  = errors.New("el nombre del cliente es obligatorio")
	ErrEmptyEmail = errors.New("el correo del cliente es obligatorio")
	ErrEmptyPhone = errors.New("el teléfono del cliente es obligatorio")
)

// Client representa un cliente de la farmacia.
// El correo y el teléfono son únicos; la cédula y el RNC son opcionales
// pero también únicos cuando están presentes.
type Client struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Cedula    string    `json:"cedula,omitempty"`
	RNC       string    `json:"rnc,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewClient crea un nuevo cliente
func NewClient(name, email, phone, cedula, rnc, address string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	now := time.Now()
	return &Client{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Cedula:    cedula,
		RNC:       rnc,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update actualiza los datos del cliente
func (c *Client) Update(name, email, phone, cedula, rnc, address string) error {
	if name == "" {
		return ErrEmptyName
	}
	if email == "" {
		return ErrEmptyEmail
	}
	if phone == "" {
		return ErrEmptyPhone
	}

	c.Name = name
	c.Email = email
	c.Phone = phone
	c.Cedula = cedula
	c.RNC = rnc
	c.Address = address
	c.UpdatedAt = time.Now()

	return nil
}
