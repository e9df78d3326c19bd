package client

import (
	"context"
	"regexp"
	"strings"
)

// Mensajes de rechazo del verificador. El primero que falla gana;
// nunca se acumulan varios fallos en una misma respuesta.
const (
	MsgRequiredFields = "Todos los campos (nombre, correo, teléfono) son requeridos"
	MsgInvalidEmail   = "El formato del email no es válido"
	MsgInvalidPhone   = "El formato del teléfono no es válido"
	MsgDuplicateEmail = "Ya existe un cliente con ese correo electrónico"
	MsgDuplicatePhone = "Ya existe un cliente con ese número de teléfono"
	MsgDuplicateCedula = "Ya existe un cliente con esa cédula"
	MsgDuplicateRNC   = "Ya existe un cliente con ese RNC"
	MsgInternalError  = "Error interno del servidor al validar datos"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{7,20}$`)
)

// CheckInput son los datos del cliente a verificar. ExcludeID es el ID
// del propio registro durante una actualización; cero en una creación.
type CheckInput struct {
	Name      string
	Email     string
	Phone     string
	Cedula    string
	RNC       string
	ExcludeID int64
}

// CheckResult es el resultado del verificador de duplicados
type CheckResult struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// rule es una regla de validación independiente. Retorna el mensaje de
// rechazo cuando la regla falla, o cadena vacía cuando pasa.
type rule func(ctx context.Context, lookups Lookups, in CheckInput) (string, error)

// Checker verifica que los campos de identidad de un cliente no estén
// duplicados antes de crearlo o actualizarlo. Ejecuta una lista
// ordenada de reglas con corte en el primer fallo.
//
// La verificación no es atómica respecto de la escritura posterior:
// dos peticiones concurrentes pueden pasar ambas y chocar recién en la
// restricción de unicidad de la base de datos, que es la autoridad
// final. El verificador existe para dar mensajes amigables en el caso
// común, no como garantía de exclusión.
type Checker struct {
	lookups Lookups
	rules   []rule
}

// NewChecker crea un verificador con el orden de reglas fijo
func NewChecker(lookups Lookups) *Checker {
	return &Checker{
		lookups: lookups,
		rules: []rule{
			checkRequiredFields,
			checkEmailFormat,
			checkPhoneFormat,
			checkEmailUnique,
			checkPhoneUnique,
			checkCedulaUnique,
			checkRNCUnique,
		},
	}
}

// Check ejecuta las reglas en orden y retorna el primer rechazo.
// Un error de la base de datos durante las consultas se convierte en un
// rechazo genérico de validación; nunca se propaga al llamador.
func (c *Checker) Check(ctx context.Context, in CheckInput) CheckResult {
	for _, r := range c.rules {
		msg, err := r(ctx, c.lookups, in)
		if err != nil {
			return CheckResult{IsValid: false, Message: MsgInternalError}
		}
		if msg != "" {
			return CheckResult{IsValid: false, Message: msg}
		}
	}
	return CheckResult{IsValid: true, Message: ""}
}

// checkRequiredFields exige nombre, correo y teléfono
func checkRequiredFields(_ context.Context, _ Lookups, in CheckInput) (string, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return MsgRequiredFields, nil
	}
	return "", nil
}

// checkEmailFormat valida el patrón local@dominio.tld
func checkEmailFormat(_ context.Context, _ Lookups, in CheckInput) (string, error) {
	if !emailPattern.MatchString(in.Email) {
		return MsgInvalidEmail, nil
	}
	return "", nil
}

// checkPhoneFormat valida 7 a 20 caracteres de dígitos, espacios, +, - y paréntesis
func checkPhoneFormat(_ context.Context, _ Lookups, in CheckInput) (string, error) {
	if !phonePattern.MatchString(in.Phone) {
		return MsgInvalidPhone, nil
	}
	return "", nil
}

// checkEmailUnique busca otro cliente con el mismo correo, sin distinguir mayúsculas
func checkEmailUnique(ctx context.Context, lookups Lookups, in CheckInput) (string, error) {
	exists, err := lookups.ExistsByEmail(ctx, in.Email, in.ExcludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return MsgDuplicateEmail, nil
	}
	return "", nil
}

// checkPhoneUnique busca otro cliente con el mismo teléfono
func checkPhoneUnique(ctx context.Context, lookups Lookups, in CheckInput) (string, error) {
	exists, err := lookups.ExistsByPhone(ctx, in.Phone, in.ExcludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return MsgDuplicatePhone, nil
	}
	return "", nil
}

// checkCedulaUnique solo aplica cuando la cédula viene con contenido
func checkCedulaUnique(ctx context.Context, lookups Lookups, in CheckInput) (string, error) {
	cedula := strings.TrimSpace(in.Cedula)
	if cedula == "" {
		return "", nil
	}
	exists, err := lookups.ExistsByCedula(ctx, cedula, in.ExcludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return MsgDuplicateCedula, nil
	}
	return "", nil
}

// checkRNCUnique solo aplica cuando el RNC viene con contenido
func checkRNCUnique(ctx context.Context, lookups Lookups, in CheckInput) (string, error) {
	rnc := strings.TrimSpace(in.RNC)
	if rnc == "" {
		return "", nil
	}
	exists, err := lookups.ExistsByRNC(ctx, rnc, in.ExcludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return MsgDuplicateRNC, nil
	}
	return "", nil
}
