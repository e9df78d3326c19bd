package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors son los mensajes de validación agrupados por campo.
// Es la estructura que viaja en las respuestas 400: {"errors": {...}}.
type Errors map[string][]string

// Validator valida los cuerpos de las peticiones contra las reglas
// declaradas en las etiquetas de los DTOs. Un fallo de validación es un
// resultado normal, no una condición excepcional: nunca entra en pánico
// ante entradas malformadas.
type Validator struct {
	validate *validator.Validate
}

// New crea el validador. Los nombres de campo en los errores usan la
// etiqueta json del DTO, que es lo que el cliente envió.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct valida el valor y retorna los errores por campo,
// o nil cuando el valor es válido.
func (v *Validator) ValidateStruct(s interface{}) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Error de uso del validador (tipo no soportado), no de entrada
		return Errors{"_": {"estructura de datos inválida"}}
	}

	errs := make(Errors)
	for _, fe := range validationErrors {
		field := fieldPath(fe)
		errs[field] = append(errs[field], message(fe))
	}
	return errs
}

// fieldPath retorna la ruta del campo relativa al DTO, en notación del
// cliente: "details[0].quantity" en lugar de "SaleRequest.Details[0].Quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

// message traduce la regla incumplida a un mensaje legible
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual que %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return "debe incluir al menos un producto"
		}
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "datetime":
		return fmt.Sprintf("debe ser una fecha válida con formato %s", fe.Param())
	case "email":
		return "debe ser un correo válido"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
