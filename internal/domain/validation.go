package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// Violations acumula errores de validación campo por campo.
type Violations struct {
	fields []FieldError
}

// Add registra un campo inválido.
func (v *Violations) Add(path, message string) {
	v.fields = append(v.fields, FieldError{Path: path, Message: message})
}

// Check registra el campo si cond es falsa.
func (v *Violations) Check(cond bool, path, message string) {
	if !cond {
		v.Add(path, message)
	}
}

// Required registra el campo si value está vacío (ignorando espacios).
func (v *Violations) Required(path, value string) {
	v.Check(strings.TrimSpace(value) != "", path, "es obligatorio")
}

// Empty informa si no hay errores.
func (v *Violations) Empty() bool { return len(v.fields) == 0 }

// Err devuelve un *ValidationError o nil si no hubo errores.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &ValidationError{Fields: append([]FieldError(nil), v.fields...)}
}

// Email registra el campo si value no es una dirección de correo válida.
func (v *Violations) Email(path, value string) {
	addr, err := mail.ParseAddress(value)
	v.Check(err == nil && addr.Address == value, path, "email inválido")
}

// Range registra el campo si n está fuera de [lo, hi].
func (v *Violations) Range(path string, n, lo, hi int) {
	v.Check(n >= lo && n <= hi, path, fmt.Sprintf("debe estar entre %d y %d", lo, hi))
}

// OneOf registra el campo si value no pertenece a allowed.
func (v *Violations) OneOf(path, value string, allowed []string) {
	for _, a := range allowed {
		if a == value {
			return
		}
	}
	v.Add(path, "debe ser uno de: "+strings.Join(allowed, ", "))
}
