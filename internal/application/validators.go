package application

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Mensajes de validación por campo, tal como los muestra el formulario
const (
	msgNombreRequerido          = "Debe ingresar un nombre"
	msgApellidoPaternoRequerido = "Debe ingresar el apellido paterno"
	msgApellidoMaternoRequerido = "Debe ingresar el apellido materno"
	msgFechaInvalida            = "Fecha inválida, el formato debe ser AAAA-MM-DD"
	msgContactoCorto            = "El número de contacto debe tener al menos 10 dígitos"
	msgEmailInvalido            = "Correo electrónico no válido"
)

// fechaLayouts son los formatos aceptados para fechaNacimiento. El
// formulario envía AAAA-MM-DD; al editar un registro el cliente puede
// reenviar el timestamp tal como lo devolvió la base de datos.
var fechaLayouts = []string{"2006-01-02", time.RFC3339}

// Parte local, arroba, dominio con al menos un punto y sin espacios
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PersonaRequest es el cuerpo de creación/actualización: los seis campos
// de contenido, sin ID. La fecha viaja como cadena.
type PersonaRequest struct {
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
	FechaNacimiento string `json:"fechaNacimiento"`
	NumeroContacto  string `json:"numeroContacto"`
	Email           string `json:"email"`
}

// ValidationError agrupa los mensajes por campo cuando un registro no pasa
// las reglas del formulario
type ValidationError struct {
	Campos map[string]string
}

func (e *ValidationError) Error() string {
	return "datos de persona inválidos"
}

// ValidarCampo aplica la regla del campo indicado y devuelve el mensaje de
// error, o cadena vacía si el valor es válido. Los campos desconocidos se
// consideran válidos. Es una función pura: se llama en cada edición del
// formulario y otra vez antes de insertar o actualizar.
func ValidarCampo(campo, valor string) string {
	switch campo {
	case "nombre":
		if strings.TrimSpace(valor) == "" {
			return msgNombreRequerido
		}
	case "apellidoPaterno":
		if strings.TrimSpace(valor) == "" {
			return msgApellidoPaternoRequerido
		}
	case "apellidoMaterno":
		if strings.TrimSpace(valor) == "" {
			return msgApellidoMaternoRequerido
		}
	case "fechaNacimiento":
		if _, err := ParseFechaNacimiento(valor); err != nil {
			return msgFechaInvalida
		}
	case "numeroContacto":
		// Se valida longitud en caracteres, no cantidad de dígitos
		if utf8.RuneCountInString(valor) < 10 {
			return msgContactoCorto
		}
	case "email":
		if !emailRegex.MatchString(valor) {
			return msgEmailInvalido
		}
	}
	return ""
}

// Validar evalúa únicamente los campos presentes en el mapa. Pensado para
// la validación incremental: el formulario llama con el registro parcial
// actual y pinta los mensajes campo por campo.
func Validar(campos map[string]string) map[string]string {
	errores := make(map[string]string)
	for campo, valor := range campos {
		if msg := ValidarCampo(campo, valor); msg != "" {
			errores[campo] = msg
		}
	}
	return errores
}

// ValidarPersona aplica las seis reglas sobre un registro completo. Un mapa
// vacío significa que el registro es válido.
func ValidarPersona(req PersonaRequest) map[string]string {
	return Validar(map[string]string{
		"nombre":          req.Nombre,
		"apellidoPaterno": req.ApellidoPaterno,
		"apellidoMaterno": req.ApellidoMaterno,
		"fechaNacimiento": req.FechaNacimiento,
		"numeroContacto":  req.NumeroContacto,
		"email":           req.Email,
	})
}

// ParseFechaNacimiento parsea la fecha de nacimiento probando los formatos
// aceptados en orden
func ParseFechaNacimiento(valor string) (time.Time, error) {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, valor); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("fecha inválida: %q", valor)
}
