package domain

import (
	"context"
	"errors"
	"time"
)

// ErrPersonaNoEncontrada indica que no existe una fila con el ID solicitado
var ErrPersonaNoEncontrada = errors.New("persona no encontrada")

// Persona representa una persona registrada en el sistema.
// Los tags JSON siguen el contrato del formulario: el ID va en mayúsculas
// porque así lo expone la tabla y lo consume el cliente.
type Persona struct {
	ID              int       `json:"ID"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellidoPaterno"`
	ApellidoMaterno string    `json:"apellidoMaterno"`
	FechaNacimiento time.Time `json:"fechaNacimiento"`
	NumeroContacto  string    `json:"numeroContacto"`
	Email           string    `json:"email"`
}

// PersonaRepository define las operaciones sobre la tabla personas
type PersonaRepository interface {
	// List devuelve todas las personas registradas en orden de ID
	List(ctx context.Context) ([]Persona, error)
	// Create inserta una nueva persona y devuelve la fila con el ID asignado
	Create(ctx context.Context, p Persona) (*Persona, error)
	// Update reemplaza los seis campos de contenido de la persona con el ID
	// dado y devuelve la fila actualizada
	Update(ctx context.Context, id int, p Persona) (*Persona, error)
	// Delete elimina la persona con el ID dado y devuelve sus valores previos
	Delete(ctx context.Context, id int) (*Persona, error)
}
