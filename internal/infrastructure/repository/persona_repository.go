package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/TamyKittyCat/crud-personas2/internal/domain"
)

// Columnas de la tabla personas. El esquema heredado usa identificadores
// camelCase entre comillas, con el ID en mayúsculas.
const columnasPersona = `"ID", "nombre", "apellidoPaterno", "apellidoMaterno", "fechaNacimiento", "numeroContacto", "email"`

type personaRepository struct {
	db *sql.DB
}

// NewPersonaRepository crea una nueva instancia del repositorio de personas
func NewPersonaRepository(db *sql.DB) domain.PersonaRepository {
	return &personaRepository{db: db}
}

func escanearPersona(row *sql.Row) (*domain.Persona, error) {
	var p domain.Persona
	err := row.Scan(
		&p.ID,
		&p.Nombre,
		&p.ApellidoPaterno,
		&p.ApellidoMaterno,
		&p.FechaNacimiento,
		&p.NumeroContacto,
		&p.Email,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve todas las personas registradas en orden de ID
func (r *personaRepository) List(ctx context.Context) ([]domain.Persona, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+columnasPersona+` FROM personas ORDER BY "ID"`)
	if err != nil {
		return nil, fmt.Errorf("error al consultar personas: %w", err)
	}
	defer rows.Close()

	// Lista vacía se serializa como [], no como null
	personas := make([]domain.Persona, 0)
	for rows.Next() {
		var p domain.Persona
		if err := rows.Scan(
			&p.ID,
			&p.Nombre,
			&p.ApellidoPaterno,
			&p.ApellidoMaterno,
			&p.FechaNacimiento,
			&p.NumeroContacto,
			&p.Email,
		); err != nil {
			return nil, fmt.Errorf("error al leer persona: %w", err)
		}
		personas = append(personas, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error al recorrer personas: %w", err)
	}

	return personas, nil
}

// Create inserta una nueva persona y devuelve la fila con el ID asignado
func (r *personaRepository) Create(ctx context.Context, p domain.Persona) (*domain.Persona, error) {
	query := `
		INSERT INTO personas ("nombre", "apellidoPaterno", "apellidoMaterno", "fechaNacimiento", "numeroContacto", "email")
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columnasPersona

	creada, err := escanearPersona(r.db.QueryRowContext(ctx, query,
		p.Nombre,
		p.ApellidoPaterno,
		p.ApellidoMaterno,
		p.FechaNacimiento,
		p.NumeroContacto,
		p.Email,
	))
	if err != nil {
		return nil, fmt.Errorf("error al crear persona: %w", err)
	}

	return creada, nil
}

// Update reemplaza los seis campos de contenido de la persona con el ID dado
func (r *personaRepository) Update(ctx context.Context, id int, p domain.Persona) (*domain.Persona, error) {
	query := `
		UPDATE personas
		SET "nombre" = $1, "apellidoPaterno" = $2, "apellidoMaterno" = $3,
		    "fechaNacimiento" = $4, "numeroContacto" = $5, "email" = $6
		WHERE "ID" = $7
		RETURNING ` + columnasPersona

	actualizada, err := escanearPersona(r.db.QueryRowContext(ctx, query,
		p.Nombre,
		p.ApellidoPaterno,
		p.ApellidoMaterno,
		p.FechaNacimiento,
		p.NumeroContacto,
		p.Email,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPersonaNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error al actualizar persona: %w", err)
	}

	return actualizada, nil
}

// Delete elimina la persona con el ID dado y devuelve sus valores previos
func (r *personaRepository) Delete(ctx context.Context, id int) (*domain.Persona, error) {
	query := `DELETE FROM personas WHERE "ID" = $1 RETURNING ` + columnasPersona

	eliminada, err := escanearPersona(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPersonaNoEncontrada
	}
	if err != nil {
		return nil, fmt.Errorf("error al eliminar persona: %w", err)
	}

	return eliminada, nil
}
