package application

import (
	"context"
	"fmt"

	"github.com/TamyKittyCat/crud-personas2/internal/domain"
	"github.com/TamyKittyCat/crud-personas2/internal/email"
	"github.com/sirupsen/logrus"
)

// PersonaService expone las cuatro operaciones CRUD sobre la colección de
// personas. Cada operación ejecuta exactamente una sentencia contra la base
// de datos; no hay transacciones entre operaciones ni reintentos.
type PersonaService struct {
	repo        domain.PersonaRepository
	emailClient *email.Client
}

// NewPersonaService crea una nueva instancia del servicio de personas. El
// cliente de email puede ser nil; en ese caso no se envían correos.
func NewPersonaService(repo domain.PersonaRepository, emailClient *email.Client) *PersonaService {
	return &PersonaService{
		repo:        repo,
		emailClient: emailClient,
	}
}

// List devuelve todas las personas registradas
func (s *PersonaService) List(ctx context.Context) ([]domain.Persona, error) {
	personas, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error al listar personas: %w", err)
	}
	return personas, nil
}

// Create valida el registro, inserta la fila y devuelve la persona con su
// ID asignado. Tras el registro envía un correo de bienvenida si hay
// cliente de email configurado.
func (s *PersonaService) Create(ctx context.Context, req PersonaRequest) (*domain.Persona, error) {
	persona, err := s.construirPersona(req)
	if err != nil {
		return nil, err
	}

	creada, err := s.repo.Create(ctx, *persona)
	if err != nil {
		return nil, fmt.Errorf("error al registrar persona: %w", err)
	}

	s.enviarBienvenida(creada)

	return creada, nil
}

// Update valida el registro y reemplaza los seis campos de contenido de la
// persona con el ID dado. El ID nunca cambia.
func (s *PersonaService) Update(ctx context.Context, id int, req PersonaRequest) (*domain.Persona, error) {
	persona, err := s.construirPersona(req)
	if err != nil {
		return nil, err
	}

	actualizada, err := s.repo.Update(ctx, id, *persona)
	if err != nil {
		return nil, err
	}

	return actualizada, nil
}

// Delete elimina la persona con el ID dado y devuelve sus valores previos
func (s *PersonaService) Delete(ctx context.Context, id int) (*domain.Persona, error) {
	eliminada, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	return eliminada, nil
}

// construirPersona aplica las reglas del formulario y convierte el request
// en una entidad. El formulario valida en el navegador, pero las mismas
// reglas se aplican aquí para rechazar datos inválidos que lleguen
// directamente a la API.
func (s *PersonaService) construirPersona(req PersonaRequest) (*domain.Persona, error) {
	if errores := ValidarPersona(req); len(errores) > 0 {
		return nil, &ValidationError{Campos: errores}
	}

	fecha, err := ParseFechaNacimiento(req.FechaNacimiento)
	if err != nil {
		return nil, &ValidationError{Campos: map[string]string{"fechaNacimiento": msgFechaInvalida}}
	}

	return &domain.Persona{
		Nombre:          req.Nombre,
		ApellidoPaterno: req.ApellidoPaterno,
		ApellidoMaterno: req.ApellidoMaterno,
		FechaNacimiento: fecha,
		NumeroContacto:  req.NumeroContacto,
		Email:           req.Email,
	}, nil
}

// enviarBienvenida envía el correo de bienvenida. Un fallo de envío se
// registra pero nunca hace fallar el registro.
func (s *PersonaService) enviarBienvenida(p *domain.Persona) {
	if s.emailClient == nil {
		return
	}

	if err := s.emailClient.SendBienvenida(p.Nombre, p.ApellidoPaterno, p.Email); err != nil {
		logrus.WithError(err).WithField("ID", p.ID).Warn("No se pudo enviar el correo de bienvenida")
	}
}
