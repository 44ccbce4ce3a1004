package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personaValida() PersonaRequest {
	return PersonaRequest{
		Nombre:          "Ana",
		ApellidoPaterno: "Lopez",
		ApellidoMaterno: "Diaz",
		FechaNacimiento: "2000-01-01",
		NumeroContacto:  "5551234567",
		Email:           "ana@example.com",
	}
}

func TestValidarPersonaValida(t *testing.T) {
	errores := ValidarPersona(personaValida())
	assert.Empty(t, errores)
}

func TestValidarPersonaCampoInvalido(t *testing.T) {
	tests := []struct {
		name      string
		modificar func(*PersonaRequest)
		campo     string
		mensaje   string
	}{
		{
			name:      "nombre vacío",
			modificar: func(r *PersonaRequest) { r.Nombre = "" },
			campo:     "nombre",
			mensaje:   "Debe ingresar un nombre",
		},
		{
			name:      "nombre solo espacios",
			modificar: func(r *PersonaRequest) { r.Nombre = "   " },
			campo:     "nombre",
			mensaje:   "Debe ingresar un nombre",
		},
		{
			name:      "apellido paterno vacío",
			modificar: func(r *PersonaRequest) { r.ApellidoPaterno = "" },
			campo:     "apellidoPaterno",
			mensaje:   "Debe ingresar el apellido paterno",
		},
		{
			name:      "apellido materno vacío",
			modificar: func(r *PersonaRequest) { r.ApellidoMaterno = "" },
			campo:     "apellidoMaterno",
			mensaje:   "Debe ingresar el apellido materno",
		},
		{
			name:      "fecha no parseable",
			modificar: func(r *PersonaRequest) { r.FechaNacimiento = "no-es-fecha" },
			campo:     "fechaNacimiento",
			mensaje:   "Fecha inválida, el formato debe ser AAAA-MM-DD",
		},
		{
			name:      "contacto demasiado corto",
			modificar: func(r *PersonaRequest) { r.NumeroContacto = "123" },
			campo:     "numeroContacto",
			mensaje:   "El número de contacto debe tener al menos 10 dígitos",
		},
		{
			name:      "email sin arroba",
			modificar: func(r *PersonaRequest) { r.Email = "not-an-email" },
			campo:     "email",
			mensaje:   "Correo electrónico no válido",
		},
		{
			name:      "email sin punto en el dominio",
			modificar: func(r *PersonaRequest) { r.Email = "ana@example" },
			campo:     "email",
			mensaje:   "Correo electrónico no válido",
		},
		{
			name:      "email con espacios",
			modificar: func(r *PersonaRequest) { r.Email = "ana lopez@example.com" },
			campo:     "email",
			mensaje:   "Correo electrónico no válido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := personaValida()
			tt.modificar(&req)

			errores := ValidarPersona(req)

			// El error aparece únicamente en el campo modificado
			require.Len(t, errores, 1)
			assert.Equal(t, tt.mensaje, errores[tt.campo])
		})
	}
}

func TestValidarSemanticaLaxa(t *testing.T) {
	// Longitud de cadena, no dígitos: diez letras pasan
	req := personaValida()
	req.NumeroContacto = "abcdefghij"
	assert.Empty(t, ValidarPersona(req))

	// La longitud se cuenta en caracteres: diez caracteres no ASCII pasan
	// aunque ocupen más de diez bytes
	req = personaValida()
	req.NumeroContacto = "ññññññññññ"
	assert.Empty(t, ValidarPersona(req))

	req = personaValida()
	req.NumeroContacto = "ñññññññññ"
	assert.Equal(t,
		map[string]string{"numeroContacto": "El número de contacto debe tener al menos 10 dígitos"},
		ValidarPersona(req))

	// Fechas futuras pasan: solo se valida el formato
	req = personaValida()
	req.FechaNacimiento = "2099-12-31"
	assert.Empty(t, ValidarPersona(req))

	// El timestamp que devuelve la base de datos también es válido
	req = personaValida()
	req.FechaNacimiento = "2000-01-01T00:00:00Z"
	assert.Empty(t, ValidarPersona(req))
}

func TestValidarParcial(t *testing.T) {
	// Solo se evalúan los campos presentes en el mapa
	errores := Validar(map[string]string{
		"nombre": "Ana",
		"email":  "mal",
	})

	require.Len(t, errores, 1)
	assert.Equal(t, "Correo electrónico no válido", errores["email"])
	assert.NotContains(t, errores, "numeroContacto")
	assert.NotContains(t, errores, "fechaNacimiento")
}

func TestValidarCampoDesconocido(t *testing.T) {
	assert.Empty(t, ValidarCampo("otroCampo", ""))
}

func TestParseFechaNacimiento(t *testing.T) {
	fecha, err := ParseFechaNacimiento("2000-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2000, fecha.Year())

	_, err = ParseFechaNacimiento("01/02/2000")
	assert.Error(t, err)
}
