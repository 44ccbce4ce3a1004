package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientPuertoInvalido(t *testing.T) {
	_, err := NewClient("smtp.example.com", "no-es-numero", "usuario", "clave", "Registro", "registro@example.com")
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("smtp.example.com", "587", "usuario", "clave", "Registro", "registro@example.com")
	require.NoError(t, err)
	assert.Equal(t, 587, c.port)
}

func TestGenerarHTMLBienvenida(t *testing.T) {
	html := generarHTMLBienvenida("Ana", "Lopez", "Registro de Personas")

	assert.Contains(t, html, "Ana Lopez")
	assert.Contains(t, html, "Registro de Personas")
}
