package report

import (
	"testing"
	"time"

	"via-proposito/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "Tus Resultados: Perfil Soñador - Via Propósito", Subject(domain.CategorySonadores))
	assert.Equal(t, "Tus Resultados: Perfil Comprometido - Via Propósito", Subject(domain.CategoryComprometidos))
}

func TestProfileFor(t *testing.T) {
	for _, c := range domain.Categories {
		p := ProfileFor(c)
		assert.NotEmpty(t, p.Description, c.String())
		assert.NotEmpty(t, p.Advice, c.String())
	}

	fallback := ProfileFor(domain.Category("curiosos"))
	assert.Equal(t, "Gracias por completar el test.", fallback.Description)
	assert.Empty(t, fallback.Advice)
}

func TestRender(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	winner := domain.CategoryResult{Category: domain.CategoryComprometidos, Score: 30, Order: 4}

	msg, err := Render("ana@example.com", winner, "https://viaproposito.example", now)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, Subject(domain.CategoryComprometidos), msg.Subject)

	assert.Contains(t, msg.HTMLBody, "Tu Perfil: Comprometido")
	assert.Contains(t, msg.HTMLBody, "#3B82F6")
	assert.Contains(t, msg.HTMLBody, "30 de 40")
	assert.Contains(t, msg.HTMLBody, "(75%)")
	assert.Contains(t, msg.HTMLBody, `href="https://viaproposito.example"`)
	assert.Contains(t, msg.HTMLBody, "2025 Via Propósito")

	assert.Contains(t, msg.TextBody, "Tu Perfil: Comprometido")
	assert.Contains(t, msg.TextBody, "Consejo personalizado:")
	assert.Contains(t, msg.TextBody, "https://viaproposito.example")
	assert.NotContains(t, msg.TextBody, "<div")
}

func TestRender_WithoutPublicURL(t *testing.T) {
	winner := domain.CategoryResult{Category: domain.CategoryDesenganchados, Score: 9, Order: 1}

	msg, err := Render("ana@example.com", winner, "", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "Visitar Via Propósito")
	assert.NotContains(t, msg.TextBody, "Visita Via Propósito")
	assert.Contains(t, msg.HTMLBody, "(25%)")
}
