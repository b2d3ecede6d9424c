// Package report renders the result email sent after a completed quiz.
package report

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"math"
	texttemplate "text/template"
	"time"

	"via-proposito/internal/domain"
)

//go:embed templates/*
var templatesFS embed.FS

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.ParseFS(templatesFS, "templates/result.html"))
	textTmpl = texttemplate.Must(texttemplate.ParseFS(templatesFS, "templates/result.txt"))
)

// Profile is the reader-facing copy of one category.
type Profile struct {
	Description string
	Advice      string
}

var profiles = map[domain.Category]Profile{
	domain.CategoryDesenganchados: {
		Description: "Tu perfil muestra una tendencia a mantenerte distante de compromisos profundos. Prefieres la independencia y evitas situaciones que requieran involucramiento emocional o social intenso.",
		Advice:      "Intenta encontrar un equilibrio entre tu independencia y el establecimiento de vínculos más profundos. Pequeños pasos como dedicar tiempo de calidad a tus relaciones más cercanas pueden marcar una gran diferencia.",
	},
	domain.CategorySonadores: {
		Description: "Tu perfil refleja que tienes muchas ideas y aspiraciones, pero puede que te falte concreción en tus planes. Tiendes a imaginar escenarios ideales sin dar necesariamente los pasos prácticos para alcanzarlos.",
		Advice:      "Canaliza tu creatividad estableciendo metas concretas y alcanzables. Divide tus grandes sueños en pasos pequeños y medibles que puedas ir completando.",
	},
	domain.CategoryAficionados: {
		Description: "Tu perfil indica que exploras muchas áreas de interés sin comprometerte profundamente con ninguna. Disfrutas la variedad y las nuevas experiencias, pero puedes encontrar difícil persistir en un solo camino.",
		Advice:      "Identifica qué áreas te apasionan realmente y permite que algunas de ellas evolucionen hacia un compromiso más profundo. La especialización en algunas áreas no significa abandonar tu versatilidad.",
	},
	domain.CategoryComprometidos: {
		Description: "Tu perfil demuestra un alto nivel de compromiso con tus relaciones, objetivos y comunidad. Tomas en serio tus responsabilidades y trabajas consistentemente hacia tus metas.",
		Advice:      "Tu compromiso es una fortaleza valiosa. Asegúrate de equilibrarlo con momentos de flexibilidad y descanso para evitar el agotamiento y seguir disfrutando de tus proyectos a largo plazo.",
	},
}

// ProfileFor returns the copy for c. Unknown categories get a generic thank-you.
func ProfileFor(c domain.Category) Profile {
	if p, ok := profiles[c]; ok {
		return p
	}
	return Profile{Description: "Gracias por completar el test."}
}

// Subject is the email subject for a result in category c.
func Subject(c domain.Category) string {
	return fmt.Sprintf("Tus Resultados: Perfil %s - Via Propósito", c.Title())
}

type view struct {
	Title       string
	Color       string
	Description string
	Advice      string
	Score       int
	MaxScore    int
	Percentage  int
	PublicURL   string
	Year        int
}

// Render builds the result email for the winning category of a result.
func Render(to string, winner domain.CategoryResult, publicURL string, now time.Time) (*domain.EmailMessage, error) {
	profile := ProfileFor(winner.Category)
	v := view{
		Title:       winner.Category.Title(),
		Color:       winner.Category.Color(),
		Description: profile.Description,
		Advice:      profile.Advice,
		Score:       winner.Score,
		MaxScore:    winner.Category.MaxScore(),
		Percentage:  int(math.Round(winner.Percentage())),
		PublicURL:   publicURL,
		Year:        now.Year(),
	}

	var html, text bytes.Buffer
	if err := htmlTmpl.Execute(&html, v); err != nil {
		return nil, fmt.Errorf("render html report: %w", err)
	}
	if err := textTmpl.Execute(&text, v); err != nil {
		return nil, fmt.Errorf("render text report: %w", err)
	}

	return &domain.EmailMessage{
		To:       to,
		Subject:  Subject(winner.Category),
		TextBody: text.String(),
		HTMLBody: html.String(),
	}, nil
}
