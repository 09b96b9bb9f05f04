package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"go-news/internal/domain/entity"
	"go-news/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const (
	WeatherTemplate  = "weather.html"
	NotFoundTemplate = "not_found.html"
	ErrorTemplate    = "error.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// WeatherPage is the data behind weather.html
type WeatherPage struct {
	BasePath      string
	Title         string
	States        []entity.State
	Cities        []entity.City
	SelectedState string
	SelectedCity  string
	Weather       model.WeatherResponse
}

// MessagePage is the data behind not_found.html and error.html
type MessagePage struct {
	BasePath string
	Title    string
	Message  string
}

// Renderer implements echo.Renderer over the embedded templates
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
