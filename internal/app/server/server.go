package server

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	templates "github.com/wolfeidau/echo-go-templates"

	"github.com/kotche/notes/infrastructure/metrics"
	notes_serv "github.com/kotche/notes/internal/service/notes"
	users_serv "github.com/kotche/notes/internal/service/users"
	"github.com/kotche/notes/internal/views"
)

type Server struct {
	notes notes_serv.Service
	users users_serv.Service
}

func New(notes notes_serv.Service, users users_serv.Service) *Server {
	return &Server{notes: notes, users: users}
}

// NewRouter builds the echo instance: middleware, the template renderer over
// the embedded views, and every route.
func NewRouter(s *Server) (*echo.Echo, error) {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(observeResponseTime)

	render := templates.New()
	if err := render.AddWithLayoutAndIncludes(views.Content, "layouts/base.html", "includes/*.html", "templates/*.html"); err != nil {
		return nil, err
	}
	e.Renderer = render

	g := e.Group("/notes")
	g.GET("", s.ListNotes)
	g.GET("/", s.ListNotes)
	g.GET("/add", s.NoteForm)
	g.POST("/add", s.CreateNote)
	g.GET("/:id/", s.GetNote)
	g.PUT("/:id/", s.UpdateNote)
	g.DELETE("/:id/", s.DeleteNote)

	e.POST("/users/register", s.RegisterUser)

	return e, nil
}

func observeResponseTime(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		metrics.ResponseTimeHistogram.Observe(time.Since(start).Seconds())
		return err
	}
}
