package server

import (
	"embed"
	"net/http"

	"pickem-tracker/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

//go:embed ui/index.html
var uiFS embed.FS

// NewRouter builds the HTTP surface: the JSON API plus the embedded
// single-page UI at /.
func NewRouter(s *PickemServer, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID(logger))

	r.Get("/", s.Index)

	r.Route("/api", func(r chi.Router) {
		r.Post("/lookup-player", s.LookupPlayer)
		r.Get("/entries", s.ListEntries)
		r.Post("/entries", s.SaveEntry)
		r.Delete("/entries/{id}", s.DeleteEntry)
		r.Get("/export-csv", s.ExportCSV)
		r.Get("/teams", s.ListTeams)
		r.Get("/categories", s.ListCategories)
		r.Get("/category-groups", s.ListCategoryGroups)
	})

	return r
}

func (s *PickemServer) Index(w http.ResponseWriter, r *http.Request) {
	page, err := uiFS.ReadFile("ui/index.html")
	if err != nil {
		respondError(w, s.logger, http.StatusInternalServerError, "ui not available", "", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		s.logger.Error().Err(err).Msg("error writing index page")
	}
}
