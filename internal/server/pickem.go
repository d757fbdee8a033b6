package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PickemServer maps the HTTP surface onto the entry and lookup
// services. Handlers only decode, dispatch and translate errors.
type PickemServer struct {
	entrySvc  *service.EntryService
	lookupSvc *service.LookupService
	logger    zerolog.Logger
}

func NewPickemServer(entrySvc *service.EntryService, lookupSvc *service.LookupService, logger zerolog.Logger) *PickemServer {
	return &PickemServer{entrySvc: entrySvc, lookupSvc: lookupSvc, logger: logger}
}

type lookupRequest struct {
	PlayerName string `json:"player_name"`
	League     string `json:"league"`
}

type lookupResponse struct {
	Available bool                     `json:"available"`
	Player    string                   `json:"player,omitempty"`
	Team      string                   `json:"team,omitempty"`
	TeamAbbr  string                   `json:"team_abbr,omitempty"`
	Opponent  string                   `json:"opponent,omitempty"`
	Position  string                   `json:"position,omitempty"`
	League    string                   `json:"league,omitempty"`
	GameDate  string                   `json:"game_date,omitempty"`
	Multiple  []domain.PlayerCandidate `json:"multiple,omitempty"`
}

func (s *PickemServer) LookupPlayer(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, s.logger, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	info, err := s.lookupSvc.Lookup(r.Context(), req.PlayerName, req.League)
	if err == nil {
		respondJSON(w, s.logger, http.StatusOK, lookupResponse{
			Available: true,
			Player:    info.Player,
			Team:      info.Team,
			TeamAbbr:  info.TeamAbbr,
			Opponent:  info.Opponent,
			Position:  info.Position,
			League:    info.League,
			GameDate:  info.GameDate,
		})
		return
	}

	var validation *service.ValidationError
	var ambiguous *service.AmbiguousPlayerError
	switch {
	case errors.As(err, &validation):
		respondError(w, s.logger, http.StatusBadRequest, validation.Message, validation.Field, nil)
	case errors.As(err, &ambiguous):
		respondJSON(w, s.logger, http.StatusOK, lookupResponse{Multiple: ambiguous.Candidates})
	case errors.Is(err, service.ErrPlayerNotFound):
		respondError(w, s.logger, http.StatusNotFound, "no player matches the query", "player_name", err)
	case errors.Is(err, service.ErrLookupUnavailable):
		// The provider is down, not the request. Hand back blank
		// auto-fill fields so the client can proceed manually.
		s.logger.Warn().Err(err).Str("player", req.PlayerName).Msg("lookup degraded")
		respondJSON(w, s.logger, http.StatusOK, lookupResponse{Available: false})
	default:
		respondError(w, s.logger, http.StatusInternalServerError, "lookup failed", "", err)
	}
}

func (s *PickemServer) ListEntries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, s.logger, http.StatusOK, s.entrySvc.List(r.Context()))
}

func (s *PickemServer) SaveEntry(w http.ResponseWriter, r *http.Request) {
	var entry domain.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		respondError(w, s.logger, http.StatusBadRequest, "invalid request body", "", err)
		return
	}

	requestedID := entry.ID
	saved, err := s.entrySvc.AddOrUpdate(r.Context(), entry)
	if err != nil {
		var validation *service.ValidationError
		if errors.As(err, &validation) {
			respondError(w, s.logger, http.StatusBadRequest, validation.Message, validation.Field, nil)
			return
		}
		respondError(w, s.logger, http.StatusInternalServerError, "failed to persist entry", "", err)
		return
	}

	status := http.StatusOK
	if requestedID != saved.ID {
		status = http.StatusCreated
	}
	respondJSON(w, s.logger, status, saved)
}

func (s *PickemServer) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.entrySvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(w, s.logger, http.StatusNotFound, "entry not found", "id", nil)
			return
		}
		respondError(w, s.logger, http.StatusInternalServerError, "failed to persist deletion", "", err)
		return
	}
	respondJSON(w, s.logger, http.StatusOK, map[string]bool{"success": true})
}

func (s *PickemServer) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := s.entrySvc.ExportCSV(r.Context())
	if err != nil {
		respondError(w, s.logger, http.StatusInternalServerError, "failed to render csv", "", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="pickem_entries.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error().Err(err).Msg("error writing csv response")
	}
}

func (s *PickemServer) ListTeams(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, s.logger, http.StatusOK, s.entrySvc.Teams())
}

func (s *PickemServer) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, s.logger, http.StatusOK, s.entrySvc.Categories())
}

func (s *PickemServer) ListCategoryGroups(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, s.logger, http.StatusOK, s.entrySvc.CategoryGroups())
}
