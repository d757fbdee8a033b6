package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/refdata"
	"pickem-tracker/internal/store"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// csvColumns is the fixed export column order. Clients and spreadsheets
// depend on it, do not reorder.
var csvColumns = []string{"id", "player_name", "team", "opponent", "position", "stat_category", "multiplier", "level"}

// EntryService applies CRUD operations to the entry collection. Every
// mutation runs inside a single store update so the persisted file is
// consistent with the last acknowledged response.
type EntryService struct {
	store  *store.EntryStore
	logger zerolog.Logger
}

func NewEntryService(store *store.EntryStore, logger zerolog.Logger) *EntryService {
	return &EntryService{store: store, logger: logger}
}

func (s *EntryService) List(ctx context.Context) []domain.Entry {
	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	return s.store.Load(ctx)
}

// AddOrUpdate validates the payload and either replaces the entry with
// the matching id or appends it under a freshly assigned id.
func (s *EntryService) AddOrUpdate(ctx context.Context, entry domain.Entry) (domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	if err := validateEntry(entry); err != nil {
		return domain.Entry{}, err
	}

	var saved domain.Entry
	err := s.store.Update(ctx, func(entries []domain.Entry) ([]domain.Entry, error) {
		if entry.ID != "" {
			for i := range entries {
				if entries[i].ID == entry.ID {
					entries[i] = entry
					saved = entry
					s.logger.Info().Str("id", entry.ID).Str("player", entry.PlayerName).Msg("entry updated")
					return entries, nil
				}
			}
		}

		id, err := gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("generating entry id: %w", err)
		}
		entry.ID = id
		saved = entry
		s.logger.Info().Str("id", entry.ID).Str("player", entry.PlayerName).Msg("entry added")
		return append(entries, entry), nil
	})
	if err != nil {
		return domain.Entry{}, err
	}
	return saved, nil
}

func (s *EntryService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	return s.store.Update(ctx, func(entries []domain.Entry) ([]domain.Entry, error) {
		for i := range entries {
			if entries[i].ID == id {
				s.logger.Info().Str("id", id).Msg("entry deleted")
				return append(entries[:i], entries[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("deleting entry %s: %w", id, ErrNotFound)
	})
}

// ExportCSV renders all entries with a header row and one row per
// entry, in the fixed column order.
func (s *EntryService) ExportCSV(ctx context.Context) ([]byte, error) {
	entries := s.List(ctx)

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(csvColumns); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.PlayerName,
			e.Team,
			e.Opponent,
			e.Position,
			e.StatCategory,
			strconv.FormatFloat(e.Multiplier, 'f', -1, 64),
			strconv.Itoa(e.Level),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	s.logger.Debug().Int("rows", len(entries)).Msg("entries exported")
	return buf.Bytes(), nil
}

func (s *EntryService) Teams() []string {
	return refdata.TeamNames()
}

func (s *EntryService) Categories() []string {
	return refdata.CategoryNames()
}

func (s *EntryService) CategoryGroups() map[string][]string {
	return refdata.CategoryGroups
}

func validateEntry(entry domain.Entry) error {
	if entry.PlayerName == "" {
		return &ValidationError{Field: "player_name", Message: "player name is required"}
	}
	if entry.Level < constants.MinLevel || entry.Level > constants.MaxLevel {
		return &ValidationError{
			Field:   "level",
			Message: fmt.Sprintf("level must be between %d and %d", constants.MinLevel, constants.MaxLevel),
		}
	}
	if entry.Multiplier < 0 {
		return &ValidationError{Field: "multiplier", Message: "multiplier must not be negative"}
	}
	if entry.StatCategory == "" {
		return &ValidationError{Field: "stat_category", Message: "stat category is required"}
	}
	if !refdata.ValidCategory(entry.StatCategory) {
		return &ValidationError{
			Field:   "stat_category",
			Message: fmt.Sprintf("unsupported stat category %q", entry.StatCategory),
		}
	}
	return nil
}
