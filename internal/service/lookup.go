package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"pickem-tracker/internal/api"
	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"
	"pickem-tracker/internal/domain"
	"pickem-tracker/internal/refdata"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PlayerSource is the slice of the ESPN client the lookup needs. The
// provider hides behind it so a swap or schema drift touches one place.
type PlayerSource interface {
	SearchPlayers(ctx context.Context, query, sport, league string) (*api.SearchResponse, error)
	GetTeamSchedule(ctx context.Context, sport, league, teamID string) (*api.ScheduleResponse, error)
	GetNFLAthlete(ctx context.Context, athleteID string) (*api.AthleteResponse, error)
}

type cachedLookup struct {
	info    *domain.PlayerInfo
	expires time.Time
}

// LookupService resolves a player name to team, opponent and position
// via the external provider, with a bounded TTL cache and request
// collapsing for concurrent lookups of the same player.
type LookupService struct {
	source PlayerSource
	logger zerolog.Logger
	ttl    time.Duration
	now    func() time.Time

	flight  singleflight.Group
	cacheMu sync.Mutex
	cache   map[string]cachedLookup
}

func NewLookupService(source *api.ESPNClient, cfg *config.Config, logger zerolog.Logger) *LookupService {
	return newLookupService(source, cfg.LookupCacheTTL, logger)
}

func newLookupService(source PlayerSource, ttl time.Duration, logger zerolog.Logger) *LookupService {
	return &LookupService{
		source: source,
		logger: logger,
		ttl:    ttl,
		now:    time.Now,
		cache:  make(map[string]cachedLookup),
	}
}

// Lookup resolves playerName within the given league ("nfl", "nba" or
// "auto"). Auto tries NFL first and falls back to NBA, matching the
// entry form's behavior.
func (s *LookupService) Lookup(ctx context.Context, playerName, league string) (*domain.PlayerInfo, error) {
	playerName = strings.TrimSpace(playerName)
	if playerName == "" {
		return nil, &ValidationError{Field: "player_name", Message: "player name is required"}
	}
	if league == "" {
		league = "auto"
	}

	key := normalizeName(playerName) + "|" + league
	if info, ok := s.cached(key); ok {
		s.logger.Debug().Str("player", playerName).Str("league", league).Msg("lookup cache hit")
		return info, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		info, err := s.resolve(ctx, playerName, league)
		if err != nil {
			return nil, err
		}
		s.store(key, info)
		return info, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.PlayerInfo), nil
}

func (s *LookupService) resolve(ctx context.Context, playerName, league string) (*domain.PlayerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	switch league {
	case "nfl":
		return s.lookupNFL(ctx, playerName)
	case "nba":
		return s.lookupNBA(ctx, playerName)
	case "auto":
		info, nflErr := s.lookupNFL(ctx, playerName)
		if nflErr == nil {
			return info, nil
		}
		var ambiguous *AmbiguousPlayerError
		if errors.As(nflErr, &ambiguous) {
			return nil, nflErr
		}

		info, nbaErr := s.lookupNBA(ctx, playerName)
		if nbaErr == nil {
			return info, nil
		}
		if errors.As(nbaErr, &ambiguous) {
			return nil, nbaErr
		}
		if errors.Is(nflErr, ErrPlayerNotFound) && errors.Is(nbaErr, ErrPlayerNotFound) {
			return nil, fmt.Errorf("no NFL or NBA player matches %q: %w", playerName, ErrPlayerNotFound)
		}
		return nil, ErrLookupUnavailable
	default:
		return nil, &ValidationError{Field: "league", Message: fmt.Sprintf("unsupported league %q", league)}
	}
}

func (s *LookupService) lookupNFL(ctx context.Context, playerName string) (*domain.PlayerInfo, error) {
	player, err := s.searchOne(ctx, playerName, "football", "nfl")
	if err != nil {
		return nil, err
	}

	info := &domain.PlayerInfo{
		Player: player.DisplayName,
		League: "NFL",
	}

	var teamID string
	if len(player.TeamRelationships) > 0 {
		core := player.TeamRelationships[0].Core
		info.TeamAbbr = core.Abbreviation
		info.Team = core.DisplayName
		if info.Team == "" {
			info.Team = refdata.NFLTeams[core.Abbreviation]
		}
		teamID = core.ID
	}

	// Position only comes from the core athlete endpoint. A failure here
	// degrades to the form default instead of failing the lookup.
	posAbbr := ""
	if player.ID != "" {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		athlete, err := s.source.GetNFLAthlete(apiCtx, player.ID)
		cancel()
		if err != nil {
			s.logger.Warn().Err(err).Str("athlete_id", player.ID).Msg("athlete detail fetch failed")
		} else {
			posAbbr = athlete.Position.Abbreviation
		}
	}
	info.Position = refdata.FormPosition(posAbbr)

	info.Opponent, info.GameDate = s.nextOpponent(ctx, "football", "nfl", teamID, info.TeamAbbr, refdata.NFLTeams)
	return info, nil
}

func (s *LookupService) lookupNBA(ctx context.Context, playerName string) (*domain.PlayerInfo, error) {
	player, err := s.searchOne(ctx, playerName, "basketball", "nba")
	if err != nil {
		return nil, err
	}

	info := &domain.PlayerInfo{
		Player:   player.DisplayName,
		League:   "NBA",
		Position: "NBA Player",
	}

	var teamID string
	if len(player.TeamRelationships) > 0 {
		core := player.TeamRelationships[0].Core
		info.TeamAbbr = core.Abbreviation
		info.Team = core.DisplayName
		if info.Team == "" {
			info.Team = refdata.NBATeams[core.Abbreviation]
		}
		teamID = core.ID
	}

	info.Opponent, info.GameDate = s.nextOpponent(ctx, "basketball", "nba", teamID, info.TeamAbbr, refdata.NBATeams)
	return info, nil
}

// searchOne runs a player search and narrows it to a single match,
// preferring an accent-insensitive exact name match when several come back.
func (s *LookupService) searchOne(ctx context.Context, playerName, sport, league string) (*api.SearchItem, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.source.SearchPlayers(apiCtx, playerName, sport, league)
	if err != nil {
		s.logger.Warn().Err(err).Str("player", playerName).Str("league", league).Msg("player search failed")
		return nil, fmt.Errorf("searching %s players: %w", league, ErrLookupUnavailable)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("no %s player matches %q: %w", strings.ToUpper(league), playerName, ErrPlayerNotFound)
	}
	if len(resp.Items) == 1 {
		return &resp.Items[0], nil
	}

	want := normalizeName(playerName)
	for i := range resp.Items {
		if normalizeName(resp.Items[i].DisplayName) == want {
			return &resp.Items[i], nil
		}
	}

	limit := len(resp.Items)
	if limit > constants.CandidateListLimit {
		limit = constants.CandidateListLimit
	}
	candidates := make([]domain.PlayerCandidate, 0, limit)
	for _, item := range resp.Items[:limit] {
		abbr := "?"
		if len(item.TeamRelationships) > 0 {
			abbr = item.TeamRelationships[0].Core.Abbreviation
		}
		candidates = append(candidates, domain.PlayerCandidate{Name: item.DisplayName, Team: abbr})
	}
	return nil, &AmbiguousPlayerError{Candidates: candidates}
}

// nextOpponent walks the team schedule for the first game on or after
// the cutoff date and names the other competitor. Schedule failures
// degrade to blank fields, they never fail the lookup.
func (s *LookupService) nextOpponent(ctx context.Context, sport, league, teamID, teamAbbr string, teams map[string]string) (string, string) {
	if teamID == "" {
		return "", ""
	}

	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	sched, err := s.source.GetTeamSchedule(apiCtx, sport, league, teamID)
	if err != nil {
		s.logger.Warn().Err(err).Str("team_id", teamID).Str("league", league).Msg("schedule fetch failed")
		return "", ""
	}

	now := s.now()
	if now.Hour() >= constants.ScheduleCutoffHour {
		now = now.Add(24 * time.Hour)
	}
	cutoff := now.Format("2006-01-02")

	for _, event := range sched.Events {
		if event.Date == "" {
			continue
		}
		eventTime, err := time.Parse(time.RFC3339, event.Date)
		if err != nil {
			continue
		}
		if eventTime.Format("2006-01-02") < cutoff {
			continue
		}
		if len(event.Competitions) == 0 {
			return "", ""
		}
		for _, comp := range event.Competitions[0].Competitors {
			if comp.Team.Abbreviation == teamAbbr {
				continue
			}
			opponent := teams[comp.Team.Abbreviation]
			if opponent == "" {
				opponent = comp.Team.DisplayName
			}
			return opponent, eventTime.Format("2006-01-02")
		}
		return "", ""
	}
	return "", ""
}

func (s *LookupService) cached(key string) (*domain.PlayerInfo, bool) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	c, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if s.now().After(c.expires) {
		delete(s.cache, key)
		return nil, false
	}
	return c.info, true
}

func (s *LookupService) store(key string, info *domain.PlayerInfo) {
	if s.ttl <= 0 {
		return
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if len(s.cache) >= constants.LookupCacheSize {
		now := s.now()
		for k, c := range s.cache {
			if now.After(c.expires) {
				delete(s.cache, k)
			}
		}
		if len(s.cache) >= constants.LookupCacheSize {
			return
		}
	}
	s.cache[key] = cachedLookup{info: info, expires: s.now().Add(s.ttl)}
}

// normalizeName lowercases and strips diacritics so "Dončić" and
// "doncic" compare equal.
func normalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
