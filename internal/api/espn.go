package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"pickem-tracker/internal/config"
	"pickem-tracker/internal/constants"

	"github.com/valyala/fasthttp"
)

const userAgent = "Mozilla/5.0"

// ESPNClient talks to ESPN's public site and core APIs for player
// search, team schedules and athlete detail.
type ESPNClient struct {
	baseURL string
	coreURL string
	client  *fasthttp.Client
}

func NewESPNClient(cfg *config.Config) *ESPNClient {
	return &ESPNClient{
		baseURL: cfg.ESPNBaseURL,
		coreURL: cfg.ESPNCoreURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         constants.ExternalAPITimeout,
			WriteTimeout:        constants.ExternalAPITimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// SearchPlayers runs a player search scoped to one sport/league pair,
// e.g. ("football", "nfl") or ("basketball", "nba").
func (c *ESPNClient) SearchPlayers(ctx context.Context, query, sport, league string) (*SearchResponse, error) {
	u := fmt.Sprintf("%s/apis/common/v3/search?query=%s&limit=%d&type=player&sport=%s&league=%s",
		c.baseURL, url.QueryEscape(query), constants.SearchResultLimit, sport, league)
	return doRequest[SearchResponse](ctx, c, u)
}

// GetTeamSchedule fetches a team's schedule for the given sport/league.
func (c *ESPNClient) GetTeamSchedule(ctx context.Context, sport, league, teamID string) (*ScheduleResponse, error) {
	u := fmt.Sprintf("%s/apis/site/v2/sports/%s/%s/teams/%s/schedule", c.baseURL, sport, league, teamID)
	return doRequest[ScheduleResponse](ctx, c, u)
}

// GetNFLAthlete fetches athlete detail from the core API. The search
// payload carries no position for NFL players, this endpoint does.
func (c *ESPNClient) GetNFLAthlete(ctx context.Context, athleteID string) (*AthleteResponse, error) {
	u := fmt.Sprintf("%s/v2/sports/football/leagues/nfl/athletes/%s", c.coreURL, athleteID)
	return doRequest[AthleteResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *ESPNClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(userAgent)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type SearchResponse struct {
	Items []SearchItem `json:"items"`
}

type SearchItem struct {
	ID                string             `json:"id"`
	DisplayName       string             `json:"displayName"`
	TeamRelationships []TeamRelationship `json:"teamRelationships"`
}

type TeamRelationship struct {
	Core TeamCore `json:"core"`
}

type TeamCore struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type ScheduleResponse struct {
	Events []ScheduleEvent `json:"events"`
}

type ScheduleEvent struct {
	Date         string        `json:"date"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	Competitors []Competitor `json:"competitors"`
}

type Competitor struct {
	Team TeamInfo `json:"team"`
}

type TeamInfo struct {
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"displayName"`
}

type AthleteResponse struct {
	Position AthletePosition `json:"position"`
}

type AthletePosition struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}
