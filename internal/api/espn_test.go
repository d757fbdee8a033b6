package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pickem-tracker/internal/config"
)

func testClient(serverURL string) *ESPNClient {
	return NewESPNClient(&config.Config{
		ESPNBaseURL: serverURL,
		ESPNCoreURL: serverURL,
	})
}

func TestSearchPlayers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apis/common/v3/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("query") != "Patrick Mahomes" || q.Get("sport") != "football" || q.Get("league") != "nfl" {
			t.Errorf("unexpected query %v", q)
		}
		if q.Get("type") != "player" {
			t.Errorf("expected player search, got type=%s", q.Get("type"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"3139477","displayName":"Patrick Mahomes","teamRelationships":[{"core":{"id":"12","abbreviation":"KC","displayName":"Kansas City Chiefs"}}]}]}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).SearchPlayers(context.Background(), "Patrick Mahomes", "football", "nfl")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	item := resp.Items[0]
	if item.DisplayName != "Patrick Mahomes" || item.ID != "3139477" {
		t.Errorf("item = %+v", item)
	}
	if len(item.TeamRelationships) != 1 || item.TeamRelationships[0].Core.Abbreviation != "KC" {
		t.Errorf("team relationships = %+v", item.TeamRelationships)
	}
}

func TestGetTeamSchedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/apis/site/v2/sports/basketball/nba/teams/7/schedule" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events":[{"date":"2099-01-10T18:00:00Z","competitions":[{"competitors":[{"team":{"abbreviation":"DEN","displayName":"Denver Nuggets"}},{"team":{"abbreviation":"LAL","displayName":"Los Angeles Lakers"}}]}]}]}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).GetTeamSchedule(context.Background(), "basketball", "nba", "7")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(resp.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(resp.Events))
	}
	comps := resp.Events[0].Competitions
	if len(comps) != 1 || len(comps[0].Competitors) != 2 {
		t.Fatalf("competitions = %+v", comps)
	}
	if comps[0].Competitors[1].Team.Abbreviation != "LAL" {
		t.Errorf("competitor = %+v", comps[0].Competitors[1])
	}
}

func TestGetNFLAthlete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/sports/football/leagues/nfl/athletes/3139477" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"position":{"name":"Quarterback","abbreviation":"QB"}}`))
	}))
	defer srv.Close()

	resp, err := testClient(srv.URL).GetNFLAthlete(context.Background(), "3139477")
	if err != nil {
		t.Fatalf("athlete: %v", err)
	}
	if resp.Position.Abbreviation != "QB" || resp.Position.Name != "Quarterback" {
		t.Errorf("position = %+v", resp.Position)
	}
}

func TestDoRequest_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).SearchPlayers(context.Background(), "anyone", "football", "nfl")
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestDoRequest_RespectsDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(srv.URL).SearchPlayers(ctx, "anyone", "football", "nfl")
	if err == nil {
		t.Fatal("expected deadline error")
	}
}
