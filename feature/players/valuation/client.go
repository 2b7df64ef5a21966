package valuation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"player-enricher/core/reconcile"
	"player-enricher/core/utils"
)

// Fields of the valuation relation, in order.
var Fields = []string{
	reconcile.FieldPlayerID,
	"fantasy_calc_value",
	"fc_rank",
	"fc_position_rank",
	"trend_30_day",
	"redraft_value",
}

// ErrBadStatus is returned when the API answers outside 2xx.
var ErrBadStatus = errors.New("unexpected valuation status")

const userAgent = "player-enricher/1.0"

// Report counts what Decode kept and dropped.
type Report struct {
	// Entries is the number of entries in the response.
	Entries int `json:"entries"`
	// Players counts rows in the relation.
	Players int `json:"players"`
	// MissingID counts entries without a Sleeper id.
	MissingID int `json:"missing_id"`
	// Duplicates counts entries whose id was already seen.
	Duplicates int `json:"duplicates"`
}

// Client fetches current player values.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a valuation client. A nil httpClient gets one bounded
// by cfg.TimeoutSeconds.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.TimeoutSeconds
		if timeout <= 0 {
			timeout = 30
		}
		httpClient = &http.Client{Timeout: time.Duration(timeout) * time.Second}
	}
	return &Client{cfg: cfg, http: httpClient}
}

// URL returns the request URL for the configured league settings.
func (c *Client) URL() string {
	q := url.Values{}
	q.Set("isDynasty", strconv.FormatBool(c.cfg.Dynasty))
	q.Set("numQbs", strconv.Itoa(c.cfg.NumQBs))
	q.Set("ppr", strconv.FormatFloat(c.cfg.PPR, 'f', -1, 64))
	q.Set("numTeams", strconv.Itoa(c.cfg.NumTeams))
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/values/current?" + q.Encode()
}

// Fetch downloads and decodes the current values.
func (c *Client) Fetch(ctx context.Context) (*reconcile.Relation, Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to build valuation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to fetch valuations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, Report{}, fmt.Errorf("%w: %d %s", ErrBadStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return Decode(resp.Body)
}

type entry struct {
	Player struct {
		Name      string `json:"name"`
		SleeperID any    `json:"sleeperId"`
	} `json:"player"`
	Value        json.Number `json:"value"`
	OverallRank  json.Number `json:"overallRank"`
	PositionRank json.Number `json:"positionRank"`
	Trend30Day   json.Number `json:"trend30Day"`
	RedraftValue json.Number `json:"redraftValue"`
}

// Decode reads a values response into the valuation relation keyed by
// player_id. Entries without a Sleeper id are skipped; the first entry
// for an id wins.
func Decode(r io.Reader) (*reconcile.Relation, Report, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var entries []entry
	if err := dec.Decode(&entries); err != nil {
		return nil, Report{}, fmt.Errorf("failed to decode valuations: %w", err)
	}

	report := Report{Entries: len(entries)}
	rel := reconcile.NewRelation("valuation", Fields...)
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		id := strings.TrimSpace(utils.ToString(e.Player.SleeperID))
		if id == "" {
			report.MissingID++
			continue
		}
		if _, dup := seen[id]; dup {
			report.Duplicates++
			continue
		}
		seen[id] = struct{}{}

		rel.Append(reconcile.Record{
			reconcile.FieldPlayerID: reconcile.String(id),
			"fantasy_calc_value":    reconcile.Number(e.Value.String()),
			"fc_rank":               reconcile.Number(e.OverallRank.String()),
			"fc_position_rank":      reconcile.Number(e.PositionRank.String()),
			"trend_30_day":          reconcile.Number(e.Trend30Day.String()),
			"redraft_value":         reconcile.Number(e.RedraftValue.String()),
		})
	}
	report.Players = rel.Len()

	return rel, report, nil
}
