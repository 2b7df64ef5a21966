package registry

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"player-enricher/core/names"
	"player-enricher/core/reconcile"
	"player-enricher/core/utils"
)

// Fields of the registry relation, in order.
var Fields = []string{
	reconcile.FieldPlayerID,
	"full_name",
	"position",
	"team",
	"age",
	reconcile.FieldNormalizedName,
}

// ErrInvalidDocument is returned when the registry document is neither a JSON
// object keyed by id nor a JSON array of players.
var ErrInvalidDocument = errors.New("invalid registry document")

// Report counts what Decode kept and dropped.
type Report struct {
	// Players counts rows in the relation.
	Players int `json:"players"`
	// MissingID counts entries dropped for lacking a player_id.
	MissingID int `json:"missing_id"`
	// Duplicates counts entries dropped because their id was already seen.
	Duplicates int `json:"duplicates"`
	// Unnamed counts kept players whose name normalized to "".
	Unnamed int `json:"unnamed"`
}

// Decode reads a registry document into the canonical relation. The document
// is either {"<id>": {...}} or [{...}]. Rows are ordered by player id.
func Decode(r io.Reader) (*reconcile.Relation, Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to read registry: %w", err)
	}

	entries, err := entriesOf(data)
	if err != nil {
		return nil, Report{}, err
	}

	return Build(entries)
}

// Build turns decoded player entries into the registry relation.
func Build(entries []map[string]any) (*reconcile.Relation, Report, error) {
	var report Report
	seen := make(map[string]struct{}, len(entries))
	records := make([]reconcile.Record, 0, len(entries))

	for _, e := range entries {
		id := strings.TrimSpace(utils.ToString(e["player_id"]))
		if id == "" {
			report.MissingID++
			continue
		}
		if _, dup := seen[id]; dup {
			report.Duplicates++
			continue
		}
		seen[id] = struct{}{}

		name := displayName(e)
		normalized := names.NormalizeString(name)
		if normalized == "" {
			report.Unnamed++
		}

		records = append(records, reconcile.Record{
			reconcile.FieldPlayerID:       reconcile.String(id),
			"full_name":                   textOrNull(name),
			"position":                    textOrNull(utils.ToString(e["position"])),
			"team":                        textOrNull(utils.ToString(e["team"])),
			"age":                         reconcile.Number(utils.ToString(e["age"])),
			reconcile.FieldNormalizedName: reconcile.String(normalized),
		})
	}

	slices.SortStableFunc(records, func(a, b reconcile.Record) int {
		return compareIDs(a.Text(reconcile.FieldPlayerID), b.Text(reconcile.FieldPlayerID))
	})

	rel := reconcile.NewRelation("registry", Fields...)
	for _, rec := range records {
		rel.Append(rec)
	}
	report.Players = rel.Len()

	return rel, report, nil
}

func entriesOf(data []byte) ([]map[string]any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	switch data[0] {
	case '{':
		var byID map[string]map[string]any
		if err := dec.Decode(&byID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		out := make([]map[string]any, 0, len(byID))
		for key, e := range byID {
			if e == nil {
				continue
			}
			// Sleeper keys the document by the same id the entry carries.
			if _, ok := e["player_id"]; !ok {
				e["player_id"] = key
			}
			out = append(out, e)
		}
		return out, nil
	case '[':
		var list []map[string]any
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return slices.DeleteFunc(list, func(e map[string]any) bool { return e == nil }), nil
	default:
		return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidDocument, data[0])
	}
}

func displayName(e map[string]any) string {
	if full := strings.TrimSpace(utils.ToString(e["full_name"])); full != "" {
		return full
	}
	first := strings.TrimSpace(utils.ToString(e["first_name"]))
	last := strings.TrimSpace(utils.ToString(e["last_name"]))
	return strings.TrimSpace(first + " " + last)
}

func textOrNull(s string) reconcile.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return reconcile.Null()
	}
	return reconcile.String(s)
}

// compareIDs orders numeric ids numerically and places them before
// non-numeric ids such as team defenses.
func compareIDs(a, b string) int {
	na, errA := strconv.ParseUint(a, 10, 64)
	nb, errB := strconv.ParseUint(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}
