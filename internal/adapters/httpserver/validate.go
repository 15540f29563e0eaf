package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/crateside/vinylvault/internal/domain"
)

// Payload validation happens here, at the boundary; store and usecase code
// assume already-validated input.

func decodeVinylCreate(r *http.Request) (*domain.VinylInput, error) {
	in, err := decodeVinylPatch(r)
	if err != nil {
		return nil, err
	}
	// artist and title are required unless the record is saved as a draft
	if in.Status == nil || *in.Status == domain.StatusActive {
		if in.Artist == nil || strings.TrimSpace(*in.Artist) == "" ||
			in.ReleaseTitle == nil || strings.TrimSpace(*in.ReleaseTitle) == "" {
			return nil, fmt.Errorf("artist and release title are required for active records")
		}
	}
	return in, nil
}

func decodeVinylPatch(r *http.Request) (*domain.VinylInput, error) {
	var in domain.VinylInput
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("invalid vinyl payload: %v", err)
	}
	if in.Format != nil && !slices.Contains(domain.VinylFormats, *in.Format) {
		return nil, fmt.Errorf("unknown format %q", *in.Format)
	}
	if in.MediaGrade != nil && !slices.Contains(domain.VinylGrades, *in.MediaGrade) {
		return nil, fmt.Errorf("unknown media grade %q", *in.MediaGrade)
	}
	if in.SleeveGrade != nil && !slices.Contains(domain.VinylGrades, *in.SleeveGrade) {
		return nil, fmt.Errorf("unknown sleeve grade %q", *in.SleeveGrade)
	}
	if in.Status != nil && !slices.Contains(domain.VinylStatuses, *in.Status) {
		return nil, fmt.Errorf("unknown status %q", *in.Status)
	}
	if in.Quantity != nil && *in.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if in.Marketplaces != nil {
		for _, m := range *in.Marketplaces {
			if !slices.Contains(domain.Marketplaces, m) {
				return nil, fmt.Errorf("unknown marketplace %q", m)
			}
		}
	}
	return &in, nil
}

func decodeMessageInput(r *http.Request) (*domain.MessageInput, error) {
	var in domain.MessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return nil, fmt.Errorf("invalid message payload: %v", err)
	}
	if in.ShopID == "" {
		return nil, fmt.Errorf("shopId is required")
	}
	if in.NetworkListingID == "" {
		return nil, fmt.Errorf("networkListingId is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("message is required")
	}
	return &in, nil
}

func decodeOrderInput(r *http.Request) (*domain.OrderInput, error) {
	var in domain.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return nil, fmt.Errorf("invalid order payload: %v", err)
	}
	if !slices.Contains(domain.SalesChannels, in.Channel) {
		return nil, fmt.Errorf("unknown channel %q", in.Channel)
	}
	if len(in.LineItems) == 0 {
		return nil, fmt.Errorf("at least one line item is required")
	}
	for i, li := range in.LineItems {
		if li.Artist == "" || li.ReleaseTitle == "" {
			return nil, fmt.Errorf("line item %d: artist and release title are required", i)
		}
		if li.Quantity < 1 {
			return nil, fmt.Errorf("line item %d: quantity must be at least 1", i)
		}
		if li.UnitPriceCents < 0 {
			return nil, fmt.Errorf("line item %d: unit price must not be negative", i)
		}
	}
	return &in, nil
}

func parseSalesFilter(q url.Values) (domain.SalesFilter, error) {
	f := domain.SalesFilter{Search: q.Get("search")}
	if ds := q.Get("startDate"); ds != "" {
		t, err := parseDate(ds)
		if err != nil {
			return f, fmt.Errorf("invalid startDate %q", ds)
		}
		f.StartDate = &t
	}
	if ds := q.Get("endDate"); ds != "" {
		t, err := parseDate(ds)
		if err != nil {
			return f, fmt.Errorf("invalid endDate %q", ds)
		}
		f.EndDate = &t
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// statsRange coerces the request parameter to a valid lookback, defaulting
// to 30 days.
func statsRange(s string) domain.StatsRange {
	switch domain.StatsRange(s) {
	case domain.Range7, domain.Range30, domain.Range90, domain.RangeAll:
		return domain.StatsRange(s)
	}
	return domain.Range30
}
