package dto

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"tripplanner_backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlanInput carries the relational part of a create or update request.
type PlanInput struct {
	Name              string   `json:"name" validate:"required"`
	Description       string   `json:"description"`
	ImageUrls         []string `json:"imageUrls"`
	SelectedCountries []string `json:"selectedCountries"`
	Accommodations    []string `json:"accommodations"`
	Seasons           []string `json:"seasons"`
	TotalPrice        float64  `json:"totalPrice"`
	TotalCost         float64  `json:"totalCost"`
	Sell              bool     `json:"sell"`
	UserID            uint     `json:"userId"`
}

type CreatePlanRequest struct {
	Plan        PlanInput          `json:"plan" validate:"required"`
	Itineraries []models.Itinerary `json:"itineraries"`
}

type UpdatePlanRequest struct {
	Plan        PlanInput        `json:"plan" validate:"required"`
	Itineraries []ItineraryInput `json:"itineraries"`
}

// ItineraryInputKind discriminates the accepted shapes of an itinerary entry
// in an update request.
type ItineraryInputKind int

const (
	// ItineraryRef is a bare string referencing an already stored document.
	ItineraryRef ItineraryInputKind = iota
	// ItineraryReplace is an object carrying an _id whose document is
	// rewritten in place.
	ItineraryReplace
	// ItineraryNew is an object without an _id to be inserted.
	ItineraryNew
)

var ErrInvalidItineraryInput = errors.New("itinerary entry must be an id string or an object")

// ItineraryInput accepts either a document id string or a full document
// object. Objects that carry an _id replace the stored document; objects
// without one are inserted as new documents.
type ItineraryInput struct {
	Kind      ItineraryInputKind
	ID        string
	Itinerary models.Itinerary
}

func (in *ItineraryInput) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return ErrInvalidItineraryInput
	}

	switch trimmed[0] {
	case '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return ErrInvalidItineraryInput
		}
		in.Kind = ItineraryRef
		in.ID = id
		return nil
	case '{':
		var doc models.Itinerary
		if err := json.Unmarshal(data, &doc); err != nil {
			return ErrInvalidItineraryInput
		}
		if doc.ID != primitive.NilObjectID {
			in.Kind = ItineraryReplace
			in.ID = doc.ID.Hex()
		} else {
			in.Kind = ItineraryNew
		}
		in.Itinerary = doc
		return nil
	default:
		return ErrInvalidItineraryInput
	}
}

// PlanWithItineraries is the aggregated read of a plan together with its
// resolvable documents.
type PlanWithItineraries struct {
	Plan        *models.Plan       `json:"plan"`
	Itineraries []models.Itinerary `json:"itineraries"`
}

// PlanFilter is the normalized browse query. Zero-length slices mean the
// criterion is not applied.
type PlanFilter struct {
	Search         string
	Countries      []string
	Seasons        []string
	Accommodations []string
	SortOption     string
	IsAscending    bool
	BudgetMin      float64
	BudgetMax      float64
	DaysMin        int
	DaysMax        int
	Sell           bool
}

func DefaultPlanFilter() PlanFilter {
	return PlanFilter{
		SortOption:  "name",
		IsAscending: true,
		BudgetMin:   0,
		BudgetMax:   1000000,
		DaysMin:     1,
		DaysMax:     30,
		Sell:        true,
	}
}

// PlanFilterFromQuery builds a filter from raw query values, falling back to
// defaults for anything absent or unparsable. List parameters accept both
// repeated keys and a single comma-separated value; ranges are two-element
// lists in the same forms.
func PlanFilterFromQuery(values url.Values) PlanFilter {
	f := DefaultPlanFilter()

	if s := values.Get("searchQuery"); s != "" {
		f.Search = s
	}
	f.Countries = listParam(values, "selectedCountries")
	f.Seasons = listParam(values, "selectedSeasons")
	f.Accommodations = listParam(values, "selectedAccommodations")

	if s := values.Get("sortOption"); s != "" {
		f.SortOption = s
	}
	if s := values.Get("isAscending"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			f.IsAscending = b
		}
	}
	if s := values.Get("sell"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			f.Sell = b
		}
	}

	if lo, hi, ok := rangeParam(values, "budgetRange"); ok {
		f.BudgetMin, f.BudgetMax = lo, hi
	}
	if lo, hi, ok := rangeParam(values, "daysRange"); ok {
		f.DaysMin, f.DaysMax = int(lo), int(hi)
	}

	return f
}

func listParam(values url.Values, key string) []string {
	raw := values[key]
	if len(raw) == 1 && strings.Contains(raw[0], ",") {
		raw = strings.Split(raw[0], ",")
	}

	var out []string
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func rangeParam(values url.Values, key string) (float64, float64, bool) {
	parts := listParam(values, key)
	if len(parts) != 2 {
		return 0, 0, false
	}

	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
