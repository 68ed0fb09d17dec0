package dto

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestItineraryInputDecodesRefString(t *testing.T) {
	var in ItineraryInput
	require.NoError(t, json.Unmarshal([]byte(`"64f1c2a9e3b0a54321012345"`), &in))

	assert.Equal(t, ItineraryRef, in.Kind)
	assert.Equal(t, "64f1c2a9e3b0a54321012345", in.ID)
}

func TestItineraryInputDecodesReplaceObject(t *testing.T) {
	oid := primitive.NewObjectID()
	body := `{"_id":"` + oid.Hex() + `","title":"Day 2 updated"}`

	var in ItineraryInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))

	assert.Equal(t, ItineraryReplace, in.Kind)
	assert.Equal(t, oid.Hex(), in.ID)
	assert.Equal(t, "Day 2 updated", in.Itinerary.Title)
}

func TestItineraryInputDecodesNewObject(t *testing.T) {
	var in ItineraryInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Fresh day"}`), &in))

	assert.Equal(t, ItineraryNew, in.Kind)
	assert.Empty(t, in.ID)
	assert.Equal(t, "Fresh day", in.Itinerary.Title)
}

func TestItineraryInputRejectsOtherShapes(t *testing.T) {
	for _, body := range []string{`42`, `true`, `[1,2]`, `null`} {
		var in ItineraryInput
		err := json.Unmarshal([]byte(body), &in)
		assert.Error(t, err, "body %s should not decode", body)
	}
}

func TestItineraryInputInsideUpdateRequest(t *testing.T) {
	body := `{
		"plan": {"name": "Trip", "userId": 7},
		"itineraries": ["64f1c2a9e3b0a54321012345", {"title": "New day"}]
	}`

	var req UpdatePlanRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.Len(t, req.Itineraries, 2)
	assert.Equal(t, ItineraryRef, req.Itineraries[0].Kind)
	assert.Equal(t, ItineraryNew, req.Itineraries[1].Kind)
	assert.Equal(t, uint(7), req.Plan.UserID)
}

func TestPlanFilterDefaults(t *testing.T) {
	f := PlanFilterFromQuery(url.Values{})

	assert.Equal(t, "name", f.SortOption)
	assert.True(t, f.IsAscending)
	assert.Equal(t, float64(0), f.BudgetMin)
	assert.Equal(t, float64(1000000), f.BudgetMax)
	assert.Equal(t, 1, f.DaysMin)
	assert.Equal(t, 30, f.DaysMax)
	assert.True(t, f.Sell)
	assert.Empty(t, f.Countries)
	assert.Empty(t, f.Seasons)
	assert.Empty(t, f.Accommodations)
}

func TestPlanFilterFromQuery(t *testing.T) {
	values := url.Values{
		"searchQuery":            {"beach"},
		"selectedCountries":      {"Spain,France"},
		"selectedSeasons":        {"summer", "autumn"},
		"selectedAccommodations": {"hotel,hostel"},
		"sortOption":             {"price"},
		"isAscending":            {"false"},
		"sell":                   {"false"},
		"budgetRange":            {"100,2000"},
		"daysRange":              {"3", "10"},
	}

	f := PlanFilterFromQuery(values)

	assert.Equal(t, "beach", f.Search)
	assert.Equal(t, []string{"Spain", "France"}, f.Countries)
	assert.Equal(t, []string{"summer", "autumn"}, f.Seasons)
	assert.Equal(t, []string{"hotel", "hostel"}, f.Accommodations)
	assert.Equal(t, "price", f.SortOption)
	assert.False(t, f.IsAscending)
	assert.False(t, f.Sell)
	assert.Equal(t, float64(100), f.BudgetMin)
	assert.Equal(t, float64(2000), f.BudgetMax)
	assert.Equal(t, 3, f.DaysMin)
	assert.Equal(t, 10, f.DaysMax)
}

func TestPlanFilterIgnoresPartialOrInvalidRanges(t *testing.T) {
	values := url.Values{
		"budgetRange": {"100"}, // single element, range ignored
		"daysRange":   {"abc", "10"},
	}

	f := PlanFilterFromQuery(values)

	assert.Equal(t, float64(0), f.BudgetMin)
	assert.Equal(t, float64(1000000), f.BudgetMax)
	assert.Equal(t, 1, f.DaysMin)
	assert.Equal(t, 30, f.DaysMax)
}
