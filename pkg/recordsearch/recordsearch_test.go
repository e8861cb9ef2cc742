package recordsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powerdesk.app/pkg/formschema"
)

func sampleData() formschema.SubmissionData {
	return formschema.SubmissionData{
		"basicInformation": {
			"customerName": formschema.StringValue("Acme Marine"),
			"jobRef":       formschema.StringValue("JO-2024-AB12CD34"),
		},
		"engineInformation": {
			"engineRPM": formschema.NumberValue(1500),
		},
		"servicesSummary": {
			"servicesPerformed": formschema.ListValue([]string{"Oil change", "Coolant flush"}),
		},
	}
}

func TestFlatten(t *testing.T) {
	flat := Flatten(sampleData())
	assert.Len(t, flat, 5)
	assert.Contains(t, flat, "Acme Marine")
	assert.Contains(t, flat, "1500")
	assert.Contains(t, flat, "Coolant flush")
}

func TestMatchText(t *testing.T) {
	flat := Flatten(sampleData())

	assert.True(t, MatchText(flat, ""))
	assert.True(t, MatchText(flat, "acme"), "case-insensitive")
	assert.True(t, MatchText(flat, "coolant"), "list members searchable")
	assert.True(t, MatchText(flat, "1500"), "numbers searchable as text")
	assert.False(t, MatchText(flat, "perkins"))
}

func TestDateBounds(t *testing.T) {
	start, ok := StartBound("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)

	end, ok := EndBound("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999_000_000, time.UTC), end)

	_, ok = StartBound("")
	assert.False(t, ok)
	_, ok = StartBound("15/03/2024")
	assert.False(t, ok, "malformed dates are unbounded")
}

func TestMatchDateInclusiveWindow(t *testing.T) {
	f := Filter{StartDate: "2024-03-15", EndDate: "2024-03-15"}

	assert.True(t, f.MatchDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, f.MatchDate(time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)))
	assert.False(t, f.MatchDate(time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC)))
	assert.False(t, f.MatchDate(time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestFilterMatch(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.True(t, Filter{}.Match(sampleData(), created))
	assert.True(t, Filter{Search: "ACME", StartDate: "2024-03-01", EndDate: "2024-03-31"}.Match(sampleData(), created))
	assert.False(t, Filter{Search: "acme", EndDate: "2024-03-14"}.Match(sampleData(), created),
		"both constraints must hold")
	assert.False(t, Filter{Search: "perkins"}.Match(sampleData(), created))
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Search: "x"}.IsZero())
	assert.False(t, Filter{StartDate: "2024-01-01"}.IsZero())
}

func TestPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	first := Page(items, 1, 10)
	require.Len(t, first, 10)
	assert.Equal(t, 0, first[0])

	last := Page(items, 3, 10)
	require.Len(t, last, 5)
	assert.Equal(t, 20, last[0])
	assert.Equal(t, 24, last[4])

	assert.Empty(t, Page(items, 4, 10), "past the end")
	assert.Empty(t, Page(items, 0, 10), "pages are 1-based")
	assert.Empty(t, Page(items, 1, 0))
}
