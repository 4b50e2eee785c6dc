package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseViewFilterNamedFilters(t *testing.T) {
	cases := map[string]FilterKind{
		"all":                 FilterAll,
		"favorites":           FilterFavorites,
		"long-term":           FilterLongTerm,
		"meeting-today":       FilterMeetingToday,
		"meeting-upcoming":    FilterMeetingUpcoming,
		"contacted-today":     FilterContactedToday,
		"contacted-yesterday": FilterContactedYesterday,
		"needs-contact":       FilterNeedsContact,
	}

	for name, kind := range cases {
		filter, err := ParseViewFilter(name, "")
		require.NoError(t, err, name)
		assert.Equal(t, kind, filter.Kind, name)
	}

	// 空筛选名等同于 all
	filter, err := ParseViewFilter("", "")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, filter.Kind)
}

func TestParseViewFilterStatus(t *testing.T) {
	filter, err := ParseViewFilter("new", "")
	require.NoError(t, err)
	assert.Equal(t, FilterStatus, filter.Kind)
	assert.Equal(t, CustomerStatusNew, filter.Status)
	assert.Empty(t, filter.Progress)

	filter, err = ParseViewFilter("in-progress", "property-tour")
	require.NoError(t, err)
	assert.Equal(t, CustomerStatusInProgress, filter.Status)
	assert.Equal(t, CustomerProgressPropertyTour, filter.Progress)
}

func TestParseViewFilterProgressIgnoredForNamedFilters(t *testing.T) {
	// 进展细分只在状态类筛选器下生效
	filter, err := ParseViewFilter("favorites", "waiting")
	require.NoError(t, err)
	assert.Empty(t, filter.Progress)
}

func TestParseViewFilterUnknown(t *testing.T) {
	_, err := ParseViewFilter("unknown-filter", "")
	assert.Error(t, err)
}
