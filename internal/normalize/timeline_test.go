package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineBracketForm(t *testing.T) {
	m := parseTimelineText("[1969]: Moon Landing\nHumans first walk on the Moon.")
	require.Len(t, m.Events, 1)
	assert.Equal(t, "1969", m.Events[0].Date)
	assert.Equal(t, "Moon Landing", m.Events[0].Title)
	assert.Equal(t, "Humans first walk on the Moon.", m.Events[0].Description)
}

func TestTimelineDateTokenForms(t *testing.T) {
	m := parseTimelineText("1492 - Columbus reaches the Americas\n\n20 July 1969: Apollo 11 lands\n\nJuly 4, 1776 - Declaration signed\n\n9/11/2001 - Attacks in the US")
	require.Len(t, m.Events, 4)
	assert.Equal(t, "1492", m.Events[0].Date)
	assert.Equal(t, "Columbus reaches the Americas", m.Events[0].Title)
	assert.Equal(t, "20 July 1969", m.Events[1].Date)
	assert.Equal(t, "Apollo 11 lands", m.Events[1].Title)
	assert.Equal(t, "July 4, 1776", m.Events[2].Date)
	assert.Equal(t, "9/11/2001", m.Events[3].Date)
}

func TestTimelineNoDateFallsBackToUnknown(t *testing.T) {
	m := parseTimelineText("The bronze age begins\nMetallurgy spreads across Eurasia.")
	require.Len(t, m.Events, 1)
	assert.Equal(t, "Unknown", m.Events[0].Date)
	assert.Equal(t, "The bronze age begins", m.Events[0].Title)
}

func TestTimelineSourceOrderPreserved(t *testing.T) {
	// Events stay in presentation order even when out of date order.
	m := parseTimelineText("[2001]: Later event\n\n[1969]: Earlier event")
	require.Len(t, m.Events, 2)
	assert.Equal(t, "2001", m.Events[0].Date)
	assert.Equal(t, "1969", m.Events[1].Date)
}

func TestTimelineHeadingBulletFallback(t *testing.T) {
	text := "# 1969\n- Moon landing\n- Woodstock festival\n## 1970\n1. Apollo 13 returns safely"
	m := parseTimelineText(text)
	require.Len(t, m.Events, 3)
	assert.Equal(t, "1969", m.Events[0].Date)
	assert.Equal(t, "Moon landing", m.Events[0].Title)
	assert.Equal(t, "1969", m.Events[1].Date)
	assert.Equal(t, "1970", m.Events[2].Date)
	assert.Equal(t, "Apollo 13 returns safely", m.Events[2].Title)
}

func TestTimelineEmptyInputYieldsDefault(t *testing.T) {
	m := parseTimelineText("   ")
	require.Len(t, m.Events, 1)
	assert.Equal(t, "Unknown", m.Events[0].Date)
}
