package mapview

import (
	"testing"

	"github.com/shenikar/civic_guardian/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateView_SetViewAndInvalidate(t *testing.T) {
	v := NewStateView(ViewPrimary, models.Coordinate{Lat: 40.7128, Lng: -74.0060}, 13)

	v.SetView(models.Coordinate{Lat: 40.7180, Lng: -74.0100}, 15)
	v.InvalidateSize()
	v.InvalidateSize()

	state := v.Snapshot()
	assert.Equal(t, ViewPrimary, state.Name)
	assert.Equal(t, 40.7180, state.Center.Lat)
	assert.Equal(t, 15, state.Zoom)
	assert.Equal(t, 2, state.Invalidations)
}

func TestRebuildIncidentMarkers_ReplacesMarkerSet(t *testing.T) {
	v := NewStateView(ViewFull, models.Coordinate{}, 13)
	AddLocationMarker(v, models.Coordinate{Lat: 1, Lng: 2})
	incidents := []*models.Incident{
		{ID: 1, Coordinate: models.Coordinate{Lat: 40.7128, Lng: -74.0060}, Category: models.CategoryTheft, Description: "Car break-in", RelativeTime: "15 min ago"},
		{ID: 2, Coordinate: models.Coordinate{Lat: 40.7180, Lng: -74.0100}, Category: models.CategoryVandalism, Description: "Graffiti on building", RelativeTime: "2 hours ago"},
	}

	RebuildIncidentMarkers(v, incidents)

	state := v.Snapshot()
	require.Len(t, state.Markers, 2)
	assert.Equal(t, "THEFT\nCar break-in\n15 min ago", state.Markers[0].Popup)
}

func TestIncidentPopup_PlainFormattedText(t *testing.T) {
	popup := IncidentPopup(&models.Incident{
		Category:     models.CategoryHazard,
		Description:  "Fallen tree blocking road",
		RelativeTime: "2 days ago",
	})

	assert.Equal(t, "HAZARD\nFallen tree blocking road\n2 days ago", popup)
}
