package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmstay/farmstay-server/internal/api/testutils"
	"github.com/farmstay/farmstay-server/internal/models"
)

func TestListFarmhouses(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	// Full seed catalogue
	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/farmhouses", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.FarmhouseListResponse
	testutils.DecodeResponse(t, w, &resp)
	assert.Len(t, resp.Farmhouses, 10)

	// Search by name
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/farmhouses?q=sunset", nil, nil)
	testutils.DecodeResponse(t, w, &resp)
	require.Len(t, resp.Farmhouses, 1)
	assert.Equal(t, "Sunset Ridge Farmhouse", resp.Farmhouses[0].Name)

	// Price and guest filters
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/farmhouses?price=luxury&guests=large", nil, nil)
	testutils.DecodeResponse(t, w, &resp)
	for _, f := range resp.Farmhouses {
		assert.Greater(t, f.Price, 300)
		assert.Greater(t, f.MaxGuests, 8)
	}
}

func TestGetFarmhouse(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/farmhouses/3", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.FarmhouseResponse
	testutils.DecodeResponse(t, w, &resp)
	require.NotNil(t, resp.Farmhouse)
	assert.Equal(t, "Whispering Pines Lodge", resp.Farmhouse.Name)

	// Missing listing
	w = testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/farmhouses/does-not-exist", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomeStats(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(testCtx.Router, http.MethodGet, "/api/stats", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.HomeStatsResponse
	testutils.DecodeResponse(t, w, &resp)
	assert.Equal(t, 10, resp.Stats.FarmhouseCount)
	assert.Equal(t, 292, resp.Stats.TotalReviews)
	require.NotNil(t, resp.Stats.AverageRating)
	assert.InDelta(t, 4.74, *resp.Stats.AverageRating, 0.001)
}

func TestCreateFarmhouse(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	createReq := models.CreateFarmhouseRequest{
		Name:        "Maple Grove Farm",
		Description: "Maple syrup tours in season.",
		Location:    "Stowe, Vermont",
		Price:       175,
		MaxGuests:   5,
		Bedrooms:    3,
		Bathrooms:   2,
		Images:      []string{"https://example.com/maple.jpg"},
		Facilities:  []string{"WiFi", "Kitchen"},
	}

	// Requires authentication
	w := testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/farmhouses", createReq, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/farmhouses", createReq,
		testutils.AuthHeaders(testCtx.OwnerToken))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.FarmhouseResponse
	testutils.DecodeResponse(t, w, &resp)
	require.NotNil(t, resp.Farmhouse)
	assert.NotEmpty(t, resp.Farmhouse.ID)
	assert.Equal(t, testutils.OwnerID, resp.Farmhouse.OwnerID)
	assert.True(t, resp.Farmhouse.Availability)

	// The catalogue grew
	assert.Len(t, testCtx.Data.Farmhouses(), 11)

	// Missing required fields
	w = testutils.PerformRequest(testCtx.Router, http.MethodPost, "/api/farmhouses",
		models.CreateFarmhouseRequest{Name: "No Location"},
		testutils.AuthHeaders(testCtx.OwnerToken))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateFarmhouse(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	price := 999
	updateReq := models.UpdateFarmhouseRequest{Price: &price}

	w := testutils.PerformRequest(testCtx.Router, http.MethodPatch, "/api/farmhouses/1", updateReq,
		testutils.AuthHeaders(testCtx.OwnerToken))
	assert.Equal(t, http.StatusOK, w.Code)

	farmhouse, ok := testCtx.Data.GetFarmhouse("1")
	require.True(t, ok)
	assert.Equal(t, 999, farmhouse.Price)
	assert.Equal(t, "Sunrise Valley Retreat", farmhouse.Name)

	// An unknown id is absorbed silently
	w = testutils.PerformRequest(testCtx.Router, http.MethodPatch, "/api/farmhouses/unknown", updateReq,
		testutils.AuthHeaders(testCtx.OwnerToken))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testCtx.Data.Farmhouses(), 10)
}

func TestDeleteFarmhouse(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	w := testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/farmhouses/2", nil,
		testutils.AuthHeaders(testCtx.OwnerToken))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testCtx.Data.Farmhouses(), 9)

	// Deleting again is a no-op
	w = testutils.PerformRequest(testCtx.Router, http.MethodDelete, "/api/farmhouses/2", nil,
		testutils.AuthHeaders(testCtx.OwnerToken))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, testCtx.Data.Farmhouses(), 9)
}
