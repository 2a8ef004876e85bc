package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"bitbucket.org/crgw/booking-hub/internal/schema"
	"bitbucket.org/crgw/booking-hub/internal/tools/caching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDepots() []schema.DepotWithOperator {
	build := func(name, city string) schema.DepotWithOperator {
		depot := schema.DepotWithOperator{OperatorName: "Sunset Campers"}
		depot.Name = name
		depot.City = city
		depot.Country = "Finland"

		return depot
	}

	return []schema.DepotWithOperator{
		build("Helsinki Central", "Helsinki"),
		build("Helsinki Airport", "Helsinki"),
		build("Rovaniemi Airport", "Rovaniemi"),
	}
}

func TestListDepots(t *testing.T) {
	router := newTestRouter(t, &fakeStorage{depots: testDepots()}, caching.NewCache(newMemoryEngine()))

	recorder := performRequest(router, http.MethodGet, "/api/depots", "")

	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Success bool                       `json:"success"`
		Count   int                        `json:"count"`
		Depots  []schema.DepotWithOperator `json:"depots"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 3, response.Count)
	assert.Len(t, response.Depots, 3)
}

func TestListDepotsByCity(t *testing.T) {
	t.Run("case-insensitive city match", func(t *testing.T) {
		router := newTestRouter(t, &fakeStorage{depots: testDepots()}, caching.NewCache(newMemoryEngine()))

		recorder := performRequest(router, http.MethodGet, "/api/depots/city/helsinki", "")

		require.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Success bool                       `json:"success"`
			Count   int                        `json:"count"`
			Depots  []schema.DepotWithOperator `json:"depots"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

		require.Equal(t, 2, response.Count)
		for _, depot := range response.Depots {
			assert.Equal(t, "Helsinki", depot.City)
		}
	})

	t.Run("unknown city yields an empty list", func(t *testing.T) {
		router := newTestRouter(t, &fakeStorage{depots: testDepots()}, caching.NewCache(newMemoryEngine()))

		recorder := performRequest(router, http.MethodGet, "/api/depots/city/Oulu", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"success": true, "count": 0, "depots": []}`, recorder.Body.String())
	})
}
