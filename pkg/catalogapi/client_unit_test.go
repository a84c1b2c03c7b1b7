package catalogapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"eventdeck/pkg/catalogapi"
)

const testTimeout = 5 * time.Second

func TestGetEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/events", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			//nolint:errcheck //test server
			w.Write([]byte(`[
				{
					"id": "1",
					"title": "Opening Night",
					"date": "2026-03-11T20:00:00Z",
					"registrationDeadline": "2026-03-13T12:00:00Z",
					"genres": ["Rock"]
				},
				{
					"id": "2",
					"title": "Closing Gala",
					"date": "2026-03-12T20:00:00Z"
				}
			]`))
		},
	))
	defer server.Close()

	client := catalogapi.New(nil, server.URL, testTimeout)

	events, err := client.GetEvents(context.Background())
	require.Nil(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Opening Night", events[0].Title)
	require.NotNil(t, events[0].Deadline())
	assert.Equal(t, []string{"Rock"}, events[0].Genres)

	assert.Nil(t, events[1].Deadline())
}

func TestDeadlineLayouts(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		parsed bool
	}{
		{"rfc3339", "2026-03-13T12:00:00Z", true},
		{"no zone", "2026-03-13T12:00:00", true},
		{"date only", "2026-03-13", true},
		{"absent", "", false},
		{"garbage", "next friday", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			//nolint:exhaustruct //only the deadline matters here
			event := catalogapi.Event{RegistrationDeadline: tc.raw}

			if tc.parsed {
				assert.NotNil(t, event.Deadline())
			} else {
				assert.Nil(t, event.Deadline())
			}
		})
	}
}

func TestCreateGuest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/guests", r.URL.Path)
			assert.Equal(
				t,
				"application/json",
				r.Header.Get("Content-Type"),
			)

			var req catalogapi.GuestRequest
			require.Nil(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Ada Lovelace", req.FullName)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			//nolint:errcheck //test server
			json.NewEncoder(w).Encode(catalogapi.GuestRecord{
				ID:                "7a9c6a52-9f5e-4c67-9a7d-0f8f4f2b1c3d",
				EventID:           req.EventID,
				FullName:          req.FullName,
				Role:              req.Role,
				Company:           req.Company,
				Email:             req.Email,
				AdditionalRequest: req.AdditionalRequest,
				CreatedAt:         time.Now().UTC(),
			})
		},
	))
	defer server.Close()

	client := catalogapi.New(nil, server.URL, testTimeout)

	//nolint:exhaustruct //AdditionalRequest is optional
	record, err := client.CreateGuest(context.Background(), catalogapi.GuestRequest{
		EventID:  "1",
		FullName: "Ada Lovelace",
		Role:     "Engineer",
		Company:  "Analytical Engines Ltd",
		Email:    "ada@example.com",
	})
	require.Nil(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "7a9c6a52-9f5e-4c67-9a7d-0f8f4f2b1c3d", record.ID)
	assert.Equal(t, "1", record.EventID)
}

func TestErrorMessageSurfacedVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			//nolint:errcheck //test server
			w.Write([]byte(`{"message": "event is at capacity"}`))
		},
	))
	defer server.Close()

	client := catalogapi.New(nil, server.URL, testTimeout)

	//nolint:exhaustruct //AdditionalRequest is optional
	_, err := client.CreateGuest(context.Background(), catalogapi.GuestRequest{
		EventID:  "1",
		FullName: "Ada Lovelace",
		Role:     "Engineer",
		Company:  "Analytical Engines Ltd",
		Email:    "ada@example.com",
	})
	require.NotNil(t, err)
	assert.Equal(t, "event is at capacity", err.Error())
}

func TestErrorWithoutMessageFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	))
	defer server.Close()

	client := catalogapi.New(nil, server.URL, testTimeout)

	_, err := client.GetEvents(context.Background())
	require.NotNil(t, err)
	assert.Equal(t, "unexpected status 500 from events", err.Error())
}
