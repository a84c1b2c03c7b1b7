package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"eventdeck/dtos"
	"eventdeck/mocks"
	"eventdeck/pkg/catalogapi"
	"eventdeck/repositories"
)

//nolint:exhaustruct //AdditionalRequest is optional
func testDto() dtos.GuestRegistrationDto {
	return dtos.GuestRegistrationDto{
		EventID:  "1",
		FullName: "Ada Lovelace",
		Role:     "Engineer",
		Company:  "Analytical Engines Ltd",
		Email:    "ada@example.com",
	}
}

func TestAPIEventRepositoryConvertsWireEvents(t *testing.T) {
	client := mocks.NewMockCatalogClient()
	//nolint:exhaustruct //optional fields left absent
	client.Events = []catalogapi.Event{
		{
			ID:                   "1",
			Title:                "Opening Night",
			RegistrationDeadline: "2026-03-13",
			Genres:               []string{"Rock"},
		},
		{
			ID:                   "2",
			Title:                "Closing Gala",
			RegistrationDeadline: "not a date",
		},
	}

	repos := repositories.NewAPI(
		client,
		repositories.NewInMemoryPreferenceStore(),
	)

	events, err := repos.Events.GetAll(context.Background())
	require.Nil(t, err)
	require.Len(t, events, 2)

	require.NotNil(t, events[0].RegistrationDeadline)
	assert.Equal(t, []string{"Rock"}, events[0].Genres)

	// Malformed deadline degrades to none rather than failing the fetch.
	assert.Nil(t, events[1].RegistrationDeadline)
}

func TestAPIEventRepositoryWrapsFetchErrors(t *testing.T) {
	client := mocks.NewMockCatalogClient()
	client.GetEventsErr = assert.AnError

	repos := repositories.NewAPI(
		client,
		repositories.NewInMemoryPreferenceStore(),
	)

	_, err := repos.Events.GetAll(context.Background())
	require.NotNil(t, err)

	var fetchErr *repositories.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAPIGuestRepositoryInsert(t *testing.T) {
	client := mocks.NewMockCatalogClient()
	repos := repositories.NewAPI(
		client,
		repositories.NewInMemoryPreferenceStore(),
	)

	record, err := repos.Guests.Insert(context.Background(), testDto())
	require.Nil(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "1", record.EventID)
	assert.Equal(t, "Ada Lovelace", record.FullName)
	assert.NotEmpty(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestAPIGuestRepositoryWrapsSubmissionErrors(t *testing.T) {
	client := mocks.NewMockCatalogClient()
	client.CreateGuestErr = assert.AnError

	repos := repositories.NewAPI(
		client,
		repositories.NewInMemoryPreferenceStore(),
	)

	_, err := repos.Guests.Insert(context.Background(), testDto())
	require.NotNil(t, err)

	var submissionErr *repositories.SubmissionError
	require.ErrorAs(t, err, &submissionErr)
	assert.Equal(t, assert.AnError.Error(), submissionErr.Error())
}
