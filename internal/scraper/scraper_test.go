package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(Options{
		BaseURL:    server.URL,
		Token:      "test-token",
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)
	return client
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestExtractProfile_MapsDatasetItem(t *testing.T) {
	var gotInput runInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, DefaultTask)
		assert.Equal(t, "test-token", r.URL.Query().Get("token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{
			"fullName": "Jane Doe",
			"headline": "Software Engineer",
			"location": "Berlin",
			"summary": "Builds backend systems",
			"connectionsCount": 500,
			"experience": [
				{"title": "Engineer", "companyName": "Acme", "startDate": "2022-01", "endDate": "", "description": "Shipped things"},
				{"title": "Junior", "companyName": "Initech", "startDate": "2019-06", "endDate": "2021-12"}
			],
			"education": [
				{"schoolName": "TU Berlin", "degreeName": "BSc", "fieldOfStudy": "Computer Science", "startDate": "2015", "endDate": "2019"}
			],
			"skills": ["Python", {"name": "Docker"}],
			"languages": ["English", "German"]
		}]`))
	})

	raw, err := client.ExtractProfile(context.Background(), "https://linkedin.com/in/jane")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", raw.Name)
	assert.Equal(t, "Software Engineer", raw.Headline)
	assert.Equal(t, "Berlin", raw.Location)
	assert.Equal(t, "Builds backend systems", raw.About)
	assert.Equal(t, "500", raw.Connections)
	assert.Equal(t, "https://linkedin.com/in/jane", raw.URL)

	require.Len(t, raw.Experience, 2)
	assert.Equal(t, "Engineer", raw.Experience[0].Title)
	assert.Equal(t, "Acme", raw.Experience[0].Company)
	assert.Equal(t, "2022-01 - Present", raw.Experience[0].Duration)
	assert.Empty(t, raw.Experience[0].EndDate)
	assert.Equal(t, "2019-06 - 2021-12", raw.Experience[1].Duration)

	require.Len(t, raw.Education, 1)
	assert.Equal(t, "TU Berlin", raw.Education[0].School)
	assert.Equal(t, "2015 - 2019", raw.Education[0].Years)

	assert.Equal(t, []string{"Python", "Docker"}, raw.Skills)
	assert.Equal(t, []string{"English", "German"}, raw.Languages)

	assert.Equal(t, []string{"https://linkedin.com/in/jane"}, gotInput.ProfileURLs)
	assert.True(t, gotInput.SlowDown)
	assert.True(t, gotInput.IncludeSkills)
	assert.False(t, gotInput.IncludeRecommendations)
}

func TestExtractProfile_DefaultsSchemeToHTTPS(t *testing.T) {
	var gotInput runInput
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotInput))
		_, _ = w.Write([]byte(`[{"fullName": "Jane"}]`))
	})

	raw, err := client.ExtractProfile(context.Background(), "  linkedin.com/in/jane  ")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://linkedin.com/in/jane"}, gotInput.ProfileURLs)
	assert.Equal(t, "https://linkedin.com/in/jane", raw.URL)
}

func TestExtractProfile_EmptyDataset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	raw, err := client.ExtractProfile(context.Background(), "https://linkedin.com/in/jane")

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestExtractProfile_HTTPFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	raw, err := client.ExtractProfile(context.Background(), "https://linkedin.com/in/jane")

	assert.Nil(t, raw)
	var scrapeErr *Error
	require.ErrorAs(t, err, &scrapeErr)
	assert.Contains(t, scrapeErr.Message, "502")
}

func TestExtractProfile_SchemaRejectsMalformedItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"fullName": "Jane", "experience": "not-a-list"}]`))
	})

	raw, err := client.ExtractProfile(context.Background(), "https://linkedin.com/in/jane")

	assert.Nil(t, raw)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestExtractProfile_NonArrayResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "nope"}`))
	})

	_, err := client.ExtractProfile(context.Background(), "https://linkedin.com/in/jane")

	var scrapeErr *Error
	require.ErrorAs(t, err, &scrapeErr)
	assert.Contains(t, scrapeErr.Message, "not a JSON array")
}

func TestExtractProfile_InvalidURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	_, err := client.ExtractProfile(context.Background(), "")

	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Contains(t, r.URL.Path, DefaultTask)
		_, _ = w.Write([]byte(`{"name": "profile-scraper-task"}`))
	})

	assert.NoError(t, client.Ping(context.Background()))
}

func TestPing_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	err := client.Ping(context.Background())

	var scrapeErr *Error
	require.ErrorAs(t, err, &scrapeErr)
	assert.Contains(t, scrapeErr.Message, "401")
}
