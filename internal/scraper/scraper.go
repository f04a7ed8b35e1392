// Package scraper extracts professional profiles through the Apify
// run-sync-get-dataset-items REST API. Raw dataset items pass a JSON Schema
// gate before being mapped into the loose RawProfile shape that the parsing
// package normalizes.
package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/profile-analyzer/internal/types"
)

// DefaultTimeout bounds one synchronous scrape run. The upstream actor can
// take minutes on a cold profile.
const DefaultTimeout = 180 * time.Second

// DefaultBaseURL is the Apify API origin.
const DefaultBaseURL = "https://api.apify.com"

// DefaultTask is the actor task used when APIFY_TASK_ID is not set.
const DefaultTask = "proactive_quantifier~linkedin-profile-scraper-task"

// Error represents a failure while talking to the scrape API.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scrape error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("scrape error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrNoItems is returned when the run succeeds but the dataset is empty.
var ErrNoItems = errors.New("scraper: dataset contained no items")

// Options configures a Client.
type Options struct {
	BaseURL string
	Task    string
	Token   string
	Timeout time.Duration

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Client calls the Apify actor-task API and maps dataset items into raw
// profiles.
type Client struct {
	baseURL    string
	task       string
	token      string
	httpClient *http.Client
}

// New creates a Client from explicit options. The token is required.
func New(opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, errors.New("scraper: API token is required")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Task == "" {
		opts.Task = DefaultTask
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		task:       opts.Task,
		token:      opts.Token,
		httpClient: httpClient,
	}, nil
}

// NewFromEnv creates a Client from APIFY_API_TOKEN and, optionally,
// APIFY_TASK_ID.
func NewFromEnv() (*Client, error) {
	token := os.Getenv("APIFY_API_TOKEN")
	if token == "" {
		return nil, errors.New("scraper: APIFY_API_TOKEN not set")
	}
	return New(Options{Token: token, Task: os.Getenv("APIFY_TASK_ID")})
}

// runInput is the actor-task input payload. Recommendations and page
// snapshots are skipped: the analyzer never reads them and they slow runs
// down.
type runInput struct {
	ProfileURLs            []string `json:"profileUrls"`
	SlowDown               bool     `json:"slowDown"`
	IncludeSkills          bool     `json:"includeSkills"`
	IncludeExperience      bool     `json:"includeExperience"`
	IncludeEducation       bool     `json:"includeEducation"`
	IncludeRecommendations bool     `json:"includeRecommendations"`
	SaveHTML               bool     `json:"saveHtml"`
	SaveMarkdown           bool     `json:"saveMarkdown"`
}

// datasetItem mirrors the actor's output field names.
type datasetItem struct {
	FullName         string            `json:"fullName"`
	Headline         string            `json:"headline"`
	Location         string            `json:"location"`
	Summary          string            `json:"summary"`
	ConnectionsCount *int              `json:"connectionsCount"`
	FollowersCount   *int              `json:"followersCount"`
	Experience       []datasetPosition `json:"experience"`
	Education        []datasetSchool   `json:"education"`
	Skills           []json.RawMessage `json:"skills"`
	Languages        []string          `json:"languages"`
	Certifications   []string          `json:"certifications"`
}

type datasetPosition struct {
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type datasetSchool struct {
	SchoolName   string `json:"schoolName"`
	DegreeName   string `json:"degreeName"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Grade        string `json:"grade"`
}

// ExtractProfile runs the scrape task for one profile URL and returns the
// first dataset item as a raw profile. The item must pass the dataset schema
// before mapping; a run that returns no items is ErrNoItems, not an empty
// profile.
func (c *Client) ExtractProfile(ctx context.Context, profileURL string) (*types.RawProfile, error) {
	profileURL = normalizeProfileURL(profileURL)
	if _, err := url.ParseRequestURI(profileURL); err != nil {
		return nil, &Error{URL: profileURL, Message: "invalid profile URL", Cause: err}
	}

	body, err := json.Marshal(runInput{
		ProfileURLs:       []string{profileURL},
		SlowDown:          true,
		IncludeSkills:     true,
		IncludeExperience: true,
		IncludeEducation:  true,
	})
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "failed to encode run input", Cause: err}
	}

	endpoint := fmt.Sprintf("%s/v2/actor-tasks/%s/run-sync-get-dataset-items?token=%s&method=POST",
		c.baseURL, c.task, url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "scrape request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "failed to read response body", Cause: err}
	}

	// Apify answers 201 for synchronous runs that finished successfully.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &Error{URL: profileURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, &Error{URL: profileURL, Message: "dataset is not a JSON array", Cause: err}
	}
	if len(items) == 0 {
		return nil, &Error{URL: profileURL, Message: "empty dataset", Cause: ErrNoItems}
	}

	if err := validateItem(items[0]); err != nil {
		return nil, &Error{URL: profileURL, Message: "dataset item rejected by schema", Cause: err}
	}

	var item datasetItem
	if err := json.Unmarshal(items[0], &item); err != nil {
		return nil, &Error{URL: profileURL, Message: "failed to decode dataset item", Cause: err}
	}

	return mapItem(&item, profileURL), nil
}

// Ping checks that the configured task exists and the token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	endpoint := fmt.Sprintf("%s/v2/actor-tasks/%s?token=%s", c.baseURL, c.task, url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &Error{URL: endpoint, Message: "failed to create request", Cause: err}
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{URL: endpoint, Message: "connection check failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return &Error{URL: endpoint, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return nil
}

// normalizeProfileURL trims the input and defaults the scheme to https.
func normalizeProfileURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// mapItem converts one dataset item into the loose RawProfile shape.
func mapItem(item *datasetItem, profileURL string) *types.RawProfile {
	raw := &types.RawProfile{
		Name:           item.FullName,
		Headline:       item.Headline,
		Location:       item.Location,
		About:          item.Summary,
		URL:            profileURL,
		Languages:      item.Languages,
		Certifications: item.Certifications,
	}
	if item.ConnectionsCount != nil {
		raw.Connections = strconv.Itoa(*item.ConnectionsCount)
	}
	if item.FollowersCount != nil {
		raw.Followers = strconv.Itoa(*item.FollowersCount)
	}

	for _, pos := range item.Experience {
		end := pos.EndDate
		if end == "" {
			end = "Present"
		}
		raw.Experience = append(raw.Experience, types.RawExperience{
			Title:       pos.Title,
			Company:     pos.CompanyName,
			Duration:    pos.StartDate + " - " + end,
			StartDate:   pos.StartDate,
			EndDate:     pos.EndDate,
			Description: pos.Description,
			Location:    pos.Location,
		})
	}

	for _, school := range item.Education {
		raw.Education = append(raw.Education, types.RawEducation{
			School: school.SchoolName,
			Degree: school.DegreeName,
			Field:  school.FieldOfStudy,
			Years:  strings.TrimSpace(school.StartDate + " - " + school.EndDate),
			Grade:  school.Grade,
		})
	}

	for _, rawSkill := range item.Skills {
		if name := skillName(rawSkill); name != "" {
			raw.Skills = append(raw.Skills, name)
		}
	}

	return raw
}

// skillName handles the two shapes the actor emits: a bare string or an
// object with a name field.
func skillName(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}
