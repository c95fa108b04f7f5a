// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package googleforms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/elfaka/site/models"
	"github.com/elfaka/site/upstream"
)

const (
	DefaultFormsBaseURL = "https://forms.googleapis.com"
	DefaultDriveBaseURL = "https://www.googleapis.com"

	formsMimeQuery = "mimeType='application/vnd.google-apps.form' and trashed=false"
	listPageSize   = 50

	MinResponsePageSize = 1
	MaxResponsePageSize = 500
)

// Options configures a Client. Empty fields use the public Google endpoints
// and a client with a 10 second timeout.
type Options struct {
	FormsBaseURL string
	DriveBaseURL string
	HTTPClient   *http.Client
}

// Client calls the Drive and Forms APIs on behalf of a user.
type Client struct {
	formsBase string
	driveBase string
	http      *http.Client
}

func New(opts Options) *Client {
	c := &Client{
		formsBase: strings.TrimRight(opts.FormsBaseURL, "/"),
		driveBase: strings.TrimRight(opts.DriveBaseURL, "/"),
		http:      opts.HTTPClient,
	}
	if c.formsBase == "" {
		c.formsBase = DefaultFormsBaseURL
	}
	if c.driveBase == "" {
		c.driveBase = DefaultDriveBaseURL
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
	}
	return c
}

// ListForms returns up to 50 non-trashed forms from the user's Drive.
func (c *Client) ListForms(ctx context.Context, token string) ([]models.FormListItem, error) {
	q := url.Values{}
	q.Set("q", formsMimeQuery)
	q.Set("fields", "files(id,name,modifiedTime)")
	q.Set("pageSize", strconv.Itoa(listPageSize))

	var list driveFileList
	if err := c.get(ctx, "drive", c.driveBase+"/drive/v3/files?"+q.Encode(), token, &list); err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	items := make([]models.FormListItem, 0, len(list.Files))
	for _, f := range list.Files {
		items = append(items, models.FormListItem{
			FormID:       f.ID,
			Name:         f.Name,
			ModifiedTime: f.ModifiedTime,
		})
	}
	return items, nil
}

// GetForm fetches a form and flattens its items into questions.
func (c *Client) GetForm(ctx context.Context, token, formID string) (models.FormDetail, error) {
	var f form
	if err := c.get(ctx, "forms", c.formsBase+"/v1/forms/"+url.PathEscape(formID), token, &f); err != nil {
		return models.FormDetail{}, fmt.Errorf("get form %s: %w", formID, err)
	}
	return parseForm(formID, f), nil
}

// ListResponses fetches one page of responses. pageSize is clamped to
// [MinResponsePageSize, MaxResponsePageSize]; a blank pageToken starts at the
// first page.
func (c *Client) ListResponses(ctx context.Context, token, formID string, pageSize int, pageToken string) (models.FormResponses, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(ClampPageSize(pageSize)))
	if strings.TrimSpace(pageToken) != "" {
		q.Set("pageToken", pageToken)
	}

	var list responseList
	endpoint := c.formsBase + "/v1/forms/" + url.PathEscape(formID) + "/responses?" + q.Encode()
	if err := c.get(ctx, "forms", endpoint, token, &list); err != nil {
		return models.FormResponses{}, fmt.Errorf("list responses %s: %w", formID, err)
	}

	out := models.FormResponses{
		FormID:        formID,
		NextPageToken: list.NextPageToken,
		Responses:     make([]models.FormResponse, 0, len(list.Responses)),
	}
	for _, r := range list.Responses {
		out.Responses = append(out.Responses, parseResponse(r))
	}
	return out, nil
}

// ClampPageSize bounds n to the page sizes the Forms API accepts.
func ClampPageSize(n int) int {
	if n < MinResponsePageSize {
		return MinResponsePageSize
	}
	if n > MaxResponsePageSize {
		return MaxResponsePageSize
	}
	return n
}

func (c *Client) get(ctx context.Context, service, endpoint, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	defer resp.Body.Close()

	if err := upstream.Check(service, resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", service, err)
	}
	return nil
}
