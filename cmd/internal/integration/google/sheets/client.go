// Package sheets implements the spreadsheet-backed appointment stores on
// top of the Google Sheets values API.
package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Client wraps the Sheets values API for one spreadsheet range. The two
// operations mirror what the stores need: fetch the whole table, overwrite
// the whole table.
type Client struct {
	service       *gsheets.Service
	spreadsheetID string
	readRange     string
}

// NewClient authenticates with a service-account credentials file and binds
// the client to a single spreadsheet range.
func NewClient(ctx context.Context, credentialsFile, spreadsheetID, readRange string) (*Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	service, err := gsheets.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// GetRows reads the full table, bypassing any cache: the sheet is shared
// mutable state and every render must see the latest rows.
func (c *Client) GetRows(ctx context.Context) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, c.readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get values: %w", err)
	}
	return resp.Values, nil
}

// OverwriteRows replaces the whole table with rows. The range is cleared
// first so a shrinking table leaves no stale tail behind.
func (c *Client) OverwriteRows(ctx context.Context, rows [][]interface{}) error {
	_, err := c.service.Spreadsheets.Values.
		Clear(c.spreadsheetID, c.readRange, &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear values: %w", err)
	}

	_, err = c.service.Spreadsheets.Values.
		Update(c.spreadsheetID, c.readRange, &gsheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}
	return nil
}
