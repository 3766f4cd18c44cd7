// Package sheets — тонкая обёртка над Google Sheets values API.
// Вся работа с таблицей идёт через три операции: чтение диапазона,
// добавление строки и перезапись строки по её номеру.
package sheets

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/prklubi/club-bot/internal/metrics"
)

type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

func New(ctx context.Context, spreadsheetID string, credsJSON []byte) (*Client, error) {
	creds, err := google.CredentialsFromJSON(ctx, credsJSON, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("sheets: credentials: %w", err)
	}
	svc, err := sheetsapi.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("sheets: service: %w", err)
	}
	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// GetRange читает диапазон и нормализует ячейки к строкам.
// Хвостовые пустые ячейки API не возвращает — добивает уже репозиторий.
func (c *Client) GetRange(ctx context.Context, a1 string) ([][]string, error) {
	t0 := time.Now()
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1).Context(ctx).Do()
	metrics.ObserveSheetsCall("get", time.Since(t0), err)
	if err != nil {
		return nil, fmt.Errorf("sheets: get %s: %w", a1, err)
	}
	return toStrings(resp.Values), nil
}

func (c *Client) AppendRow(ctx context.Context, a1 string, row []string) error {
	t0 := time.Now()
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, a1, valueRange(row)).
		ValueInputOption("RAW").Context(ctx).Do()
	metrics.ObserveSheetsCall("append", time.Since(t0), err)
	if err != nil {
		return fmt.Errorf("sheets: append %s: %w", a1, err)
	}
	return nil
}

func (c *Client) UpdateRow(ctx context.Context, a1 string, row []string) error {
	t0 := time.Now()
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, a1, valueRange(row)).
		ValueInputOption("RAW").Context(ctx).Do()
	metrics.ObserveSheetsCall("update", time.Since(t0), err)
	if err != nil {
		return fmt.Errorf("sheets: update %s: %w", a1, err)
	}
	return nil
}

// Ping — лёгкая проверка доступности таблицы для /healthz.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.GetRange(ctx, "Students!A2:A2")
	return err
}

func valueRange(row []string) *sheetsapi.ValueRange {
	vals := make([]interface{}, len(row))
	for i, v := range row {
		vals[i] = v
	}
	return &sheetsapi.ValueRange{Values: [][]interface{}{vals}}
}

func toStrings(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, r := range values {
		row := make([]string, 0, len(r))
		for _, cell := range r {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}
