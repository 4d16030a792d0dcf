// Package sheets - Handles all interaction with the Google Sheets CSV export
// endpoints that back the academy directory.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = InitLogger() // setup the logger

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

// Client fetches CSV exports and sheet metadata for one spreadsheet.
type Client struct {
	SheetID string
	BaseURL string // overridable for tests
	HTTP    *http.Client
}

// NewClient returns a Client with sane HTTP timeouts for the export endpoint.
func NewClient(sheetID string) *Client {
	return &Client{
		SheetID: sheetID,
		BaseURL: "https://docs.google.com",
		HTTP: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 90 * time.Second,
				}).DialContext,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

func (c *Client) exportURL(gid string) string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", c.BaseURL, c.SheetID, gid)
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheet fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheet fetch returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// FetchRows downloads the CSV export of one sheet tab and parses it into
// header-keyed rows.
func (c *Client) FetchRows(ctx context.Context, gid string) ([]Row, error) {
	body, err := c.fetch(ctx, c.exportURL(gid))
	if err != nil {
		return nil, err
	}
	rows, err := ParseCSV(body)
	if err != nil {
		return nil, fmt.Errorf("sheet gid %s: %w", gid, err)
	}
	logger.Sugar().Infof("Fetched %d rows from sheet gid %s", len(rows), gid)
	return rows, nil
}

// FetchCell downloads one tab and returns the value of its first cell,
// stripped of surrounding quotes and whitespace. Used for the password tab
// and single-cell metadata.
func (c *Client) FetchCell(ctx context.Context, gid string) (string, error) {
	body, err := c.fetch(ctx, c.exportURL(gid))
	if err != nil {
		return "", err
	}
	firstLine, _, _ := strings.Cut(string(body), "\n")
	cell, _, _ := strings.Cut(firstLine, ",")
	cell = strings.Trim(strings.TrimSpace(cell), `"`)
	return strings.TrimSpace(cell), nil
}

var (
	titleRe     = regexp.MustCompile(`<title>([^<]+)</title>`)
	asOfDateRe  = regexp.MustCompile(`(\d{4})\.(\d{1,2})\.(\d{1,2})\.\s*기준`)
	asOfFinalRe = regexp.MustCompile(`\d{4}\.\s*\d{1,2}\.\s*\d{1,2}\.\s*\([^)]+\)\s*기준`)
)

var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// FetchDataAsOf extracts the "data as of" label from the spreadsheet title,
// e.g. "교습소 조회 자료 (2026.01.22. 기준)". The fallback label is returned
// when the title carries no recognizable date.
func (c *Client) FetchDataAsOf(ctx context.Context, fallback string) (string, error) {
	body, err := c.fetch(ctx, fmt.Sprintf("%s/spreadsheets/d/%s/edit", c.BaseURL, c.SheetID))
	if err != nil {
		return "", err
	}
	m := titleRe.FindSubmatch(body)
	if m == nil {
		logger.Sugar().Warnf("Sheet title not found, using fallback data-as-of label")
		return fallback, nil
	}
	if label := ParseDataAsOf(string(m[1])); label != "" {
		return label, nil
	}
	return fallback, nil
}

// ParseDataAsOf pulls a "기준" date out of a sheet title and reformats it to
// "YYYY. M. D. (요일) 기준" with the weekday computed from the date. Titles
// already in the final format pass through unchanged. Returns "" when no
// date pattern is recognized.
func ParseDataAsOf(title string) string {
	if m := asOfDateRe.FindStringSubmatch(title); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		weekday := koreanWeekdays[int(date.Weekday())]
		return fmt.Sprintf("%d. %d. %d. (%s) 기준", year, month, day, weekday)
	}
	if m := asOfFinalRe.FindString(title); m != "" {
		return m
	}
	return ""
}
