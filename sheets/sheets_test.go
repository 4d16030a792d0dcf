package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataAsOf(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			"dotted date with zero padding",
			"교습소 조회 자료 (2026.01.22. 기준)",
			"2026. 1. 22. (목) 기준",
		},
		{
			"dotted date without padding",
			"교습소 조회 자료 (2026.1.19. 기준)",
			"2026. 1. 19. (월) 기준",
		},
		{
			"already formatted title passes through",
			"자료 2026. 1. 19. (월) 기준",
			"2026. 1. 19. (월) 기준",
		},
		{"no date", "교습소 조회 자료", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDataAsOf(tt.title))
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("sheet123")
	client.BaseURL = server.URL
	return client
}

func TestClientFetchRows(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/d/sheet123/export", r.URL.Path)
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		assert.Equal(t, "42", r.URL.Query().Get("gid"))
		_, _ = w.Write([]byte("신고번호,교습소명\n1448,백준호영어전문학원\n"))
	})

	rows, err := client.FetchRows(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1448", rows[0]["신고번호"])
}

func TestClientFetchRowsNon200(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.FetchRows(context.Background(), "42")
	assert.Error(t, err)
}

func TestClientFetchCell(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("\"1234\",extra\nsecond line\n"))
	})

	cell, err := client.FetchCell(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "1234", cell)
}

func TestClientFetchDataAsOf(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/d/sheet123/edit", r.URL.Path)
		_, _ = w.Write([]byte("<html><head><title>교습소 조회 자료 (2026.01.22. 기준)</title></head></html>"))
	})

	asOf, err := client.FetchDataAsOf(context.Background(), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "2026. 1. 22. (목) 기준", asOf)
}

func TestClientFetchDataAsOfFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><head><title>그냥 제목</title></head></html>"))
	})

	asOf, err := client.FetchDataAsOf(context.Background(), "2026. 1. 19. (월) 기준")
	require.NoError(t, err)
	assert.Equal(t, "2026. 1. 19. (월) 기준", asOf)
}
