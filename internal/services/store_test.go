package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamedu/academy-backend/sheets"
)

type fakeSource struct {
	rows    []sheets.Row
	rowsErr error
	asOf    string
	asOfErr error
	fetches int
}

func (f *fakeSource) FetchRows(_ context.Context, _ string) ([]sheets.Row, error) {
	f.fetches++
	return f.rows, f.rowsErr
}

func (f *fakeSource) FetchDataAsOf(_ context.Context, fallback string) (string, error) {
	if f.asOfErr != nil {
		return "", f.asOfErr
	}
	if f.asOf == "" {
		return fallback, nil
	}
	return f.asOf, nil
}

func testRows() []sheets.Row {
	return []sheets.Row{
		{
			colReportNumber: "1448",
			colName:         "백준호영어전문학원",
			colAddress:      "경기도 하남시 미사강변대로226번길 14 , 예스프라자 402호 (망월동)",
		},
		{
			colReportNumber: "2001",
			colName:         "예스수학교습소",
			colAddress:      "경기도 하남시 미사강변대로226번길 14 , 예스프라자 501호 (망월동)",
		},
		{
			colReportNumber: "3001",
			colName:         "다른건물학원",
			colAddress:      "경기도 하남시 위례학암로 52 3층",
		},
	}
}

func TestStoreLoadReplacesCollection(t *testing.T) {
	source := &fakeSource{rows: testRows(), asOf: "2026. 1. 19. (월) 기준"}
	store := NewStore(source, "gid", "fallback")

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, 3, store.Count())
	assert.Equal(t, "2026. 1. 19. (월) 기준", store.DataAsOf())
	assert.False(t, store.LoadedAt().IsZero())

	// A later load swaps the collection wholesale.
	source.rows = testRows()[:1]
	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, 1, store.Count())
}

func TestStoreLoadIsAllOrNothing(t *testing.T) {
	source := &fakeSource{rows: testRows(), asOf: "기준일"}
	store := NewStore(source, "gid", "fallback")
	require.NoError(t, store.Load(context.Background()))

	source.asOfErr = errors.New("metadata fetch failed")
	err := store.Load(context.Background())
	require.Error(t, err)

	// Previous state survives the failed load.
	assert.Equal(t, 3, store.Count())
	assert.Equal(t, "기준일", store.DataAsOf())
}

func TestStoreLoadFailsWhenRowsFail(t *testing.T) {
	source := &fakeSource{rowsErr: errors.New("export unavailable")}
	store := NewStore(source, "gid", "fallback")

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.Zero(t, store.Count())
	assert.True(t, store.LoadedAt().IsZero())
}

func TestStoreGet(t *testing.T) {
	source := &fakeSource{rows: testRows()}
	store := NewStore(source, "gid", "")
	require.NoError(t, store.Load(context.Background()))

	academy, ok := store.Get("1448")
	require.True(t, ok)
	assert.Equal(t, "백준호영어전문학원", academy.Name)

	_, ok = store.Get("nope")
	assert.False(t, ok)
}

func TestStoreSameBuilding(t *testing.T) {
	source := &fakeSource{rows: testRows()}
	store := NewStore(source, "gid", "")
	require.NoError(t, store.Load(context.Background()))

	academy, ok := store.Get("1448")
	require.True(t, ok)

	peers := store.SameBuilding(academy)
	require.Len(t, peers, 2, "unit differs but the base address matches")

	ids := []string{peers[0].ID, peers[1].ID}
	assert.ElementsMatch(t, []string{"1448", "2001"}, ids)
}
