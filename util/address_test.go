package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{
			"comma cuts the unit suffix",
			"경기도 하남시 미사강변대로226번길 14 , 예스프라자 402호 (망월동)",
			"경기도 하남시 미사강변대로226번길 14",
		},
		{
			"street and number extracted without comma",
			"경기도 하남시 위례학암로 52 3층",
			"경기도 하남시 위례학암로 52",
		},
		{
			"hyphenated lot number kept",
			"경기도 하남시 덕풍북로 110-1 2층",
			"경기도 하남시 덕풍북로 110-1",
		},
		{"no pattern passes through", "경기도 하남시 망월동 1111", "경기도 하남시 망월동 1111"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanAddress(tt.address))
		})
	}
}

func TestBaseAddress(t *testing.T) {
	assert.Equal(t, "미사강변대로226번길 14 , 예스프라자 402호 (망월동)",
		BaseAddress("경기도 하남시 미사강변대로226번길 14 , 예스프라자 402호 (망월동)"))
	assert.Equal(t, "위례학암로 52 3층", BaseAddress("경기도 하남시 위례학암로 52 3층"))
	assert.Equal(t, "주소 그대로", BaseAddress("주소 그대로"))
	assert.Equal(t, "", BaseAddress(""))
}

func TestRoomNumbers(t *testing.T) {
	assert.Equal(t, "305호, 306호", RoomNumbers("상가 305호, 306호"))
	assert.Equal(t, "402호", RoomNumbers("예스프라자 402호, 402호"))
	assert.Equal(t, "", RoomNumbers("호수 없음"))
}

func TestFormatRoomRange(t *testing.T) {
	tests := []struct {
		address string
		want    string
	}{
		{"305호, 306호, 307호, 308호", "305~308호"},
		{"303호, 304호, 319호", "303~304호, 319호"},
		{"402호", "402호"},
		{"402호, 402호", "402호"},
		{"307호, 305호, 306호", "305~307호"},
		{"없음", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRoomRange(tt.address), "FormatRoomRange(%q)", tt.address)
	}
}

func TestBuildingName(t *testing.T) {
	assert.Equal(t, "힐스테이트에코미사",
		BuildingName("경기도 하남시 미사대로 520 (망월동, 힐스테이트에코미사)"))
	assert.Equal(t, "힐스테이트에코미사",
		BuildingName("경기도 하남시 미사대로 520 (망월동, 힐스테이트에코미사 주건축물 제1동)"))
	assert.Equal(t, "", BuildingName("경기도 하남시 미사대로 520"))
}

func TestNaverLinks(t *testing.T) {
	mapURL := NaverMapURL("경기도 하남시 위례학암로 52")
	assert.Contains(t, mapURL, "https://map.naver.com/v5/search/")
	assert.NotContains(t, mapURL, " ", "address must be URL encoded")

	placeURL := NaverPlaceURL("백준호영어전문학원", "경기도 하남시 위례학암로 52 3층")
	assert.Contains(t, placeURL, "https://map.naver.com/v5/search/")
	assert.NotContains(t, placeURL, "3층", "place search uses the cleaned address")

	assert.Empty(t, NaverMapURL(""))
	assert.Empty(t, NaverPlaceURL("", ""))
}
