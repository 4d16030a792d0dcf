// Package util provides pure string utilities for the backend.
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	streetNumberRe = regexp.MustCompile(`^(.+?[로길]\s+\d+(?:-\d+)?)`)
	regionPrefixRe = regexp.MustCompile(`^.+?[시군구]\s+(.+)$`)
	roomNumberRe   = regexp.MustCompile(`\d+호`)
	buildingNameRe = regexp.MustCompile(`\([^)]*,\s*([^)]+)\)`)
	mainBuildingRe = regexp.MustCompile(`\s*주건축물.*$`)
)

const naverMapSearch = "https://map.naver.com/v5/search/"

// CleanAddress reduces a full address to its street name and lot number for
// place searches. The part before the first comma is used; when a
// road-name-plus-number pattern is recognized, floor and unit suffixes are
// stripped too, e.g. "경기도 하남시 위례학암로 52 3층" -> "경기도 하남시 위례학암로 52".
func CleanAddress(address string) string {
	if address == "" {
		return ""
	}
	base := address
	if idx := strings.Index(base, ","); idx != -1 {
		base = base[:idx]
	}
	base = strings.TrimSpace(base)
	if m := streetNumberRe.FindStringSubmatch(base); m != nil {
		return strings.TrimSpace(m[1])
	}
	return base
}

// BaseAddress strips the leading region up to the 시/군/구 token, leaving the
// part that identifies the building. Academies with equal base addresses are
// grouped as "same building" in the detail view.
func BaseAddress(address string) string {
	if address == "" {
		return ""
	}
	if m := regionPrefixRe.FindStringSubmatch(address); m != nil {
		return strings.TrimSpace(m[1])
	}
	return address
}

// RoomNumbers extracts the distinct "N호" room tokens from an address in
// first-appearance order, joined with commas.
func RoomNumbers(address string) string {
	matches := roomNumberRe.FindAllString(address, -1)
	if len(matches) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(matches))
	var rooms []string
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			rooms = append(rooms, m)
		}
	}
	return strings.Join(rooms, ", ")
}

// FormatRoomRange renders the room numbers of an address with consecutive
// runs collapsed, e.g. "305호, 306호, 307호, 319호" -> "305~307호, 319호".
func FormatRoomRange(address string) string {
	matches := roomNumberRe.FindAllString(address, -1)
	if len(matches) == 0 {
		return ""
	}

	seen := make(map[int]bool, len(matches))
	var numbers []int
	for _, m := range matches {
		n, err := strconv.Atoi(strings.TrimSuffix(m, "호"))
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		numbers = append(numbers, n)
	}
	if len(numbers) == 0 {
		return ""
	}
	sort.Ints(numbers)

	var ranges []string
	start, end := numbers[0], numbers[0]
	flush := func() {
		if start == end {
			ranges = append(ranges, fmt.Sprintf("%d호", start))
		} else {
			ranges = append(ranges, fmt.Sprintf("%d~%d호", start, end))
		}
	}
	for _, n := range numbers[1:] {
		if n == end+1 {
			end = n
			continue
		}
		flush()
		start, end = n, n
	}
	flush()
	return strings.Join(ranges, ", ")
}

// BuildingName extracts the building name from the parenthesized suffix of an
// address, e.g. "(망월동, 힐스테이트에코미사)" -> "힐스테이트에코미사". Trailing
// "주건축물 …" qualifiers are dropped.
func BuildingName(address string) string {
	m := buildingNameRe.FindStringSubmatch(address)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(mainBuildingRe.ReplaceAllString(m[1], ""))
}

// NaverMapURL builds a map search link for an address.
func NaverMapURL(address string) string {
	if address == "" {
		return ""
	}
	return naverMapSearch + url.PathEscape(address)
}

// NaverPlaceURL builds a place search link from the academy name plus its
// cleaned address, which finds the business rather than the lot.
func NaverPlaceURL(name, address string) string {
	query := strings.TrimSpace(name + " " + CleanAddress(address))
	if query == "" {
		return ""
	}
	return naverMapSearch + url.PathEscape(query)
}
