package sheets

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Row is one raw CSV record keyed by column header. Missing columns resolve
// to the empty string through the map zero value.
type Row map[string]string

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode strips any BOM and converts the payload to UTF-8. Sheets exports are
// UTF-8, but operator re-uploads of the source data have shipped as CP949, so
// invalid UTF-8 falls back to an EUC-KR decode.
func decode(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return data[3:], nil
	case bytes.HasPrefix(data, bomUTF16LE):
		decoded, _, err := transform.Bytes(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder(), data[2:])
		if err != nil {
			return nil, fmt.Errorf("UTF-16LE decode failed: %w", err)
		}
		return decoded, nil
	case bytes.HasPrefix(data, bomUTF16BE):
		decoded, _, err := transform.Bytes(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder(), data[2:])
		if err != nil {
			return nil, fmt.Errorf("UTF-16BE decode failed: %w", err)
		}
		return decoded, nil
	case utf8.Valid(data):
		return data, nil
	}
	decoded, _, err := transform.Bytes(korean.EUCKR.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("EUC-KR decode failed: %w", err)
	}
	return decoded, nil
}

// ParseCSV parses a CSV export into header-keyed rows. The first record is
// the header. Short records are padded with empty strings and long records
// are truncated, so a malformed row never fails the whole load.
func ParseCSV(data []byte) ([]Row, error) {
	decoded, err := decode(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty export: no header row")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Sugar().Warnf("Skipping unparseable CSV record: %v", err)
			continue
		}
		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
