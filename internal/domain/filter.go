package domain

import (
	json "github.com/goccy/go-json"
)

// FilterRecords drops absent entries (nil) while preserving the relative
// order of everything else. Explicit error records are kept: they are
// observable signal, not noise.
func FilterRecords(records []*PlayerRecord) []PlayerRecord {
	filtered := make([]PlayerRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		filtered = append(filtered, *r)
	}
	return filtered
}

// EncodeRecords serializes the aggregate response payload. The result is
// what gets cached, so repeat requests inside the cache window are served
// byte-for-byte identical.
func EncodeRecords(records []PlayerRecord) ([]byte, error) {
	if records == nil {
		records = []PlayerRecord{}
	}
	return json.Marshal(records)
}
