// Package csv turns loosely-structured, bilingual activity exports into
// canonical rows. Header names are matched case-insensitively and each
// logical field carries an ordered list of English and Chinese aliases.
package csv

import "strings"

// Row is one data record keyed by lower-cased, trimmed header name.
type Row map[string]string

// Resolve returns the value of the first candidate key present in the row.
// Candidate order is significant: the first present key wins even when its
// value is the empty string, which is a present value distinct from absence.
func Resolve(row Row, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := row[strings.ToLower(strings.TrimSpace(key))]; ok {
			return value, true
		}
	}
	return "", false
}
