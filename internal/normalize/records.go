// Package normalize turns free-form extraction output into validated
// CODE,DESCRIPTION records.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxCodeLen bounds a grade code ("A", "WP", "AU", "INC").
const maxCodeLen = 4

// Record is one validated grade-legend entry.
type Record struct {
	Code        string
	Description string
}

// Options configures normalization. The zero value keeps duplicate codes,
// matching the raw legend content.
type Options struct {
	DedupCodes bool // keep only the first record per code
}

// Result carries the accepted records plus a count of rejected lines.
// Rejections are expected — the input is model output, not a strict format —
// but the count is surfaced so callers can log systematic extraction drift.
type Result struct {
	Records  []Record
	Rejected int
}

// Normalize filters raw line by line. A line is accepted when it has a comma
// separator, its code field (before the first comma) is purely alphabetic and
// at most four characters, and its description is non-empty after trimming.
// Descriptions keep any further commas. Everything else is dropped; malformed
// lines are data, not errors, so Normalize never fails.
func Normalize(raw string, opts Options) Result {
	var res Result
	seen := map[string]struct{}{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		code, desc, ok := strings.Cut(line, ",")
		if !ok {
			res.Rejected++
			continue
		}
		code = strings.TrimSpace(code)
		desc = strings.TrimSpace(desc)
		if !validCode(code) || desc == "" {
			res.Rejected++
			continue
		}
		if opts.DedupCodes {
			if _, dup := seen[code]; dup {
				res.Rejected++
				continue
			}
			seen[code] = struct{}{}
		}
		res.Records = append(res.Records, Record{Code: code, Description: desc})
	}
	return res
}

// FormatCSV renders records back to CODE,DESCRIPTION lines.
func FormatCSV(records []Record) string {
	var b strings.Builder
	for i, r := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.Code)
		b.WriteByte(',')
		b.WriteString(r.Description)
	}
	return b.String()
}

func validCode(code string) bool {
	if code == "" || utf8.RuneCountInString(code) > maxCodeLen {
		return false
	}
	for _, r := range code {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
