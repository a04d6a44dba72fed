package complaint

import (
	"strconv"
	"strings"
)

// The diagnosis.complaint column stores history in a legacy flat form, one
// record per line, fields separated by single spaces:
//
//	id eye type duration durationUnit
//
// The format cannot carry spaces inside the type field; the structured JSON
// shape is the authoritative one and this codec exists only to read and
// write the stored text.

// EncodeLines renders records into the legacy storage form.
func EncodeLines(records []Record) string {
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, strings.Join([]string{
			strconv.Itoa(r.ID), r.Eye, r.Type, r.Duration, r.DurationUnit,
		}, " "))
	}
	return strings.Join(lines, "\n")
}

// DecodeLines parses stored history. Short lines yield zero-valued fields
// rather than an error; callers treat decoded history as display-only.
func DecodeLines(s string) []Record {
	if s == "" {
		return nil
	}
	var records []Record
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, " ")
		var r Record
		if len(parts) > 0 {
			r.ID, _ = strconv.Atoi(parts[0])
		}
		if len(parts) > 1 {
			r.Eye = parts[1]
		}
		if len(parts) > 2 {
			r.Type = parts[2]
		}
		if len(parts) > 3 {
			r.Duration = parts[3]
		}
		if len(parts) > 4 {
			r.DurationUnit = parts[4]
		}
		records = append(records, r)
	}
	return records
}
