package leadimport

import "strings"

// Record is one parsed CSV row keyed by cleaned header name.
type Record map[string]string

// ParseCSV turns raw uploaded CSV text into header-keyed records.
//
// Lines are split on \r?\n and blank lines are discarded. The first
// remaining line is the header row; headers are lowercased, stripped of
// '/' characters and trimmed. Each data row is zipped positionally with
// the headers; missing trailing fields default to "".
//
// Splitting is quote-aware: a '"' toggles the in-quotes state and is
// dropped from the value, a ',' separates fields only outside quotes.
// Doubled quotes ("") are NOT unescaped to a literal quote. This is a
// documented limitation kept on purpose, since data imported under this
// rule already exists. The exporter always doubles quotes, so values
// containing literal quotes do not round-trip unchanged.
//
// A header-only or empty file parses to zero records.
func ParseCSV(text string) []Record {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 2 {
		return nil
	}

	rawHeaders := splitLine(lines[0])
	headers := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		h = strings.ToLower(h)
		h = strings.ReplaceAll(h, "/", "")
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitLine(line)
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				rec[h] = strings.TrimSpace(fields[i])
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// splitLine splits one CSV line on commas outside quotes. Quote
// characters themselves are consumed by the toggle and never appear in
// the output.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
