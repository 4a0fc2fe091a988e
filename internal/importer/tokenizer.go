package importer

import "strings"

// Tokenize splits raw CSV text into rows of trimmed fields. Commas inside
// a double-quoted span do not split; a double quote toggles the quoted
// state and is never emitted. Known limitation: there is no escape
// sequence, so a literal quote character cannot appear inside a field
// value. Whitespace-only lines are dropped entirely rather than becoming
// empty rows. The minimum-row check (header plus one data row) happens in
// the orchestrator, not here.
func Tokenize(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var fields []string
		var current strings.Builder
		inQuotes := false
		for _, ch := range line {
			switch {
			case ch == '"':
				inQuotes = !inQuotes
			case ch == ',' && !inQuotes:
				fields = append(fields, strings.TrimSpace(current.String()))
				current.Reset()
			default:
				current.WriteRune(ch)
			}
		}
		fields = append(fields, strings.TrimSpace(current.String()))
		rows = append(rows, fields)
	}
	return rows
}
