package requirements

import (
	"bufio"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// ParseFile parses the line-oriented key:value text of one metadata file.
// Parsing never fails: unrecognised keys and malformed lines are reported in
// the result and otherwise ignored.
func ParseFile(id, content string) ParseResult {
	res := ParseResult{Meta: NewMeta(id)}

	sc := bufio.NewScanner(strings.NewReader(content))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := strings.Cut(line, ":")
		if !ok {
			res.Malformed = append(res.Malformed, line)
			continue
		}
		val = strings.TrimSpace(val)

		switch key {
		case "value":
			res.Meta.Value = titleCaser.String(val)
		case "effort":
			res.Meta.Effort = strings.ToUpper(val)
		case "perf_enabled":
			res.Meta.PerfEnabled = parseFlag(val)
		default:
			res.UnknownKeys = append(res.UnknownKeys, strings.TrimSpace(key))
		}
	}

	return res
}

func parseFlag(val string) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	}
	return false
}
