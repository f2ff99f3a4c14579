// Package extract turns a free-text study request into a time horizon and a
// set of subject names. It is a fixed keyword extractor, not a language
// model: it never fails and degrades to defaults on unrecognized input.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// DefaultHorizonDays is used when the text names no time period.
const DefaultHorizonDays = 20

// horizonPattern matches the first "<n> day/week/month" phrase in the
// lower-cased input.
var horizonPattern = regexp.MustCompile(`(\d+)\s*(day|week|month)`)

// vocabulary is the fixed set of recognized subject keywords, scanned in
// order as substrings of the input.
var vocabulary = []string{
	"math",
	"physics",
	"chemistry",
	"biology",
	"history",
	"english",
	"computer",
	"science",
	"economics",
	"geography",
}

// defaultSubjects is the fallback when nothing matches and the caller knows
// no subjects yet.
var defaultSubjects = []string{"Mathematics", "Science", "English"}

// Request is what the extractor understood from the text.
type Request struct {
	HorizonDays  int
	SubjectNames []string
}

// Extract parses free text into a horizon and an ordered, non-empty list of
// subject names. known carries the names of subjects the caller already
// tracks; they are the first fallback when no vocabulary keyword matches.
func Extract(text string, known []string) Request {
	input := strings.ToLower(text)

	req := Request{HorizonDays: DefaultHorizonDays}
	if m := horizonPattern.FindStringSubmatch(input); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			switch m[2] {
			case "week":
				req.HorizonDays = n * 7
			case "month":
				req.HorizonDays = n * 30
			default:
				req.HorizonDays = n
			}
		}
	}

	for _, keyword := range vocabulary {
		if strings.Contains(input, keyword) {
			req.SubjectNames = append(req.SubjectNames, capitalize(keyword))
		}
	}

	if len(req.SubjectNames) == 0 {
		if len(known) > 0 {
			req.SubjectNames = append(req.SubjectNames, known...)
		} else {
			req.SubjectNames = append(req.SubjectNames, defaultSubjects...)
		}
	}
	return req
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
