package booking

import (
	"regexp"
	"strconv"
	"strings"

	"consultly/models"
)

// PackagePlan is the structured meaning derived from a package's feature
// strings: how many sessions must be booked and over what day window.
type PackagePlan struct {
	RequiredSessions int `json:"requiredSessions"`
	WindowDays       int `json:"windowDays"`
}

const defaultWindowDays = 30

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// Session-count phrases, tried in order against the first feature that
// mentions sessions or calls (e.g. "Three 60-minute sessions", "4 sessions",
// "Two follow-up calls").
var sessionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\w+)\s+\d+-minute sessions`),
	regexp.MustCompile(`(?i)(\d+)\s+\d+-minute sessions`),
	regexp.MustCompile(`(?i)(\w+)\s+sessions`),
	regexp.MustCompile(`(?i)(\d+)\s+sessions`),
	regexp.MustCompile(`(?i)(\w+)\s+calls`),
	regexp.MustCompile(`(?i)(\d+)\s+calls`),
}

var (
	dayPattern   = regexp.MustCompile(`(?i)(\d+)\s+days`)
	weekPattern  = regexp.MustCompile(`(?i)(\d+)\s+weeks`)
	monthPattern = regexp.MustCompile(`(?i)(\d+)\s+months`)
)

// PlanForService derives the booking plan for a service. Structured
// sessionCount/windowDays fields take precedence; otherwise the values are
// inferred from the feature strings, with the duration-based and 30-day
// fallbacks applied when no phrase matches.
func PlanForService(svc models.Service) PackagePlan {
	plan := PackagePlan{
		RequiredSessions: svc.SessionCount,
		WindowDays:       svc.WindowDays,
	}
	if plan.RequiredSessions <= 0 {
		plan.RequiredSessions = inferRequiredSessions(svc)
	}
	if plan.WindowDays <= 0 {
		plan.WindowDays = inferWindowDays(svc)
	}
	return plan
}

func inferRequiredSessions(svc models.Service) int {
	for _, feature := range svc.Features {
		lower := strings.ToLower(feature)
		if !strings.Contains(lower, "session") && !strings.Contains(lower, "call") {
			continue
		}
		for _, pattern := range sessionPatterns {
			matches := pattern.FindStringSubmatch(feature)
			if matches == nil {
				continue
			}
			if n, ok := toNumber(matches[1]); ok {
				return n
			}
		}
		break
	}

	// No parsable session phrase: divide the total duration into hour-long
	// sessions, with at least one.
	sessions := svc.Duration / 60
	if sessions < 1 {
		sessions = 1
	}
	return sessions
}

func inferWindowDays(svc models.Service) int {
	for _, feature := range svc.Features {
		lower := strings.ToLower(feature)
		if !strings.Contains(lower, "day") && !strings.Contains(lower, "week") && !strings.Contains(lower, "month") {
			continue
		}
		if m := dayPattern.FindStringSubmatch(feature); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n
			}
		}
		if m := weekPattern.FindStringSubmatch(feature); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n * 7
			}
		}
		if m := monthPattern.FindStringSubmatch(feature); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return n * 30
			}
		}
		break
	}
	return defaultWindowDays
}

func toNumber(word string) (int, bool) {
	if n, ok := wordNumbers[strings.ToLower(word)]; ok {
		return n, true
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, false
	}
	return n, true
}
