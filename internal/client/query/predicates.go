package query

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
)

// Predicate evaluates one entry against one dimension of c. Predicates are
// pure and independent, so they may run in any order.
type Predicate func(e models.Entry, c Criteria) bool

// Predicates is the full conjunction applied by Evaluate.
var Predicates = []Predicate{
	MatchKind,
	MatchCategory,
	MatchStatus,
	MatchLocation,
	MatchText,
	MatchDateRange,
}

func MatchKind(e models.Entry, c Criteria) bool {
	return c.Kind == "" || e.Kind == c.Kind
}

func MatchCategory(e models.Entry, c Criteria) bool {
	return c.Category == "" || e.Category == c.Category
}

func MatchStatus(e models.Entry, c Criteria) bool {
	return c.Status == "" || e.Status == c.Status
}

func MatchLocation(e models.Entry, c Criteria) bool {
	return c.Location == "" || e.Location == c.Location
}

// MatchText is a case-insensitive substring test over title, description,
// location and category. A match never spans two fields.
func MatchText(e models.Entry, c Criteria) bool {
	if strings.TrimSpace(c.Query) == "" {
		return true
	}
	q := strings.ToLower(c.Query)
	for _, field := range []string{e.Title, e.Description, string(e.Location), string(e.Category)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// MatchDateRange checks both inclusive bounds. A bound that is empty or
// cannot be parsed is ignored.
func MatchDateRange(e models.Entry, c Criteria) bool {
	if from, ok := ParseBound(c.DateFrom); ok && e.OccurredAt.Before(from) {
		return false
	}
	if to, ok := ParseBound(c.DateTo); ok && e.OccurredAt.After(to) {
		return false
	}
	return true
}

// ParseBound parses a calendar date (start of that day, UTC) or an RFC 3339
// timestamp. ok is false for empty or malformed input.
func ParseBound(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Match reports whether e satisfies every predicate.
func Match(e models.Entry, c Criteria) bool {
	for _, p := range Predicates {
		if !p(e, c) {
			return false
		}
	}
	return true
}
