package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lostfound/internal/client/models"
)

// ErrInvalidCriterion is returned when a criterion names an unknown
// dimension or a value outside the dimension's closed set.
var ErrInvalidCriterion = errors.New("invalid criterion")

// TabAll is the tab value that matches both kinds.
const TabAll = "All"

// Dimension names one filter axis.
type Dimension string

const (
	DimensionTab      Dimension = "tab"
	DimensionQuery    Dimension = "query"
	DimensionCategory Dimension = "category"
	DimensionStatus   Dimension = "status"
	DimensionLocation Dimension = "location"
	DimensionDateFrom Dimension = "from"
	DimensionDateTo   Dimension = "to"
)

// Dimensions lists every filter axis.
var Dimensions = []Dimension{
	DimensionTab,
	DimensionQuery,
	DimensionCategory,
	DimensionStatus,
	DimensionLocation,
	DimensionDateFrom,
	DimensionDateTo,
}

// ParseDimension accepts a dimension name case-insensitively, plus the
// aliases "q", "search", "type", "date-from" and "date-to".
func ParseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab", "type", "kind":
		return DimensionTab, nil
	case "query", "q", "search", "text":
		return DimensionQuery, nil
	case "category":
		return DimensionCategory, nil
	case "status":
		return DimensionStatus, nil
	case "location":
		return DimensionLocation, nil
	case "from", "date-from", "datefrom":
		return DimensionDateFrom, nil
	case "to", "date-to", "dateto":
		return DimensionDateTo, nil
	}
	return "", fmt.Errorf("%w: unknown dimension %q", ErrInvalidCriterion, s)
}

// Criteria is the immutable set of active filters. The zero value matches
// every entry. A zero field means "unset" for that dimension.
type Criteria struct {
	// Kind is empty for the "All" tab.
	Kind     models.Kind
	Query    string
	Category models.Category
	Status   models.Status
	Location models.Location

	// DateFrom and DateTo hold the raw bound text. Malformed values are kept
	// and ignored by the date predicate.
	DateFrom string
	DateTo   string
}

// Delta sets one dimension to a new value. An empty Value unsets it.
type Delta struct {
	Dimension Dimension
	Value     string
}

// Set is shorthand for a single-dimension Delta.
func Set(d Dimension, value string) Delta { return Delta{Dimension: d, Value: value} }

// Apply returns a copy of c with every delta applied in order. If any delta
// is invalid the original value is returned together with the error.
func (c Criteria) Apply(deltas ...Delta) (Criteria, error) {
	next := c
	for _, d := range deltas {
		if err := next.set(d); err != nil {
			return c, err
		}
	}
	return next, nil
}

func (c *Criteria) set(d Delta) error {
	v := strings.TrimSpace(d.Value)

	switch d.Dimension {
	case DimensionTab:
		if v == "" || strings.EqualFold(v, TabAll) {
			c.Kind = ""
			return nil
		}
		k, err := models.ParseKind(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriterion, err)
		}
		c.Kind = k

	case DimensionQuery:
		// Kept verbatim, surrounding whitespace is part of the substring.
		c.Query = d.Value

	case DimensionCategory:
		if v == "" {
			c.Category = ""
			return nil
		}
		cat, err := models.ParseCategory(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriterion, err)
		}
		c.Category = cat

	case DimensionStatus:
		if v == "" {
			c.Status = ""
			return nil
		}
		s, err := models.ParseStatus(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriterion, err)
		}
		c.Status = s

	case DimensionLocation:
		if v == "" {
			c.Location = ""
			return nil
		}
		l, err := models.ParseLocation(v)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCriterion, err)
		}
		c.Location = l

	case DimensionDateFrom:
		c.DateFrom = v

	case DimensionDateTo:
		c.DateTo = v

	default:
		return fmt.Errorf("%w: unknown dimension %q", ErrInvalidCriterion, d.Dimension)
	}
	return nil
}

// Tab returns the active tab label: "All", "Lost" or "Found".
func (c Criteria) Tab() string {
	if c.Kind == "" {
		return TabAll
	}
	return string(c.Kind)
}

// IsZero reports whether no dimension is set.
func (c Criteria) IsZero() bool { return c == Criteria{} }

// Key is a stable textual form of c, used as a cache key. Every field is
// quoted, so distinct criteria never share a key whatever their contents.
func (c Criteria) Key() string {
	return fmt.Sprintf("%q %q %q %q %q %q %q",
		c.Kind, c.Query, c.Category, c.Status, c.Location, c.DateFrom, c.DateTo)
}

func (c Criteria) String() string {
	parts := []string{"tab=" + c.Tab()}
	if strings.TrimSpace(c.Query) != "" {
		parts = append(parts, fmt.Sprintf("query=%q", c.Query))
	}
	if c.Category != "" {
		parts = append(parts, "category="+string(c.Category))
	}
	if c.Status != "" {
		parts = append(parts, "status="+string(c.Status))
	}
	if c.Location != "" {
		parts = append(parts, "location="+string(c.Location))
	}
	if c.DateFrom != "" {
		parts = append(parts, "from="+c.DateFrom)
	}
	if c.DateTo != "" {
		parts = append(parts, "to="+c.DateTo)
	}
	return strings.Join(parts, " ")
}
