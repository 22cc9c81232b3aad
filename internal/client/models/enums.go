package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownKind     = errors.New("unknown entry kind")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownStatus   = errors.New("unknown status")
)

// Kind tells whether an entry reports a lost or a found item.
type Kind string

const (
	KindLost  Kind = "Lost"
	KindFound Kind = "Found"
)

// Kinds lists every valid Kind in display order.
var Kinds = []Kind{KindLost, KindFound}

// Category classifies the item. The string value is the display label and
// the value stored in snapshots.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryIDCards     Category = "ID / Cards"
	CategoryBooks       Category = "Books / Notes"
	CategoryClothing    Category = "Clothing"
	CategoryAccessories Category = "Accessories"
	CategoryBags        Category = "Bags"
	CategoryKeys        Category = "Keys"
	CategoryOther       Category = "Other"
)

// Categories lists every valid Category in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryIDCards,
	CategoryBooks,
	CategoryClothing,
	CategoryAccessories,
	CategoryBags,
	CategoryKeys,
	CategoryOther,
}

// Location is a campus zone.
type Location string

const (
	LocationMainGate      Location = "Main Gate"
	LocationLibrary       Location = "Library"
	LocationCafeteria     Location = "Cafeteria"
	LocationHostel        Location = "Hostel"
	LocationLabBlock      Location = "Lab Block"
	LocationSportsComplex Location = "Sports Complex"
	LocationParking       Location = "Parking"
	LocationOther         Location = "Other"
)

// Locations lists every valid Location in display order.
var Locations = []Location{
	LocationMainGate,
	LocationLibrary,
	LocationCafeteria,
	LocationHostel,
	LocationLabBlock,
	LocationSportsComplex,
	LocationParking,
	LocationOther,
}

// Status is the claim state of an entry.
type Status string

const (
	StatusOpen    Status = "Open"
	StatusClaimed Status = "Claimed"
)

// Statuses lists every valid Status.
var Statuses = []Status{StatusOpen, StatusClaimed}

// Toggle flips Open to Claimed and Claimed to Open. Any other value is
// treated as Open, so the result is always one of the two states.
func (s Status) Toggle() Status {
	if s == StatusClaimed {
		return StatusOpen
	}
	return StatusClaimed
}

// ActionLabel is the label of the action that toggles s.
func (s Status) ActionLabel() string {
	if s == StatusClaimed {
		return "Reopen"
	}
	return "Mark as Claimed"
}

// normalizeLabel folds case and drops spaces and slashes, so "ID / Cards",
// "id/cards" and "idcards" compare equal.
func normalizeLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r == ' ' || r == '/' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parseLabel[T ~string](s string, values []T, notFound error) (T, error) {
	n := normalizeLabel(s)
	if n != "" {
		for _, v := range values {
			if normalizeLabel(string(v)) == n {
				return v, nil
			}
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q", notFound, s)
}

func ParseKind(s string) (Kind, error) { return parseLabel(s, Kinds, ErrUnknownKind) }

func ParseCategory(s string) (Category, error) {
	return parseLabel(s, Categories, ErrUnknownCategory)
}

func ParseLocation(s string) (Location, error) {
	return parseLabel(s, Locations, ErrUnknownLocation)
}

func ParseStatus(s string) (Status, error) { return parseLabel(s, Statuses, ErrUnknownStatus) }

func (k Kind) Valid() bool { return slices.Contains(Kinds, k) }

func (c Category) Valid() bool { return slices.Contains(Categories, c) }

func (l Location) Valid() bool { return slices.Contains(Locations, l) }

func (s Status) Valid() bool { return slices.Contains(Statuses, s) }
