package domain

import "strings"

// FieldKind enumerates the counters the tracker writes.
type FieldKind int

const (
	FieldImpressions FieldKind = iota + 1
	FieldClicks
	FieldDailyImpressions
	FieldDailyClicks
	FieldUniqueClick
)

// Field addresses one counter of an advertisement. Store adapters
// translate it into their own representation; Path gives the dotted form
// used by document stores.
type Field struct {
	Kind   FieldKind
	Day    Day
	UserID string
}

func ImpressionsField() Field { return Field{Kind: FieldImpressions} }

func ClicksField() Field { return Field{Kind: FieldClicks} }

func DailyImpressionsField(d Day) Field { return Field{Kind: FieldDailyImpressions, Day: d} }

func DailyClicksField(d Day) Field { return Field{Kind: FieldDailyClicks, Day: d} }

func UniqueClickField(userID string) Field { return Field{Kind: FieldUniqueClick, UserID: userID} }

// Path renders the field as impressions, dailyImpressions.<day>,
// clicks, dailyClicks.<day> or uniqueClicks.<user>.
func (f Field) Path() string {
	switch f.Kind {
	case FieldImpressions:
		return "impressions"
	case FieldClicks:
		return "clicks"
	case FieldDailyImpressions:
		return "dailyImpressions." + f.Day.String()
	case FieldDailyClicks:
		return "dailyClicks." + f.Day.String()
	case FieldUniqueClick:
		return "uniqueClicks." + f.UserID
	default:
		return ""
	}
}

// ParseField is the inverse of Path. The boolean is false for unknown
// paths.
func ParseField(path string) (Field, bool) {
	switch path {
	case "impressions":
		return ImpressionsField(), true
	case "clicks":
		return ClicksField(), true
	}
	prefix, rest, ok := strings.Cut(path, ".")
	if !ok || rest == "" {
		return Field{}, false
	}
	switch prefix {
	case "dailyImpressions", "dailyClicks":
		d, err := ParseDay(rest)
		if err != nil {
			return Field{}, false
		}
		if prefix == "dailyImpressions" {
			return DailyImpressionsField(d), true
		}
		return DailyClicksField(d), true
	case "uniqueClicks":
		return UniqueClickField(rest), true
	}
	return Field{}, false
}
