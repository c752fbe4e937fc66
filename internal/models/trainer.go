package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Trainer represents the staff member assigned to a member
type Trainer struct {
	TrainerID       string       `json:"trainerID"`
	TrainerName     string       `json:"trainer_name"`
	Specialization  string       `json:"specialization"`
	PhoneNumber     string       `json:"phone_number"`
	Availability    Availability `json:"availability"`
	PassportPhoto   *string      `json:"passport_photo"`
	AssignedMembers *int         `json:"assigned_Members,omitempty"`
}

// AvailabilityKind tags how the availability field arrived
type AvailabilityKind int

const (
	// AvailabilityMissing means the field was absent, null or an empty string
	AvailabilityMissing AvailabilityKind = iota
	// AvailabilityRaw means the field was a serialized schedule string that parsed
	AvailabilityRaw
	// AvailabilityParsed means the field was already a weekday mapping
	AvailabilityParsed
	// AvailabilityInvalid means the field was present but could not be parsed
	AvailabilityInvalid
)

func (k AvailabilityKind) String() string {
	switch k {
	case AvailabilityRaw:
		return "raw"
	case AvailabilityParsed:
		return "parsed"
	case AvailabilityInvalid:
		return "invalid"
	default:
		return "missing"
	}
}

// Availability is a weekly schedule keyed by lowercase weekday name.
// The zero value is a missing schedule.
type Availability struct {
	kind     AvailabilityKind
	raw      string
	schedule map[string]bool
	err      error
}

// ParseAvailability normalizes the availability field. It never fails: bad
// input yields an empty schedule tagged AvailabilityInvalid.
func ParseAvailability(data []byte) Availability {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Availability{kind: AvailabilityMissing}
	}

	switch trimmed[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return invalidAvailability(string(trimmed), err)
		}
		return ParseAvailabilityString(raw)
	case '{':
		schedule, err := decodeSchedule([]byte(trimmed))
		if err != nil {
			return invalidAvailability(string(trimmed), err)
		}
		return Availability{kind: AvailabilityParsed, schedule: schedule}
	default:
		return invalidAvailability(string(trimmed), fmt.Errorf("unexpected availability value %.20q", trimmed))
	}
}

// ParseAvailabilityString parses a schedule that was serialized into a string
func ParseAvailabilityString(raw string) Availability {
	if strings.TrimSpace(raw) == "" {
		return Availability{kind: AvailabilityMissing}
	}
	schedule, err := decodeSchedule([]byte(raw))
	if err != nil {
		return invalidAvailability(raw, err)
	}
	return Availability{kind: AvailabilityRaw, raw: raw, schedule: schedule}
}

// NewAvailability builds an already-parsed schedule
func NewAvailability(schedule map[string]bool) Availability {
	copied := make(map[string]bool, len(schedule))
	for day, available := range schedule {
		copied[day] = available
	}
	return Availability{kind: AvailabilityParsed, schedule: copied}
}

func decodeSchedule(data []byte) (map[string]bool, error) {
	var schedule map[string]bool
	if err := json.Unmarshal(data, &schedule); err != nil {
		return nil, err
	}
	if schedule == nil {
		schedule = map[string]bool{}
	}
	return schedule, nil
}

func invalidAvailability(raw string, err error) Availability {
	return Availability{kind: AvailabilityInvalid, raw: raw, err: err}
}

func (a Availability) Kind() AvailabilityKind {
	return a.kind
}

// Err returns the parse failure for an invalid schedule
func (a Availability) Err() error {
	return a.err
}

// Schedule returns a copy of the weekday mapping, empty when missing or invalid
func (a Availability) Schedule() map[string]bool {
	out := make(map[string]bool, len(a.schedule))
	for day, available := range a.schedule {
		out[day] = available
	}
	return out
}

// AvailableOn looks the weekday up by its lowercase English name. Absent keys are false.
func (a Availability) AvailableOn(day time.Weekday) bool {
	return a.schedule[strings.ToLower(day.String())]
}

// AvailableToday evaluates the schedule for the local date of now
func (a Availability) AvailableToday(now time.Time) bool {
	return a.AvailableOn(now.Local().Weekday())
}

func (a *Availability) UnmarshalJSON(data []byte) error {
	*a = ParseAvailability(data)
	return nil
}

func (a Availability) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case AvailabilityMissing:
		return []byte("null"), nil
	case AvailabilityInvalid:
		return json.Marshal(a.raw)
	default:
		return json.Marshal(a.schedule)
	}
}
