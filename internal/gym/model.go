package gym

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Theme is one of the four gym theme colors.
type Theme string

const (
	ThemeBlue   Theme = "blue"
	ThemeRed    Theme = "red"
	ThemeOrange Theme = "orange"
	ThemeYellow Theme = "yellow"
)

var Themes = []Theme{ThemeBlue, ThemeRed, ThemeOrange, ThemeYellow}

type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// TimeRange is an opening interval on a 24-hour clock, minute granularity.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedule holds the opening hours for one weekday. A closed day carries
// no ranges; an open day carries at least one.
type DaySchedule struct {
	Day        DayOfWeek   `json:"day"`
	IsOpen     bool        `json:"is_open"`
	TimeRanges []TimeRange `json:"time_ranges"`
}

// Schedule is the ordered seven-day weekly schedule, stored as jsonb.
type Schedule []DaySchedule

func (s Schedule) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Schedule) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported schedule source type")
	}
}

// DefaultSchedule returns a seven-day schedule with every day closed.
func DefaultSchedule() Schedule {
	schedule := make(Schedule, 0, len(DaysOfWeek))
	for _, day := range DaysOfWeek {
		schedule = append(schedule, DaySchedule{Day: day, IsOpen: false, TimeRanges: []TimeRange{}})
	}
	return schedule
}

// Gym is a tenant-owned gym record. Slug is the short human-chosen code,
// unique across all gyms.
type Gym struct {
	ID        int       `db:"id" json:"id"`
	TenantID  int       `db:"tenant_id" json:"tenant_id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	Theme     Theme     `db:"theme" json:"theme"`
	LogoURL   string    `db:"logo_url" json:"logo_url,omitempty"`
	Schedule  Schedule  `db:"schedule" json:"schedule"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateGymParams carries the public fields of a new gym row.
type CreateGymParams struct {
	TenantID int
	Name     string
	Slug     string
	Address  string
	Email    string
	Theme    Theme
	LogoURL  string
	Schedule Schedule
}

// UpdateGymParams carries the profile fields an administrator may change.
// Nil pointers leave the column untouched.
type UpdateGymParams struct {
	Name     *string   `json:"name"`
	Address  *string   `json:"address"`
	Email    *string   `json:"email"`
	LogoURL  *string   `json:"logo_url"`
	Theme    *Theme    `json:"theme"`
	Schedule *Schedule `json:"schedule"`
}
