package registration

// Theme is the gym's visual theme color.
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
	Start string `json:"start" db:"start"`
	End   string `json:"end" db:"end"`
}

// DaySchedule holds the opening hours for a single weekday. A closed day
// carries no ranges; an open day carries at least one.
type DaySchedule struct {
	Day        DayOfWeek   `json:"day"`
	IsOpen     bool        `json:"is_open"`
	TimeRanges []TimeRange `json:"time_ranges"`
}

// DefaultSchedule returns a seven-day schedule with every day closed.
func DefaultSchedule() []DaySchedule {
	schedule := make([]DaySchedule, 0, len(DaysOfWeek))
	for _, day := range DaysOfWeek {
		schedule = append(schedule, DaySchedule{Day: day, IsOpen: false, TimeRanges: []TimeRange{}})
	}
	return schedule
}

// GymInformation is the first registration step's payload.
type GymInformation struct {
	Name     string        `json:"name"`
	Address  string        `json:"address"`
	Email    string        `json:"email"`
	Theme    Theme         `json:"theme"`
	LogoURL  string        `json:"logo_url,omitempty"`
	Code     string        `json:"code"`
	Schedule []DaySchedule `json:"schedule"`
}

// MembershipAcknowledgement is the final registration step's payload.
type MembershipAcknowledgement struct {
	Acknowledged bool `json:"acknowledged"`
}

// GymRegistrationData is the assembled submission for one registration
// attempt. It lives only for the duration of the saga run.
type GymRegistrationData struct {
	Gym        GymInformation            `json:"gym"`
	Membership MembershipAcknowledgement `json:"membership"`
}

// RegistrationOutcome is the single terminal result of a saga run.
type RegistrationOutcome struct {
	Success bool   `json:"success"`
	GymID   int    `json:"gym_id,omitempty"`
	GymName string `json:"gym_name,omitempty"`
	Slug    string `json:"slug,omitempty"`
	Error   string `json:"error,omitempty"`
}

// StepID identifies a step in the registration flow.
type StepID string

const (
	StepGymInfo        StepID = "gym-info"
	StepMembershipInfo StepID = "membership-info"
)

// RegistrationSteps is the ordered step sequence of the registration flow.
var RegistrationSteps = []StepID{StepGymInfo, StepMembershipInfo}

// StepData is the sealed union of per-step payloads. A type switch over
// StepData plus the unexported marker keeps step handling exhaustive: adding
// a step means adding a type here and every switch needs a new case.
type StepData interface {
	StepID() StepID
	isStepData()
}

func (GymInformation) StepID() StepID { return StepGymInfo }
func (GymInformation) isStepData()    {}

func (MembershipAcknowledgement) StepID() StepID { return StepMembershipInfo }
func (MembershipAcknowledgement) isStepData()    {}
