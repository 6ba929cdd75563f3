package registration

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Fixed validation messages. Step forms surface these inline per field, so
// they stay stable strings rather than wrapped errors.
const (
	MsgNameLength       = "name must be between 2 and 100 characters"
	MsgAddressLength    = "address must be between 5 and 255 characters"
	MsgEmailInvalid     = "invalid email format"
	MsgThemeInvalid     = "theme must be one of blue, red, orange or yellow"
	MsgCodeLength       = "code must be between 3 and 10 characters"
	MsgCodeCharset      = "code must contain only uppercase letters and numbers"
	MsgLogoURLInvalid   = "logo URL must be a valid URL"
	MsgScheduleDays     = "schedule must cover all 7 days of the week"
	MsgTimeFormat       = "time must be in HH:MM format"
	MsgEndBeforeStart   = "closing time must be later than opening time"
	MsgOpenNeedsRange   = "open days must have at least one time range"
	MsgClosedWithRanges = "closed days cannot have time ranges"
	MsgMustAcknowledge  = "must confirm to continue"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	codePattern  = regexp.MustCompile(`^[A-Z0-9]+$`)
	timePattern  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// ValidateName checks the gym name. Empty string means valid. Lengths count
// runes, not bytes, so accented names near the bound are not misjudged.
func ValidateName(name string) string {
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		return MsgNameLength
	}
	return ""
}

func ValidateAddress(address string) string {
	if n := utf8.RuneCountInString(address); n < 5 || n > 255 {
		return MsgAddressLength
	}
	return ""
}

func ValidateEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

func ValidateTheme(theme Theme) string {
	for _, t := range Themes {
		if theme == t {
			return ""
		}
	}
	return MsgThemeInvalid
}

func ValidateCode(code string) string {
	if len(code) < 3 || len(code) > 10 {
		return MsgCodeLength
	}
	if !codePattern.MatchString(code) {
		return MsgCodeCharset
	}
	return ""
}

// ValidateLogoURL accepts an empty string: the logo is optional and an empty
// value is treated as absent.
func ValidateLogoURL(logoURL string) string {
	if logoURL == "" {
		return ""
	}
	u, err := url.Parse(logoURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return MsgLogoURLInvalid
	}
	return ""
}

// ValidateTimeRange checks the HH:MM syntax of both endpoints and that the
// end is strictly later than the start in minutes since midnight.
func ValidateTimeRange(tr TimeRange) string {
	if !timePattern.MatchString(tr.Start) || !timePattern.MatchString(tr.End) {
		return MsgTimeFormat
	}
	if minutesOf(tr.End) <= minutesOf(tr.Start) {
		return MsgEndBeforeStart
	}
	return ""
}

func minutesOf(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

func ValidateDaySchedule(ds DaySchedule) string {
	if ds.IsOpen && len(ds.TimeRanges) == 0 {
		return MsgOpenNeedsRange
	}
	if !ds.IsOpen && len(ds.TimeRanges) > 0 {
		return MsgClosedWithRanges
	}
	for _, tr := range ds.TimeRanges {
		if msg := ValidateTimeRange(tr); msg != "" {
			return msg
		}
	}
	return ""
}

func ValidateSchedule(schedule []DaySchedule) string {
	if len(schedule) != len(DaysOfWeek) {
		return MsgScheduleDays
	}
	seen := map[DayOfWeek]bool{}
	for _, ds := range schedule {
		seen[ds.Day] = true
	}
	for _, day := range DaysOfWeek {
		if !seen[day] {
			return MsgScheduleDays
		}
	}
	for _, ds := range schedule {
		if msg := ValidateDaySchedule(ds); msg != "" {
			return fmt.Sprintf("%s: %s", ds.Day, msg)
		}
	}
	return ""
}

// ValidateAcknowledgement is idempotent: true is always valid, anything else
// always yields the same fixed message.
func ValidateAcknowledgement(m MembershipAcknowledgement) string {
	if !m.Acknowledged {
		return MsgMustAcknowledge
	}
	return ""
}

// Validate runs every field validator and returns a field name to message
// map, or nil when the step is valid.
func (g GymInformation) Validate() map[string]string {
	errs := map[string]string{}
	if msg := ValidateName(g.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := ValidateAddress(g.Address); msg != "" {
		errs["address"] = msg
	}
	if msg := ValidateEmail(g.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidateTheme(g.Theme); msg != "" {
		errs["theme"] = msg
	}
	if msg := ValidateCode(g.Code); msg != "" {
		errs["code"] = msg
	}
	if msg := ValidateLogoURL(g.LogoURL); msg != "" {
		errs["logo_url"] = msg
	}
	if msg := ValidateSchedule(g.Schedule); msg != "" {
		errs["schedule"] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (m MembershipAcknowledgement) Validate() map[string]string {
	if msg := ValidateAcknowledgement(m); msg != "" {
		return map[string]string{"acknowledged": msg}
	}
	return nil
}

// Validate checks the complete assembled submission before the saga runs.
func (d GymRegistrationData) Validate() map[string]string {
	errs := d.Gym.Validate()
	for field, msg := range d.Membership.Validate() {
		if errs == nil {
			errs = map[string]string{}
		}
		errs[field] = msg
	}
	return errs
}
