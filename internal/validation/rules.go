package validation

import (
	"regexp"

	"github.com/dmitrijs2005/fundraise/internal/timex"
	"github.com/shopspring/decimal"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._]+@[a-zA-Z-]+\.[a-z]{2,}(\.[a-z]{2,})?$`)

	// Egyptian mobile numbers: optional +2, then 010/011/012/015 and 8 digits.
	phoneRe = regexp.MustCompile(`^(\+2)?01[0125][0-9]{8}$`)
)

// Messages shown to the user.
const (
	MsgFirstNameRequired = "First name is required."
	MsgLastNameRequired  = "Last name is required."
	MsgEmailRequired     = "Email is required."
	MsgEmailInvalid      = "Invalid email format."
	MsgEmailTaken        = "Email already registered."
	MsgPasswordRequired  = "Password is required."
	MsgPasswordMismatch  = "Passwords do not match."
	MsgPhoneRequired     = "Phone number is required."
	MsgPhoneInvalid      = "Invalid phone number format."

	MsgTitleRequired   = "Title is required."
	MsgDetailsRequired = "Details are required."
	MsgTargetRequired  = "Total target is required."
	MsgTargetInvalid   = "Invalid total target."
	MsgStartRequired   = "Start time is required."
	MsgStartInvalid    = "Invalid start time format."
	MsgEndRequired     = "End time is required."
	MsgEndInvalid      = "Invalid end time format."
	MsgEndBeforeStart  = "End time must be after start time."
)

// IsEmail reports whether s has the accepted email shape.
func IsEmail(s string) bool { return emailRe.MatchString(s) }

// IsPhone reports whether s is an accepted mobile number.
func IsPhone(s string) bool { return phoneRe.MatchString(s) }

// Target bounds. Exponent notation is accepted, but the canonical form must
// fit within these limits.
const (
	maxTargetInput  = 64
	maxTargetDigits = 30 // before the decimal point
	maxTargetScale  = 18 // after the decimal point
)

// ParseTarget parses a strictly positive decimal amount. Amounts with more
// than maxTargetDigits integer digits or maxTargetScale fractional digits are
// rejected.
func ParseTarget(s string) (decimal.Decimal, bool) {
	if len(s) > maxTargetInput {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	exp := int64(d.Exponent())
	if exp < -maxTargetScale || int64(d.NumDigits())+exp > maxTargetDigits {
		return decimal.Decimal{}, false
	}
	// canonical form so the stored text is stable across load/save cycles
	return decimal.RequireFromString(d.String()), true
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (timex.Date, bool) {
	d, err := timex.ParseDate(s)
	if err != nil {
		return timex.Date{}, false
	}
	return d, true
}
