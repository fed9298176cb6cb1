package validation

import (
	"bytes"
	"strings"

	"github.com/dmitrijs2005/fundraise/internal/timex"
	"github.com/shopspring/decimal"
)

// UserFields is the raw registration form.
type UserFields struct {
	FirstName       string
	LastName        string
	Email           string
	Password        []byte
	ConfirmPassword []byte
	PhoneNumber     string
}

// CheckRegistration validates a registration form. exists reports whether an
// email is already registered; it is consulted only for well-formed emails.
func CheckRegistration(f UserFields, exists func(email string) bool) error {
	var errs Errors

	if f.FirstName == "" {
		errs.Add(MsgFirstNameRequired)
	}
	if f.LastName == "" {
		errs.Add(MsgLastNameRequired)
	}

	switch {
	case f.Email == "":
		errs.Add(MsgEmailRequired)
	case !IsEmail(f.Email):
		errs.Add(MsgEmailInvalid)
	case exists != nil && exists(f.Email):
		errs.Add(MsgEmailTaken)
	}

	switch {
	case len(f.Password) == 0:
		errs.Add(MsgPasswordRequired)
	case !bytes.Equal(f.Password, f.ConfirmPassword):
		errs.Add(MsgPasswordMismatch)
	}

	switch {
	case f.PhoneNumber == "":
		errs.Add(MsgPhoneRequired)
	case !IsPhone(f.PhoneNumber):
		errs.Add(MsgPhoneInvalid)
	}

	return errs.Err()
}

// ProjectFields is the raw project form. For edits a blank field means "keep".
type ProjectFields struct {
	Title     string
	Details   string
	Target    string
	StartTime string
	EndTime   string
}

// Blank reports whether no field was supplied.
func (f ProjectFields) Blank() bool {
	return f == ProjectFields{}
}

// ProjectValues are the parsed, validated project attributes.
type ProjectValues struct {
	Title     string
	Details   string
	Target    decimal.Decimal
	StartTime timex.Date
	EndTime   timex.Date
}

// CheckProject validates a creation form where every field is required.
func CheckProject(f ProjectFields) (ProjectValues, error) {
	var (
		errs Errors
		v    = ProjectValues{Title: f.Title, Details: f.Details}
	)

	if f.Title == "" {
		errs.Add(MsgTitleRequired)
	}
	if f.Details == "" {
		errs.Add(MsgDetailsRequired)
	}

	if f.Target == "" {
		errs.Add(MsgTargetRequired)
	} else if t, ok := ParseTarget(f.Target); ok {
		v.Target = t
	} else {
		errs.Add(MsgTargetInvalid)
	}

	startOK := false
	if f.StartTime == "" {
		errs.Add(MsgStartRequired)
	} else if d, ok := ParseDate(f.StartTime); ok {
		v.StartTime, startOK = d, true
	} else {
		errs.Add(MsgStartInvalid)
	}

	if f.EndTime == "" {
		errs.Add(MsgEndRequired)
	} else if d, ok := ParseDate(f.EndTime); ok {
		v.EndTime = d
		if startOK && !v.StartTime.Before(v.EndTime) {
			errs.Add(MsgEndBeforeStart)
		}
	} else {
		errs.Add(MsgEndInvalid)
	}

	if err := errs.Err(); err != nil {
		return ProjectValues{}, err
	}
	return v, nil
}

// CheckProjectPatch merges an edit form over current. Only supplied fields are
// validated; when either date changes the ordering is re-checked against the
// merged start and end.
func CheckProjectPatch(current ProjectValues, f ProjectFields) (ProjectValues, error) {
	var errs Errors
	v := current

	if f.Title != "" {
		v.Title = f.Title
	}
	if f.Details != "" {
		v.Details = f.Details
	}
	if f.Target != "" {
		if t, ok := ParseTarget(f.Target); ok {
			v.Target = t
		} else {
			errs.Add(MsgTargetInvalid)
		}
	}

	datesOK := true
	if f.StartTime != "" {
		if d, ok := ParseDate(f.StartTime); ok {
			v.StartTime = d
		} else {
			errs.Add(MsgStartInvalid)
			datesOK = false
		}
	}
	if f.EndTime != "" {
		if d, ok := ParseDate(f.EndTime); ok {
			v.EndTime = d
		} else {
			errs.Add(MsgEndInvalid)
			datesOK = false
		}
	}
	if datesOK && (f.StartTime != "" || f.EndTime != "") && !v.StartTime.Before(v.EndTime) {
		errs.Add(MsgEndBeforeStart)
	}

	if err := errs.Err(); err != nil {
		return current, err
	}
	return v, nil
}

// SearchBounds is a validated date filter. To is zero when no upper bound was
// given.
type SearchBounds struct {
	From timex.Date
	To   timex.Date
}

// HasUpper reports whether an upper bound was supplied.
func (b SearchBounds) HasUpper() bool { return !b.To.IsZero() }

// Contains reports whether a project spanning start..end matches the bounds.
func (b SearchBounds) Contains(start, end timex.Date) bool {
	if start.Before(b.From) {
		return false
	}
	if b.HasUpper() && end.After(b.To) {
		return false
	}
	return true
}

// CheckSearch validates a search form: from is required, to is optional.
func CheckSearch(from, to string) (SearchBounds, error) {
	var (
		errs Errors
		b    SearchBounds
	)

	if d, ok := ParseDate(strings.TrimSpace(from)); ok {
		b.From = d
	} else {
		errs.Add(MsgStartInvalid)
	}

	if to = strings.TrimSpace(to); to != "" {
		if d, ok := ParseDate(to); ok {
			b.To = d
		} else {
			errs.Add(MsgEndInvalid)
		}
	}

	if err := errs.Err(); err != nil {
		return SearchBounds{}, err
	}
	return b, nil
}
