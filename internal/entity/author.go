package entity

import "time"

type Author struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name"`
	FamilyName  string     `json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
}

// Name returns "family, first" for display, or the empty string when
// either part is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

func (a Author) URL() string {
	return "/catalog/author/" + a.ID
}

// Lifespan renders "1920 - 1999", with either side blank when unknown.
func (a Author) Lifespan() string {
	return formatDate(a.DateOfBirth) + " - " + formatDate(a.DateOfDeath)
}

// DateOfBirthISO formats the birth date for a date input, or "".
func (a Author) DateOfBirthISO() string {
	return formatISO(a.DateOfBirth)
}

func (a Author) DateOfDeathISO() string {
	return formatISO(a.DateOfDeath)
}

func formatISO(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
