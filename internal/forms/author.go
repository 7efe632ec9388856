package forms

import "locallibrary/internal/entity"

type AuthorForm struct {
	FirstName   string `form:"first_name" validate:"required,max=100"`
	FamilyName  string `form:"family_name" validate:"required,max=100"`
	DateOfBirth string `form:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `form:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
}

// Validate trims every submitted value in place, then runs the field rules
// and returns all failures.
func (f *AuthorForm) Validate() []ValidationError {
	f.FirstName = trim(f.FirstName)
	f.FamilyName = trim(f.FamilyName)
	f.DateOfBirth = trim(f.DateOfBirth)
	f.DateOfDeath = trim(f.DateOfDeath)
	return ValidateStruct(f)
}

// Author builds the candidate entity from the sanitized values. The caller
// supplies the identifier: empty for create, the original id for update.
func (f AuthorForm) Author(id string) entity.Author {
	return entity.Author{
		ID:          id,
		FirstName:   sanitize(f.FirstName),
		FamilyName:  sanitize(f.FamilyName),
		DateOfBirth: parseDate(f.DateOfBirth),
		DateOfDeath: parseDate(f.DateOfDeath),
	}
}
