package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(errs []ValidationError) []string {
	var names []string
	for _, e := range errs {
		names = append(names, e.Field)
	}
	return names
}

func TestAuthorFormValidate(t *testing.T) {
	tests := []struct {
		name       string
		form       AuthorForm
		wantFields []string
	}{
		{
			name: "valid",
			form: AuthorForm{FirstName: "Patrick", FamilyName: "Rothfuss"},
		},
		{
			name:       "empty first name",
			form:       AuthorForm{FirstName: "", FamilyName: "Doe"},
			wantFields: []string{"first_name"},
		},
		{
			name:       "whitespace-only first name",
			form:       AuthorForm{FirstName: "   ", FamilyName: "Doe"},
			wantFields: []string{"first_name"},
		},
		{
			name:       "invalid birth date",
			form:       AuthorForm{FirstName: "Jane", FamilyName: "Doe", DateOfBirth: "yesterday"},
			wantFields: []string{"date_of_birth"},
		},
		{
			name: "valid dates",
			form: AuthorForm{FirstName: "Jane", FamilyName: "Doe", DateOfBirth: "1920-06-01", DateOfDeath: "1999-12-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.Equal(t, tt.wantFields, fieldNames(errs))
		})
	}
}

func TestValidationIsExhaustive(t *testing.T) {
	// Three independently invalid fields must produce three errors, not one.
	form := AuthorForm{FirstName: "", FamilyName: "", DateOfBirth: "not-a-date"}
	errs := form.Validate()
	require.Len(t, errs, 3)
	assert.Equal(t, []string{"first_name", "family_name", "date_of_birth"}, fieldNames(errs))
}

func TestAuthorFormLengthBound(t *testing.T) {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	form := AuthorForm{FirstName: string(long), FamilyName: "Doe"}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "first_name", errs[0].Field)
	assert.Equal(t, "first_name must not exceed 100 characters", errs[0].Message)
}

func TestAuthorFormDates(t *testing.T) {
	form := AuthorForm{FirstName: "Jane", FamilyName: "Doe", DateOfBirth: "1920-06-01"}
	require.Empty(t, form.Validate())

	a := form.Author("")
	require.NotNil(t, a.DateOfBirth)
	assert.Equal(t, time.Date(1920, time.June, 1, 0, 0, 0, 0, time.UTC), *a.DateOfBirth)
	assert.Nil(t, a.DateOfDeath)
}

func TestAuthorFormSanitizes(t *testing.T) {
	form := AuthorForm{FirstName: "  <b>Jane</b> ", FamilyName: "Doe"}
	require.Empty(t, form.Validate())

	a := form.Author("a1")
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, "&lt;b&gt;Jane&lt;/b&gt;", a.FirstName)
}

func TestGenreFormValidate(t *testing.T) {
	form := GenreForm{Name: "   "}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "name must not be empty", errs[0].Message)

	form = GenreForm{Name: " Fantasy "}
	require.Empty(t, form.Validate())
	assert.Equal(t, "Fantasy", form.Genre("").Name)
}

func TestBookFormISBNBounds(t *testing.T) {
	base := BookForm{Title: "T", AuthorID: "a1", Summary: "S"}

	tests := []struct {
		name    string
		isbn    string
		wantErr string
	}{
		{name: "ten chars ok", isbn: "0747532699"},
		{name: "thirteen chars ok", isbn: "9780747532699"},
		{name: "too short", isbn: "12345", wantErr: "isbn must be at least 10 characters"},
		{name: "too long", isbn: "97807475326990", wantErr: "isbn must not exceed 13 characters"},
		{name: "empty", isbn: "", wantErr: "isbn must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := base
			form.ISBN = tt.isbn
			errs := form.Validate()
			if tt.wantErr == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "isbn", errs[0].Field)
			assert.Equal(t, tt.wantErr, errs[0].Message)
		})
	}
}

func TestBookFormGenresNotConstrained(t *testing.T) {
	form := BookForm{Title: "T", AuthorID: "a1", Summary: "S", ISBN: "0747532699"}
	form.GenreIDs = NormalizeRefs(nil)
	assert.Empty(t, form.Validate())

	b := form.Book("")
	assert.Equal(t, []string{}, b.GenreIDs)
}

func TestBookInstanceFormDueBack(t *testing.T) {
	base := BookInstanceForm{BookID: "b1", Imprint: "Gollancz, 2014", Status: "Maintenance"}

	t.Run("empty due_back is not provided", func(t *testing.T) {
		form := base
		form.DueBack = ""
		require.Empty(t, form.Validate())
		assert.Nil(t, form.BookInstance("").DueBack)
	})

	t.Run("invalid due_back", func(t *testing.T) {
		form := base
		form.DueBack = "not-a-date"
		errs := form.Validate()
		require.Len(t, errs, 1)
		assert.Equal(t, ValidationError{Field: "due_back", Message: "Invalid date"}, errs[0])
	})

	t.Run("valid due_back", func(t *testing.T) {
		form := base
		form.DueBack = "2026-03-14"
		require.Empty(t, form.Validate())
		got := form.BookInstance("").DueBack
		require.NotNil(t, got)
		assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), *got)
	})
}

func TestBookInstanceFormStatus(t *testing.T) {
	form := BookInstanceForm{BookID: "b1", Imprint: "x", Status: "Lost"}
	errs := form.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
}
