package web

import (
	"net/http"

	"locallibrary/internal/forms"
)

func authorFormFromRequest(r *http.Request) forms.AuthorForm {
	return forms.AuthorForm{
		FirstName:   r.PostFormValue("first_name"),
		FamilyName:  r.PostFormValue("family_name"),
		DateOfBirth: r.PostFormValue("date_of_birth"),
		DateOfDeath: r.PostFormValue("date_of_death"),
	}
}

func genreFormFromRequest(r *http.Request) forms.GenreForm {
	return forms.GenreForm{
		Name: r.PostFormValue("name"),
	}
}

func bookFormFromRequest(r *http.Request) forms.BookForm {
	return forms.BookForm{
		Title:    r.PostFormValue("title"),
		AuthorID: r.PostFormValue("author"),
		Summary:  r.PostFormValue("summary"),
		ISBN:     r.PostFormValue("isbn"),
		GenreIDs: forms.NormalizeRefs(multiValue(r, "genre")),
	}
}

func bookInstanceFormFromRequest(r *http.Request) forms.BookInstanceForm {
	return forms.BookInstanceForm{
		BookID:  r.PostFormValue("book"),
		Imprint: r.PostFormValue("imprint"),
		Status:  r.PostFormValue("status"),
		DueBack: r.PostFormValue("due_back"),
	}
}

// multiValue hands NormalizeRefs the rawest shape the body gives us:
// nothing, one value, or several.
func multiValue(r *http.Request, key string) interface{} {
	values, ok := r.PostForm[key]
	if !ok {
		return nil
	}
	if len(values) == 1 {
		return values[0]
	}
	return values
}
