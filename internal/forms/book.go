package forms

import "locallibrary/internal/entity"

// BookForm carries a create or update submission. GenreIDs must already be
// normalized with NormalizeRefs before Validate runs. The 10-13 character
// ISBN constraint applies to both workflows.
type BookForm struct {
	Title    string   `form:"title" validate:"required"`
	AuthorID string   `form:"author" validate:"required"`
	Summary  string   `form:"summary" validate:"required"`
	ISBN     string   `form:"isbn" validate:"required,min=10,max=13"`
	GenreIDs []string `form:"genre"`
}

func (f *BookForm) Validate() []ValidationError {
	f.Title = trim(f.Title)
	f.AuthorID = trim(f.AuthorID)
	f.Summary = trim(f.Summary)
	f.ISBN = trim(f.ISBN)
	for i, id := range f.GenreIDs {
		f.GenreIDs[i] = trim(id)
	}
	return ValidateStruct(f)
}

func (f BookForm) Book(id string) entity.Book {
	genres := make([]string, 0, len(f.GenreIDs))
	for _, g := range f.GenreIDs {
		genres = append(genres, sanitize(g))
	}
	return entity.Book{
		ID:       id,
		Title:    sanitize(f.Title),
		AuthorID: sanitize(f.AuthorID),
		Summary:  sanitize(f.Summary),
		ISBN:     sanitize(f.ISBN),
		GenreIDs: genres,
	}
}
