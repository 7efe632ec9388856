package entity

type Book struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	AuthorID string  `json:"author_id"`
	Summary  string  `json:"summary"`
	ISBN     string  `json:"isbn"`
	GenreIDs []string `json:"genre_ids"`

	// Resolved references, filled in by reads that populate them.
	Author *Author `json:"author,omitempty"`
	Genres []Genre `json:"genres,omitempty"`
}

func (b Book) URL() string {
	return "/catalog/book/" + b.ID
}

// AuthorName is a template convenience for lists where the author
// reference was resolved.
func (b Book) AuthorName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.Name()
}

// HasGenre reports whether the book carries the given genre reference.
func (b Book) HasGenre(genreID string) bool {
	for _, id := range b.GenreIDs {
		if id == genreID {
			return true
		}
	}
	return false
}
