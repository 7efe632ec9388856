package forms

import "locallibrary/internal/entity"

type GenreForm struct {
	Name string `form:"name" validate:"required"`
}

func (f *GenreForm) Validate() []ValidationError {
	f.Name = trim(f.Name)
	return ValidateStruct(f)
}

func (f GenreForm) Genre(id string) entity.Genre {
	return entity.Genre{
		ID:   id,
		Name: sanitize(f.Name),
	}
}
