package forms

import "locallibrary/internal/entity"

type BookInstanceForm struct {
	BookID  string `form:"book" validate:"required"`
	Imprint string `form:"imprint" validate:"required"`
	Status  string `form:"status" validate:"required,oneof=Available Maintenance Loaned Reserved"`
	DueBack string `form:"due_back" validate:"omitempty,datetime=2006-01-02"`
}

func (f *BookInstanceForm) Validate() []ValidationError {
	f.BookID = trim(f.BookID)
	f.Imprint = trim(f.Imprint)
	f.Status = trim(f.Status)
	f.DueBack = trim(f.DueBack)
	return ValidateStruct(f)
}

func (f BookInstanceForm) BookInstance(id string) entity.BookInstance {
	return entity.BookInstance{
		ID:      id,
		BookID:  sanitize(f.BookID),
		Imprint: sanitize(f.Imprint),
		Status:  entity.Status(sanitize(f.Status)),
		DueBack: parseDate(f.DueBack),
	}
}
