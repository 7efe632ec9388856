package entity

import "time"

// Status is the lifecycle state of a physical copy.
type Status string

const (
	StatusAvailable   Status = "Available"
	StatusMaintenance Status = "Maintenance"
	StatusLoaned      Status = "Loaned"
	StatusReserved    Status = "Reserved"
)

// Statuses lists every valid lifecycle state, in form display order.
func Statuses() []Status {
	return []Status{StatusMaintenance, StatusAvailable, StatusLoaned, StatusReserved}
}

type BookInstance struct {
	ID      string     `json:"id"`
	BookID  string     `json:"book_id"`
	Imprint string     `json:"imprint"`
	Status  Status     `json:"status"`
	DueBack *time.Time `json:"due_back,omitempty"`

	// Resolved reference, filled in by reads that populate it.
	Book *Book `json:"book,omitempty"`
}

func (bi BookInstance) URL() string {
	return "/catalog/bookinstance/" + bi.ID
}

func (bi BookInstance) BookTitle() string {
	if bi.Book == nil {
		return ""
	}
	return bi.Book.Title
}

// DueBackDisplay renders the due date, or the empty string when the copy
// has no due date.
func (bi BookInstance) DueBackDisplay() string {
	return formatDate(bi.DueBack)
}

func (bi BookInstance) DueBackISO() string {
	return formatISO(bi.DueBack)
}
