package entity

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (g Genre) URL() string {
	return "/catalog/genre/" + g.ID
}
