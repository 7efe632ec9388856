package web

import (
	"net/http"

	"locallibrary/internal/catalog"
)

type HomeHandler struct {
	svc    *catalog.HomeService
	render *Renderer
}

func NewHomeHandler(svc *catalog.HomeService, render *Renderer) *HomeHandler {
	return &HomeHandler{svc: svc, render: render}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "index", Page{Title: "Local Library Home", Data: counts})
}
