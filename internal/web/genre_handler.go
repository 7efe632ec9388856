package web

import (
	"errors"
	"net/http"

	"locallibrary/internal/catalog"
)

type GenreHandler struct {
	svc    *catalog.GenreService
	render *Renderer
}

func NewGenreHandler(svc *catalog.GenreService, render *Renderer) *GenreHandler {
	return &GenreHandler{svc: svc, render: render}
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.svc.List(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "genre_list", Page{Title: "Genre List", Data: genres})
}

func (h *GenreHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "genre_detail", Page{Title: "Genre: " + detail.Genre.Name, Data: detail})
}

func (h *GenreHandler) CreateGet(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "genre_form", Page{Title: "Create Genre", Data: catalog.GenreFormResult{}})
}

func (h *GenreHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Create(r.Context(), genreFormFromRequest(r))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "genre_form", Page{Title: "Create Genre", Data: res})
}

func (h *GenreHandler) UpdateGet(w http.ResponseWriter, r *http.Request) {
	genre, err := h.svc.UpdateView(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	data := catalog.GenreFormResult{Genre: genre}
	h.render.HTML(w, http.StatusOK, "genre_form", Page{Title: "Update Genre", Data: data})
}

func (h *GenreHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Update(r.Context(), r.PathValue("id"), genreFormFromRequest(r))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "genre_form", Page{Title: "Update Genre", Data: res})
}

func (h *GenreHandler) DeleteGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteView(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "genre_delete", Page{Title: "Delete Genre", Data: res})
}

func (h *GenreHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "genre_delete", Page{Title: "Delete Genre", Data: res})
}
