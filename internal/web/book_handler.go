package web

import (
	"errors"
	"net/http"

	"locallibrary/internal/catalog"
)

type BookHandler struct {
	svc    *catalog.BookService
	render *Renderer
}

func NewBookHandler(svc *catalog.BookService, render *Renderer) *BookHandler {
	return &BookHandler{svc: svc, render: render}
}

func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_list", Page{Title: "Book List", Data: books})
}

func (h *BookHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_detail", Page{Title: detail.Book.Title, Data: detail})
}

func (h *BookHandler) CreateGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.FormView(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_form", Page{Title: "Create Book", Data: view})
}

func (h *BookHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	view, err := h.svc.Create(r.Context(), bookFormFromRequest(r))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if view.RedirectURL != "" {
		http.Redirect(w, r, view.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_form", Page{Title: "Create Book", Data: view})
}

func (h *BookHandler) UpdateGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.UpdateFormView(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_form", Page{Title: "Update Book", Data: view})
}

func (h *BookHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	view, err := h.svc.Update(r.Context(), r.PathValue("id"), bookFormFromRequest(r))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if view.RedirectURL != "" {
		http.Redirect(w, r, view.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_form", Page{Title: "Update Book", Data: view})
}

func (h *BookHandler) DeleteGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteView(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_delete", Page{Title: "Delete Book", Data: res})
}

func (h *BookHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "book_delete", Page{Title: "Delete Book", Data: res})
}
