package web

import (
	"errors"
	"net/http"

	"locallibrary/internal/catalog"
)

type AuthorHandler struct {
	svc    *catalog.AuthorService
	render *Renderer
}

func NewAuthorHandler(svc *catalog.AuthorService, render *Renderer) *AuthorHandler {
	return &AuthorHandler{svc: svc, render: render}
}

func (h *AuthorHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.List(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "author_list", Page{Title: "Author List", Data: authors})
}

func (h *AuthorHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "author_detail", Page{Title: "Author: " + detail.Author.Name(), Data: detail})
}

func (h *AuthorHandler) CreateGet(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "author_form", Page{Title: "Create Author", Data: catalog.AuthorFormResult{}})
}

func (h *AuthorHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Create(r.Context(), authorFormFromRequest(r))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "author_form", Page{Title: "Create Author", Data: res})
}

func (h *AuthorHandler) UpdateGet(w http.ResponseWriter, r *http.Request) {
	author, err := h.svc.UpdateView(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	data := catalog.AuthorFormResult{Author: author}
	h.render.HTML(w, http.StatusOK, "author_form", Page{Title: "Update Author", Data: data})
}

func (h *AuthorHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Update(r.Context(), r.PathValue("id"), authorFormFromRequest(r))
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
	h.render.HTML(w, http.StatusOK, "author_form", Page{Title: "Update Author", Data: res})
}

func (h *AuthorHandler) DeleteGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteView(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "author_delete", Page{Title: "Delete Author", Data: res})
}

func (h *AuthorHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "author_delete", Page{Title: "Delete Author", Data: res})
}
