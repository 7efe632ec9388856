package web

import (
	"errors"
	"net/http"

	"locallibrary/internal/catalog"
)

type BookInstanceHandler struct {
	svc    *catalog.BookInstanceService
	render *Renderer
}

func NewBookInstanceHandler(svc *catalog.BookInstanceService, render *Renderer) *BookInstanceHandler {
	return &BookInstanceHandler{svc: svc, render: render}
}

func (h *BookInstanceHandler) List(w http.ResponseWriter, r *http.Request) {
	instances, err := h.svc.List(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "bookinstance_list", Page{Title: "Book Instance List", Data: instances})
}

func (h *BookInstanceHandler) Detail(w http.ResponseWriter, r *http.Request) {
	instance, err := h.svc.Detail(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "bookinstance_detail", Page{Title: "Copy: " + instance.BookTitle(), Data: instance})
}

func (h *BookInstanceHandler) CreateGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.FormView(r.Context())
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "bookinstance_form", Page{Title: "Create BookInstance", Data: view})
}

func (h *BookInstanceHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	view, err := h.svc.Create(r.Context(), bookInstanceFormFromRequest(r))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if view.RedirectURL != "" {
		http.Redirect(w, r, view.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "bookinstance_form", Page{Title: "Create BookInstance", Data: view})
}

func (h *BookInstanceHandler) UpdateGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.UpdateFormView(r.Context(), r.PathValue("id"))
	if errors.Is(err, catalog.ErrNotFound) {
		h.render.NotFound(w)
		return
	}
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	h.render.HTML(w, http.StatusOK, "bookinstance_form", Page{Title: "Update BookInstance", Data: view})
}

func (h *BookInstanceHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form body", http.StatusBadRequest)
		return
	}
	view, err := h.svc.Update(r.Context(), r.PathValue("id"), bookInstanceFormFromRequest(r))
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
	h.render.HTML(w, http.StatusOK, "bookinstance_form", Page{Title: "Update BookInstance", Data: view})
}

func (h *BookInstanceHandler) DeleteGet(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.DeleteView(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	if res.RedirectURL != "" {
		http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
		return
	}
	h.render.HTML(w, http.StatusOK, "bookinstance_delete", Page{Title: "Delete BookInstance", Data: res})
}

func (h *BookInstanceHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.render.ServerError(w, err)
		return
	}
	http.Redirect(w, r, res.RedirectURL, http.StatusSeeOther)
}
