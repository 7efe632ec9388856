package web

import "net/http"

// Routes wires every catalog operation to its handler. Create routes are
// registered before the {id} patterns so "create" is never read as an
// identifier.
func Routes(render *Renderer, home *HomeHandler, authors *AuthorHandler, genres *GenreHandler, books *BookHandler, instances *BookInstanceHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog", http.StatusFound)
	})
	mux.HandleFunc("GET /catalog", home.Index)

	mux.HandleFunc("GET /catalog/authors", authors.List)
	mux.HandleFunc("GET /catalog/author/create", authors.CreateGet)
	mux.HandleFunc("POST /catalog/author/create", authors.CreatePost)
	mux.HandleFunc("GET /catalog/author/{id}", authors.Detail)
	mux.HandleFunc("GET /catalog/author/{id}/update", authors.UpdateGet)
	mux.HandleFunc("POST /catalog/author/{id}/update", authors.UpdatePost)
	mux.HandleFunc("GET /catalog/author/{id}/delete", authors.DeleteGet)
	mux.HandleFunc("POST /catalog/author/{id}/delete", authors.DeletePost)

	mux.HandleFunc("GET /catalog/genres", genres.List)
	mux.HandleFunc("GET /catalog/genre/create", genres.CreateGet)
	mux.HandleFunc("POST /catalog/genre/create", genres.CreatePost)
	mux.HandleFunc("GET /catalog/genre/{id}", genres.Detail)
	mux.HandleFunc("GET /catalog/genre/{id}/update", genres.UpdateGet)
	mux.HandleFunc("POST /catalog/genre/{id}/update", genres.UpdatePost)
	mux.HandleFunc("GET /catalog/genre/{id}/delete", genres.DeleteGet)
	mux.HandleFunc("POST /catalog/genre/{id}/delete", genres.DeletePost)

	mux.HandleFunc("GET /catalog/books", books.List)
	mux.HandleFunc("GET /catalog/book/create", books.CreateGet)
	mux.HandleFunc("POST /catalog/book/create", books.CreatePost)
	mux.HandleFunc("GET /catalog/book/{id}", books.Detail)
	mux.HandleFunc("GET /catalog/book/{id}/update", books.UpdateGet)
	mux.HandleFunc("POST /catalog/book/{id}/update", books.UpdatePost)
	mux.HandleFunc("GET /catalog/book/{id}/delete", books.DeleteGet)
	mux.HandleFunc("POST /catalog/book/{id}/delete", books.DeletePost)

	mux.HandleFunc("GET /catalog/bookinstances", instances.List)
	mux.HandleFunc("GET /catalog/bookinstance/create", instances.CreateGet)
	mux.HandleFunc("POST /catalog/bookinstance/create", instances.CreatePost)
	mux.HandleFunc("GET /catalog/bookinstance/{id}", instances.Detail)
	mux.HandleFunc("GET /catalog/bookinstance/{id}/update", instances.UpdateGet)
	mux.HandleFunc("POST /catalog/bookinstance/{id}/update", instances.UpdatePost)
	mux.HandleFunc("GET /catalog/bookinstance/{id}/delete", instances.DeleteGet)
	mux.HandleFunc("POST /catalog/bookinstance/{id}/delete", instances.DeletePost)

	// Everything else is a 404 page, not the bare default.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		render.NotFound(w)
	})

	return mux
}
