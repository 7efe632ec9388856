package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locallibrary/internal/catalog"
	"locallibrary/internal/entity"
	"locallibrary/internal/testutil"
)

type testApp struct {
	authors   *testutil.AuthorRepo
	genres    *testutil.GenreRepo
	books     *testutil.BookRepo
	instances *testutil.BookInstanceRepo
	handler   http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	render, err := NewRenderer()
	require.NoError(t, err)

	authors := testutil.NewAuthorRepo()
	genres := testutil.NewGenreRepo()
	books := testutil.NewBookRepo()
	instances := testutil.NewBookInstanceRepo()

	handler := Routes(render,
		NewHomeHandler(catalog.NewHomeService(books, instances, authors, genres), render),
		NewAuthorHandler(catalog.NewAuthorService(authors, books), render),
		NewGenreHandler(catalog.NewGenreService(genres, books), render),
		NewBookHandler(catalog.NewBookService(books, authors, genres, instances), render),
		NewBookInstanceHandler(catalog.NewBookInstanceService(instances, books), render),
	)

	return &testApp{
		authors:   authors,
		genres:    genres,
		books:     books,
		instances: instances,
		handler:   handler,
	}
}

func (app *testApp) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (app *testApp) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.handler.ServeHTTP(rec, req)
	return rec
}

func TestHomePage(t *testing.T) {
	app := newTestApp(t)
	app.authors.Add(entity.Author{FirstName: "Patrick", FamilyName: "Rothfuss"})
	g := app.genres.Add(entity.Genre{Name: "Fantasy"})
	b := app.books.Add(entity.Book{Title: "The Name of the Wind", GenreIDs: []string{g.ID}})
	app.instances.Add(entity.BookInstance{BookID: b.ID, Status: entity.StatusAvailable})
	app.instances.Add(entity.BookInstance{BookID: b.ID, Status: entity.StatusLoaned})

	rec := app.get("/catalog")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<strong>Books:</strong> 1")
	assert.Contains(t, body, "<strong>Copies:</strong> 2")
	assert.Contains(t, body, "<strong>Copies available:</strong> 1")
}

func TestRootRedirectsToCatalog(t *testing.T) {
	app := newTestApp(t)
	rec := app.get("/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	app := newTestApp(t)
	rec := app.get("/catalog/nope/also-nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestGenreRoutes(t *testing.T) {
	t.Run("list shows stored genres", func(t *testing.T) {
		app := newTestApp(t)
		app.genres.Add(entity.Genre{Name: "Fantasy"})

		rec := app.get("/catalog/genres")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Fantasy")
	})

	t.Run("detail of unknown genre is a 404 page", func(t *testing.T) {
		app := newTestApp(t)
		rec := app.get("/catalog/genre/nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create form renders", func(t *testing.T) {
		app := newTestApp(t)
		rec := app.get("/catalog/genre/create")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `name="name"`)
	})

	t.Run("valid create redirects to the new genre", func(t *testing.T) {
		app := newTestApp(t)
		rec := app.postForm("/catalog/genre/create", url.Values{"name": {"Fantasy"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/catalog/genre/genre-1", rec.Header().Get("Location"))
	})

	t.Run("empty name re-renders the form with the message", func(t *testing.T) {
		app := newTestApp(t)
		rec := app.postForm("/catalog/genre/create", url.Values{"name": {"  "}})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "name must not be empty")

		n, _ := app.genres.Count(context.Background())
		assert.Zero(t, n)
	})

	t.Run("delete page lists blocking books", func(t *testing.T) {
		app := newTestApp(t)
		g := app.genres.Add(entity.Genre{Name: "Fantasy"})
		app.books.Add(entity.Book{Title: "The Name of the Wind", GenreIDs: []string{g.ID}})

		rec := app.get("/catalog/genre/" + g.ID + "/delete")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "The Name of the Wind")
	})

	t.Run("unblocked delete redirects to the list", func(t *testing.T) {
		app := newTestApp(t)
		g := app.genres.Add(entity.Genre{Name: "Fantasy"})

		rec := app.postForm("/catalog/genre/"+g.ID+"/delete", url.Values{})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/catalog/genres", rec.Header().Get("Location"))
	})
}

func TestAuthorRoutes(t *testing.T) {
	t.Run("update post preserves the identifier", func(t *testing.T) {
		app := newTestApp(t)
		a := app.authors.Add(entity.Author{FirstName: "Pat", FamilyName: "Rothfuss"})

		form := url.Values{"first_name": {"Patrick"}, "family_name": {"Rothfuss"}}
		rec := app.postForm("/catalog/author/"+a.ID+"/update", form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, a.URL(), rec.Header().Get("Location"))
	})

	t.Run("update form for unknown author is a 404 page", func(t *testing.T) {
		app := newTestApp(t)
		rec := app.get("/catalog/author/nope/update")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid date of birth re-renders", func(t *testing.T) {
		app := newTestApp(t)
		form := url.Values{
			"first_name":    {"Patrick"},
			"family_name":   {"Rothfuss"},
			"date_of_birth": {"06/06/1973"},
		}
		rec := app.postForm("/catalog/author/create", form)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid date")
	})
}

func TestBookRoutes(t *testing.T) {
	t.Run("multi genre submission persists every reference", func(t *testing.T) {
		app := newTestApp(t)
		a := app.authors.Add(entity.Author{FirstName: "Patrick", FamilyName: "Rothfuss"})
		g1 := app.genres.Add(entity.Genre{Name: "Fantasy"})
		g2 := app.genres.Add(entity.Genre{Name: "Fiction"})

		form := url.Values{
			"title":   {"The Name of the Wind"},
			"author":  {a.ID},
			"summary": {"A story told by Kvothe."},
			"isbn":    {"9780747532699"},
			"genre":   {g1.ID, g2.ID},
		}
		rec := app.postForm("/catalog/book/create", form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)

		stored := app.books.Books["book-1"]
		assert.ElementsMatch(t, []string{g1.ID, g2.ID}, stored.GenreIDs)
	})

	t.Run("single genre submission still persists a list", func(t *testing.T) {
		app := newTestApp(t)
		a := app.authors.Add(entity.Author{FirstName: "Patrick", FamilyName: "Rothfuss"})
		g := app.genres.Add(entity.Genre{Name: "Fantasy"})

		form := url.Values{
			"title":   {"The Name of the Wind"},
			"author":  {a.ID},
			"summary": {"A story told by Kvothe."},
			"isbn":    {"9780747532699"},
			"genre":   {g.ID},
		}
		rec := app.postForm("/catalog/book/create", form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, []string{g.ID}, app.books.Books["book-1"].GenreIDs)
	})

	t.Run("invalid submission keeps the genre checked", func(t *testing.T) {
		app := newTestApp(t)
		a := app.authors.Add(entity.Author{FirstName: "Patrick", FamilyName: "Rothfuss"})
		g := app.genres.Add(entity.Genre{Name: "Fantasy"})

		form := url.Values{
			"title":   {""},
			"author":  {a.ID},
			"summary": {"s"},
			"isbn":    {"9780747532699"},
			"genre":   {g.ID},
		}
		rec := app.postForm("/catalog/book/create", form)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "title must not be empty")
		assert.Contains(t, body, "checked")
	})

	t.Run("delete page lists blocking copies", func(t *testing.T) {
		app := newTestApp(t)
		b := app.books.Add(entity.Book{Title: "The Name of the Wind"})
		app.instances.Add(entity.BookInstance{BookID: b.ID, Imprint: "Gollancz, 2014", Status: entity.StatusLoaned})

		rec := app.get("/catalog/book/" + b.ID + "/delete")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Gollancz, 2014")
	})
}

func TestBookInstanceRoutes(t *testing.T) {
	t.Run("create form offers every status", func(t *testing.T) {
		app := newTestApp(t)
		rec := app.get("/catalog/bookinstance/create")
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		for _, s := range entity.Statuses() {
			assert.Contains(t, body, string(s))
		}
	})

	t.Run("invalid due date re-renders", func(t *testing.T) {
		app := newTestApp(t)
		b := app.books.Add(entity.Book{Title: "T"})

		form := url.Values{
			"book":     {b.ID},
			"imprint":  {"Gollancz, 2014"},
			"status":   {"Loaned"},
			"due_back": {"not-a-date"},
		}
		rec := app.postForm("/catalog/bookinstance/create", form)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid date")
	})

	t.Run("valid create redirects to the new copy", func(t *testing.T) {
		app := newTestApp(t)
		b := app.books.Add(entity.Book{Title: "T"})

		form := url.Values{
			"book":    {b.ID},
			"imprint": {"Gollancz, 2014"},
			"status":  {"Available"},
		}
		rec := app.postForm("/catalog/bookinstance/create", form)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/catalog/bookinstance/instance-1", rec.Header().Get("Location"))
	})
}
