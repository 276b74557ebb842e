package handlers

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func (h *handler) readBook(w http.ResponseWriter, r *http.Request) (*bookshelf.Book, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, ContentTypeApplicationJSON) {
		err := fmt.Errorf("wrong content type, JSON needed")
		h.error(w, r, err, http.StatusBadRequest)
		return nil, err
	}

	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to read request body - %w", err), http.StatusInternalServerError)
		return nil, err
	}
	defer r.Body.Close()

	book := &bookshelf.Book{}
	err = json.Unmarshal(reqBody, book)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to unmarshal body - %w", err), http.StatusBadRequest)
		return nil, err
	}

	return book, nil
}

func (h *handler) postBook(w http.ResponseWriter, r *http.Request) {
	username, err := h.authCheck(w, r)
	if err != nil {
		// 401 — пользователь не авторизован
		return
	}

	book, err := h.readBook(w, r)
	if err != nil {
		return
	}

	book, err = h.bs.AddBook(book)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to add book - %w", err), http.StatusInternalServerError)
		return
	}

	h.log(r, LogLvlDebug, fmt.Sprintf("user `%s` added book %s", username, book.ID))
	h.respond(w, r, book)
}

func (h *handler) getBooks(w http.ResponseWriter, r *http.Request) {
	_, err := h.authCheck(w, r)
	if err != nil {
		// 401 — пользователь не авторизован
		return
	}

	values := r.URL.Query()
	// исторический огрех контракта: параметр называется `id`,
	// но фильтрует по подстроке названия книги
	q := &bookshelf.ListQuery{
		Search: values.Get("id"),
		Sort:   values.Get("sort"),
	}
	q.Page, _ = strconv.Atoi(values.Get("page"))
	q.Size, _ = strconv.Atoi(values.Get("size"))

	page, err := h.bs.ListBooks(q)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to list books - %w", err), http.StatusInternalServerError)
		return
	}

	h.respond(w, r, page)
}

func (h *handler) getBook(w http.ResponseWriter, r *http.Request) {
	_, err := h.authCheck(w, r)
	if err != nil {
		// 401 — пользователь не авторизован
		return
	}

	book, err := h.bs.GetBook(chi.URLParam(r, "bookID"))
	if err != nil {
		// 404 — книга с таким ID не найдена
		if errors.Is(err, bookshelf.ErrBookNotFound) {
			h.error(w, r, bookshelf.ErrBookNotFound, http.StatusNotFound)
			return
		}
		h.error(w, r, err, http.StatusInternalServerError)
		return
	}

	h.respond(w, r, book)
}

func (h *handler) putBook(w http.ResponseWriter, r *http.Request) {
	username, err := h.authCheck(w, r)
	if err != nil {
		// 401 — пользователь не авторизован
		return
	}

	book, err := h.readBook(w, r)
	if err != nil {
		return
	}

	book, err = h.bs.UpdateBook(chi.URLParam(r, "bookID"), book)
	if err != nil {
		// 404 — книга с таким ID не найдена
		if errors.Is(err, bookshelf.ErrBookNotFound) {
			h.error(w, r, bookshelf.ErrBookNotFound, http.StatusNotFound)
			return
		}
		h.error(w, r, err, http.StatusInternalServerError)
		return
	}

	h.log(r, LogLvlDebug, fmt.Sprintf("user `%s` updated book %s", username, book.ID))
	h.respond(w, r, book)
}

func (h *handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	username, err := h.authCheck(w, r)
	if err != nil {
		// 401 — пользователь не авторизован
		return
	}

	id := chi.URLParam(r, "bookID")
	err = h.bs.DeleteBook(id)
	if err != nil {
		// 404 — книга с таким ID не найдена
		if errors.Is(err, bookshelf.ErrBookNotFound) {
			h.error(w, r, bookshelf.ErrBookNotFound, http.StatusNotFound)
			return
		}
		h.error(w, r, err, http.StatusInternalServerError)
		return
	}

	h.log(r, LogLvlDebug, fmt.Sprintf("user `%s` deleted book %s", username, id))

	type messageJSON struct {
		Message string `json:"message"`
	}
	h.respond(w, r, messageJSON{Message: "Book deleted"})
}
