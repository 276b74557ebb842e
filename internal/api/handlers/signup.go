package handlers

import (
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func (h *handler) signup(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, ContentTypeApplicationJSON) {
		err := fmt.Errorf("wrong content type, JSON needed")
		h.error(w, r, err, http.StatusBadRequest)
		return
	}

	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to read request body - %w", err), http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	var creds bookshelf.Credentials
	err = json.Unmarshal(reqBody, &creds)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to unmarshal body - %w", err), http.StatusBadRequest)
		return
	}

	err = h.bs.Register(&creds)
	if err != nil {
		// 400 — имя пользователя уже занято
		if errors.Is(err, bookshelf.ErrUsernameTaken) {
			h.error(w, r, bookshelf.ErrUsernameTaken, http.StatusBadRequest)
			return
		}
		h.error(w, r, fmt.Errorf("failed to register new user - %w", err), http.StatusInternalServerError)
		return
	}

	h.log(r, LogLvlDebug, fmt.Sprintf("user `%s` successfully created", creds.Username))

	type messageJSON struct {
		Message string `json:"message"`
	}
	h.respond(w, r, messageJSON{Message: "User created successfully"})
}
