package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

// login принимает креды в form-encoded виде по конвенции bearer-токенов
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to parse form - %w", err), http.StatusBadRequest)
		return
	}

	creds := &bookshelf.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	token, err := h.bs.Login(creds)
	if err != nil {
		// 401 — неверная пара логин/пароль, либо пользователь не найден
		if errors.Is(err, bookshelf.ErrInvalidPair) {
			h.error(w, r, bookshelf.ErrInvalidPair, http.StatusUnauthorized)
			return
		}
		h.error(w, r, err, http.StatusInternalServerError)
		return
	}

	h.log(r, LogLvlDebug, fmt.Sprintf("token for user `%s` successfully created", creds.Username))

	type tokenJSON struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	h.respond(w, r, tokenJSON{
		AccessToken: token.Value,
		TokenType:   "bearer",
	})
}
