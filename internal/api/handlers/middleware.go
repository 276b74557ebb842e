package handlers

import (
	"net/http"
	"strings"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

// authCheck извлекает bearer-токен из заголовка Authorization и
// возвращает имя пользователя, которому он был выдан.
// Токен не проверяется криптографически — это чистый ключ для поиска.
func (h *handler) authCheck(w http.ResponseWriter, r *http.Request) (string, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		h.error(w, r, bookshelf.ErrUnauthorizedAccess, http.StatusUnauthorized)
		return "", bookshelf.ErrUnauthorizedAccess
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		h.error(w, r, bookshelf.ErrUnauthorizedAccess, http.StatusUnauthorized)
		return "", bookshelf.ErrUnauthorizedAccess
	}

	// получим имя пользователя из хранилища по токену
	username, err := h.bs.Authenticate(parts[1])
	if err != nil {
		h.error(w, r, bookshelf.ErrUnauthorizedAccess, http.StatusUnauthorized)
		return "", err
	}

	return username, nil
}
