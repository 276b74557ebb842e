package bookshelf

import (
	"fmt"
	"sync"
	"time"
)

// Token живёт до конца работы процесса: ни срока годности, ни отзыва
// в этом дизайне нет, токен — чистый ключ для поиска пользователя.
type Token struct {
	Value     string
	Username  string
	CreatedAt time.Time
}

type tokens struct {
	mu      sync.RWMutex
	storage Storer
	byValue map[string]*Token // кэш
}

func newTokens(st Storer) *tokens {
	return &tokens{
		storage: st,
		byValue: make(map[string]*Token),
	}
}

func (tks *tokens) Add(token *Token) error {
	// проверим наличие токена в кэше
	tks.mu.RLock()
	_, ok := tks.byValue[token.Value]
	tks.mu.RUnlock()
	if ok {
		return fmt.Errorf("token already exists")
	}

	err := tks.storage.AddToken(token)
	if err != nil {
		return err
	}

	// закэшируем созданный токен
	tks.mu.Lock()
	tks.byValue[token.Value] = token
	tks.mu.Unlock()

	return nil
}

func (tks *tokens) Get(value string) (*Token, error) {
	var err error

	tks.mu.RLock()
	token, ok := tks.byValue[value]
	tks.mu.RUnlock()
	if !ok {
		token, err = tks.storage.GetToken(value)
		if err != nil {
			return nil, fmt.Errorf("%w - %s", ErrTokenNotFound, err)
		}
		// закэшируем полученный токен
		tks.mu.Lock()
		tks.byValue[token.Value] = token
		tks.mu.Unlock()
	}

	return token, nil
}
