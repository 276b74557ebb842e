package basicstorage

import (
	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func (s *Storage) AddToken(token *bookshelf.Token) error {
	s.tokensByValueMu.Lock()
	s.tokensByValue[token.Value] = token
	s.tokensByValueMu.Unlock()

	return nil
}

func (s *Storage) GetToken(value string) (*bookshelf.Token, error) {
	s.tokensByValueMu.RLock()
	defer s.tokensByValueMu.RUnlock()

	token, ok := s.tokensByValue[value]
	if !ok {
		return nil, bookshelf.ErrTokenNotFound
	}

	return token, nil
}
