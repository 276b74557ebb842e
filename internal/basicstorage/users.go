package basicstorage

import (
	"fmt"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func (s *Storage) AddUser(u *bookshelf.User) error {
	s.usersByUsernameMu.Lock()
	defer s.usersByUsernameMu.Unlock()

	if _, ok := s.usersByUsername[u.Username]; ok {
		return bookshelf.ErrUsernameTaken
	}

	s.usersByUsername[u.Username] = u

	return nil
}

func (s *Storage) GetUser(username string) (*bookshelf.User, error) {
	s.usersByUsernameMu.RLock()
	defer s.usersByUsernameMu.RUnlock()

	u, ok := s.usersByUsername[username]
	if !ok {
		return nil, fmt.Errorf("%w - username `%s`", bookshelf.ErrUserNotFound, username)
	}

	return u, nil
}
