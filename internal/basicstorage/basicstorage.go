package basicstorage

import (
	"sync"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

type Storage struct {
	usersByUsernameMu sync.RWMutex
	usersByUsername   map[string]*bookshelf.User

	tokensByValueMu sync.RWMutex
	tokensByValue   map[string]*bookshelf.Token

	booksByIDMu sync.RWMutex
	booksByID   map[string]*bookshelf.Book
}

func New() *Storage {
	return &Storage{
		usersByUsername: make(map[string]*bookshelf.User),
		tokensByValue:   make(map[string]*bookshelf.Token),
		booksByID:       make(map[string]*bookshelf.Book),
	}
}
