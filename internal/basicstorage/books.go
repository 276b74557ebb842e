package basicstorage

import (
	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func (s *Storage) AddBook(b *bookshelf.Book) error {
	s.booksByIDMu.Lock()
	s.booksByID[b.ID] = b
	s.booksByIDMu.Unlock()

	return nil
}

func (s *Storage) GetBook(id string) (*bookshelf.Book, error) {
	s.booksByIDMu.RLock()
	defer s.booksByIDMu.RUnlock()

	b, ok := s.booksByID[id]
	if !ok {
		return nil, bookshelf.ErrBookNotFound
	}

	return b, nil
}

func (s *Storage) GetAllBooks() ([]*bookshelf.Book, error) {
	s.booksByIDMu.RLock()
	defer s.booksByIDMu.RUnlock()

	books := make([]*bookshelf.Book, 0, len(s.booksByID))
	for _, b := range s.booksByID {
		books = append(books, b)
	}

	return books, nil
}

func (s *Storage) UpdateBook(b *bookshelf.Book) error {
	s.booksByIDMu.Lock()
	defer s.booksByIDMu.Unlock()

	if _, ok := s.booksByID[b.ID]; !ok {
		return bookshelf.ErrBookNotFound
	}

	s.booksByID[b.ID] = b

	return nil
}

func (s *Storage) DeleteBook(id string) error {
	s.booksByIDMu.Lock()
	defer s.booksByIDMu.Unlock()

	if _, ok := s.booksByID[id]; !ok {
		return bookshelf.ErrBookNotFound
	}

	delete(s.booksByID, id)

	return nil
}
