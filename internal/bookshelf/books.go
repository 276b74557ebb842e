package bookshelf

import "sync"

type Book struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
}

type books struct {
	linker *Bookshelf
	mu     sync.RWMutex
	byID   map[string]*Book // кэш
}

func newBooks(linker *Bookshelf) *books {
	return &books{
		linker: linker,
		byID:   make(map[string]*Book),
	}
}

func (bks *books) Add(book *Book) error {
	err := bks.linker.storage.AddBook(book)
	if err != nil {
		return err
	}

	// закэшируем созданную книгу
	bks.mu.Lock()
	bks.byID[book.ID] = book
	bks.mu.Unlock()

	return nil
}

func (bks *books) Get(id string) (*Book, error) {
	var err error

	bks.mu.RLock()
	b, ok := bks.byID[id]
	bks.mu.RUnlock()
	if !ok {
		b, err = bks.linker.storage.GetBook(id)
		if err != nil {
			return nil, err
		}
		// закэшируем полученную книгу
		bks.mu.Lock()
		bks.byID[id] = b
		bks.mu.Unlock()
	}

	return b, nil
}

// GetAll ходит сразу в хранилище: кэш не гарантирует полноту списка.
func (bks *books) GetAll() ([]*Book, error) {
	all, err := bks.linker.storage.GetAllBooks()
	if err != nil {
		return nil, err
	}

	return all, nil
}

func (bks *books) Update(book *Book) error {
	err := bks.linker.storage.UpdateBook(book)
	if err != nil {
		return err
	}

	bks.mu.Lock()
	bks.byID[book.ID] = book
	bks.mu.Unlock()

	return nil
}

func (bks *books) Delete(id string) error {
	err := bks.linker.storage.DeleteBook(id)
	if err != nil {
		return err
	}

	bks.mu.Lock()
	delete(bks.byID, id)
	bks.mu.Unlock()

	return nil
}
