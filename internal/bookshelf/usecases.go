package bookshelf

import (
	"time"

	"github.com/google/uuid"
)

func (bs *Bookshelf) Register(creds *Credentials) error {
	err := bs.Users.Add(creds)
	if err != nil {
		return err
	}

	return nil
}

// Login выдаёт новый токен на каждый успешный вызов:
// у одного пользователя может быть несколько живых токенов.
func (bs *Bookshelf) Login(creds *Credentials) (*Token, error) {
	user, err := bs.Users.Get(creds.Username)
	if err != nil {
		return nil, ErrInvalidPair
	}

	check := user.CheckPassword(creds.Password)
	if !check {
		return nil, ErrInvalidPair
	}

	// Создадим новый токен при помощи библиотеки github.com/google/uuid
	token := &Token{
		Value:     uuid.NewString(),
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	err = bs.Tokens.Add(token)
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (bs *Bookshelf) Authenticate(tokenValue string) (string, error) {
	token, err := bs.Tokens.Get(tokenValue)
	if err != nil {
		return "", ErrUnauthorizedAccess
	}

	return token.Username, nil
}

func (bs *Bookshelf) AddBook(book *Book) (*Book, error) {
	book.ID = uuid.NewString()

	err := bs.Books.Add(book)
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (bs *Bookshelf) GetBook(id string) (*Book, error) {
	book, err := bs.Books.Get(id)
	if err != nil {
		return nil, ErrBookNotFound
	}

	return book, nil
}

func (bs *Bookshelf) ListBooks(q *ListQuery) (*Page, error) {
	all, err := bs.Books.GetAll()
	if err != nil {
		return nil, err
	}

	return processQuery(all, q), nil
}

// UpdateBook заменяет все поля книги целиком, ID остаётся прежним.
func (bs *Bookshelf) UpdateBook(id string, book *Book) (*Book, error) {
	_, err := bs.Books.Get(id)
	if err != nil {
		return nil, ErrBookNotFound
	}

	book.ID = id
	err = bs.Books.Update(book)
	if err != nil {
		return nil, err
	}

	return book, nil
}

func (bs *Bookshelf) DeleteBook(id string) error {
	_, err := bs.Books.Get(id)
	if err != nil {
		return ErrBookNotFound
	}

	err = bs.Books.Delete(id)
	if err != nil {
		return err
	}

	return nil
}
