package bookshelf

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Storer interface {
	AddUser(*User) error
	GetUser(username string) (*User, error)

	AddToken(*Token) error
	GetToken(value string) (*Token, error)

	AddBook(*Book) error
	GetBook(id string) (*Book, error)
	GetAllBooks() ([]*Book, error)
	UpdateBook(*Book) error
	DeleteBook(id string) error
}
