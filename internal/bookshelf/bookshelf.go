package bookshelf

import "github.com/google/uuid"

type Bookshelf struct {
	storage Storer

	Users  *Users
	Tokens *tokens
	Books  *books
}

func New(st Storer) *Bookshelf {
	bs := &Bookshelf{
		storage: st,
		Users:   newUsers(st),
		Tokens:  newTokens(st),
	}
	bs.Books = newBooks(bs)

	return bs
}

func WithTestBooks(st Storer) {
	titles := [][3]string{
		{"Dune", "Frank Herbert", "Spice and sandworms"},
		{"Foundation", "Isaac Asimov", "Psychohistory saves the galaxy"},
		{"Solaris", "Stanislaw Lem", "An ocean that thinks"},
	}
	for _, t := range titles {
		st.AddBook(&Book{
			ID:          uuid.NewString(),
			Title:       t[0],
			Author:      t[1],
			Description: t[2],
		})
	}
}
