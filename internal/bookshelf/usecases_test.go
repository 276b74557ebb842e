package bookshelf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeysynergy/bookshelf/internal/basicstorage"
	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func newShelf() *bookshelf.Bookshelf {
	return bookshelf.New(basicstorage.New())
}

func TestRegister(t *testing.T) {
	bs := newShelf()
	creds := &bookshelf.Credentials{Username: "testov", Password: "Passw0rd33"}

	err := bs.Register(creds)
	require.NoError(t, err)

	// повторная регистрация с тем же именем всегда отклоняется
	err = bs.Register(creds)
	assert.ErrorIs(t, err, bookshelf.ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	bs := newShelf()
	creds := &bookshelf.Credentials{Username: "testov", Password: "Passw0rd33"}
	require.NoError(t, bs.Register(creds))

	tests := []struct {
		name    string
		creds   *bookshelf.Credentials
		wantErr error
	}{
		{
			name:  "valid pair",
			creds: creds,
		},
		{
			name:    "wrong password",
			creds:   &bookshelf.Credentials{Username: "testov", Password: "wrongPass"},
			wantErr: bookshelf.ErrInvalidPair,
		},
		{
			name:    "unknown user",
			creds:   &bookshelf.Credentials{Username: "nobody", Password: "Passw0rd33"},
			wantErr: bookshelf.ErrInvalidPair,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := bs.Login(tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token.Value)
			assert.Equal(t, "testov", token.Username)
		})
	}
}

func TestLoginMintsUniqueTokens(t *testing.T) {
	bs := newShelf()
	creds := &bookshelf.Credentials{Username: "testov", Password: "Passw0rd33"}
	require.NoError(t, bs.Register(creds))

	first, err := bs.Login(creds)
	require.NoError(t, err)
	second, err := bs.Login(creds)
	require.NoError(t, err)

	// у пользователя может быть несколько живых токенов одновременно
	assert.NotEqual(t, first.Value, second.Value)

	for _, token := range []*bookshelf.Token{first, second} {
		username, err := bs.Authenticate(token.Value)
		require.NoError(t, err)
		assert.Equal(t, "testov", username)
	}
}

func TestAuthenticateUnknownToken(t *testing.T) {
	bs := newShelf()

	_, err := bs.Authenticate("deadbeef")
	assert.ErrorIs(t, err, bookshelf.ErrUnauthorizedAccess)
}

func TestBookLifecycle(t *testing.T) {
	bs := newShelf()

	created, err := bs.AddBook(&bookshelf.Book{Title: "A", Author: "B", Description: "C"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := bs.GetBook(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := bs.UpdateBook(created.ID, &bookshelf.Book{Title: "A2", Author: "B2", Description: "C2"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err = bs.GetBook(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Title)

	require.NoError(t, bs.DeleteBook(created.ID))

	_, err = bs.GetBook(created.ID)
	assert.ErrorIs(t, err, bookshelf.ErrBookNotFound)
}

func TestBookNotFound(t *testing.T) {
	bs := newShelf()

	_, err := bs.GetBook("no-such-id")
	assert.ErrorIs(t, err, bookshelf.ErrBookNotFound)

	_, err = bs.UpdateBook("no-such-id", &bookshelf.Book{Title: "X"})
	assert.ErrorIs(t, err, bookshelf.ErrBookNotFound)

	err = bs.DeleteBook("no-such-id")
	assert.ErrorIs(t, err, bookshelf.ErrBookNotFound)
}

func TestListBooks(t *testing.T) {
	bs := newShelf()
	for _, title := range []string{"Dune", "Foundation"} {
		_, err := bs.AddBook(&bookshelf.Book{Title: title})
		require.NoError(t, err)
	}

	page, err := bs.ListBooks(&bookshelf.ListQuery{Search: "dun"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Dune", page.Items[0].Title)
}
