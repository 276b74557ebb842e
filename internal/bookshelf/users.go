package bookshelf

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Username string
	Password []byte
}

func (u *User) CheckPassword(password string) bool {
	if err := bcrypt.CompareHashAndPassword(u.Password, []byte(password)); err != nil {
		return false
	}

	return true
}

type Users struct {
	mu         sync.RWMutex
	storage    Storer
	byUsername map[string]*User
}

func newUsers(st Storer) *Users {
	return &Users{
		storage:    st,
		byUsername: make(map[string]*User),
	}
}

func HashPass(password string) ([]byte, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 8)
	if err != nil {
		return nil, err
	}

	return hashedPassword, nil
}

func (urs *Users) Add(creds *Credentials) error {
	// проверим наличие пользователя в кэше
	urs.mu.RLock()
	_, ok := urs.byUsername[creds.Username]
	urs.mu.RUnlock()
	if ok {
		return ErrUsernameTaken
	}

	hashedPassword, err := HashPass(creds.Password)
	if err != nil {
		return err
	}

	u := &User{
		Username: creds.Username,
		Password: hashedPassword,
	}

	err = urs.storage.AddUser(u)
	if err != nil {
		return err
	}

	// закэшируем созданного пользователя
	urs.mu.Lock()
	urs.byUsername[u.Username] = u
	urs.mu.Unlock()

	return nil
}

func (urs *Users) Get(username string) (*User, error) {
	var err error

	urs.mu.RLock()
	u, ok := urs.byUsername[username]
	urs.mu.RUnlock()
	if !ok {
		u, err = urs.storage.GetUser(username)
		if err != nil {
			return nil, err
		}
		// закэшируем полученного пользователя
		urs.mu.Lock()
		urs.byUsername[u.Username] = u
		urs.mu.Unlock()
	}

	return u, nil
}
