package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeysynergy/bookshelf/internal/basicstorage"
	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

func newTestServer() *httptest.Server {
	st := basicstorage.New()
	bs := bookshelf.New(st)
	h := New(bs)

	return httptest.NewServer(h.GetRouter())
}

func TestSignupAndLogin(t *testing.T) {
	type want struct {
		statusCode int
	}
	tests := []struct {
		name       string
		addr       string
		form       bool
		user       bookshelf.Credentials
		checkToken bool
		want       want
	}{
		{
			name: "signup status Ok",
			addr: "/signup",
			user: bookshelf.Credentials{
				Username: "testov",
				Password: "Passw0rd33",
			},
			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name: "signup status bad request: username already taken",
			addr: "/signup",
			user: bookshelf.Credentials{
				Username: "testov",
				Password: "Passw0rd33",
			},
			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name: "login status unauthorized: unknown user",
			addr: "/login",
			form: true,
			user: bookshelf.Credentials{
				Username: "unknownUser",
				Password: "Passw0rd33",
			},
			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name: "login status unauthorized: wrong password",
			addr: "/login",
			form: true,
			user: bookshelf.Credentials{
				Username: "testov",
				Password: "wrongPass",
			},
			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name: "login status Ok",
			addr: "/login",
			form: true,
			user: bookshelf.Credentials{
				Username: "testov",
				Password: "Passw0rd33",
			},
			checkToken: true,
			want: want{
				statusCode: http.StatusOK,
			},
		},
	}

	ts := newTestServer()
	defer ts.Close()

	client := resty.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			type tokenOut struct {
				AccessToken string `json:"access_token"`
				TokenType   string `json:"token_type"`
			}
			token := &tokenOut{}

			req := client.R()
			if tt.form {
				req.SetFormData(map[string]string{
					"username": tt.user.Username,
					"password": tt.user.Password,
				}).SetResult(token)
			} else {
				req.SetHeader("Content-Type", ContentTypeApplicationJSON).
					SetBody(tt.user)
			}

			resp, err := req.Post(ts.URL + tt.addr)
			assert.NoError(t, err)
			assert.Equal(t, tt.want.statusCode, resp.StatusCode())

			if tt.checkToken {
				assert.NotEmpty(t, token.AccessToken)
				assert.Equal(t, "bearer", token.TokenType)
			}
		})
	}
}

func TestLoginTokenUniqueness(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", ContentTypeApplicationJSON).
		SetBody(bookshelf.Credentials{Username: "testov", Password: "Passw0rd33"}).
		Post(ts.URL + "/signup")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	login := func() string {
		type tokenOut struct {
			AccessToken string `json:"access_token"`
		}
		token := &tokenOut{}
		resp, err := client.R().
			SetFormData(map[string]string{"username": "testov", "password": "Passw0rd33"}).
			SetResult(token).
			Post(ts.URL + "/login")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		require.NotEmpty(t, token.AccessToken)
		return token.AccessToken
	}

	first := login()
	second := login()
	assert.NotEqual(t, first, second)
}
