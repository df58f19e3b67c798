package backend

import (
	"context"
	"net/http"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login returns the session cookies the backend set.
func (c *Client) Login(ctx context.Context, email, password string) ([]*http.Cookie, error) {
	res, err := c.do(ctx, call{
		endpoint: "login",
		method:   http.MethodPost,
		path:     "/api/users/login",
		body:     loginBody{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}
	return res.cookies, nil
}

// Logout returns the cookies the backend set to clear the session.
func (c *Client) Logout(ctx context.Context) ([]*http.Cookie, error) {
	res, err := c.do(ctx, call{
		endpoint: "logout",
		method:   http.MethodPost,
		path:     "/api/users/logout",
	})
	if err != nil {
		return nil, err
	}
	return res.cookies, nil
}

// CheckAuth returns nil while the session is valid.
func (c *Client) CheckAuth(ctx context.Context) error {
	_, err := c.do(ctx, call{
		endpoint: "check_auth",
		method:   http.MethodPost,
		path:     "/api/protected",
	})
	return err
}
