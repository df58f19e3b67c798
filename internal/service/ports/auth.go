package ports

import (
	"context"
	"net/http"
)

type AuthBackend interface {
	Login(ctx context.Context, email, password string) ([]*http.Cookie, error)
	Logout(ctx context.Context) ([]*http.Cookie, error)
	CheckAuth(ctx context.Context) error
}
