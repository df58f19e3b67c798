package handler

import (
	"errors"
	"net/http"

	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/domain"
	"github.com/stpnv0/MOTBooker/internal/handler/dto"
	"github.com/stpnv0/MOTBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const adminHome = bookingsPath

type loginView struct {
	Email string
	Error string
}

func (h *Handler) LoginPage(c *ginext.Context) {
	c.HTML(http.StatusOK, "login.html", loginView{})
}

// relayCookies hands the backend session to the browser. The domain is
// dropped so the cookie binds to this host.
func relayCookies(c *ginext.Context, cookies []*http.Cookie) {
	for _, ck := range cookies {
		out := *ck
		out.Domain = ""
		http.SetCookie(c.Writer, &out)
	}
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c, req.Email, http.StatusBadRequest, "Email and password are required")
		return
	}

	cookies, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Set("error", err.Error())
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.loginFailed(c, req.Email, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, domain.ErrValidation):
			h.loginFailed(c, req.Email, http.StatusBadRequest, "Email and password are required")
		default:
			h.loginFailed(c, req.Email, http.StatusBadGateway, backend.Message(err))
		}
		return
	}

	relayCookies(c, cookies)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.StaffCookie, req.Email, 0, "/", "", h.sessions.Secure, true)

	if wantsHTML(c) || c.ContentType() == "application/x-www-form-urlencoded" {
		c.Redirect(http.StatusSeeOther, adminHome)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged in"})
}

func (h *Handler) loginFailed(c *ginext.Context, email string, status int, msg string) {
	if wantsHTML(c) {
		c.HTML(status, "login.html", loginView{Email: email, Error: msg})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}

func (h *Handler) Logout(c *ginext.Context) {
	cookies, err := h.authService.Logout(c.Request.Context())
	if err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		h.handleError(c, err)
		return
	}

	relayCookies(c, cookies)
	c.SetCookie(middleware.StaffCookie, "", -1, "/", "", h.sessions.Secure, true)

	if wantsHTML(c) || c.ContentType() == "application/x-www-form-urlencoded" {
		c.Redirect(http.StatusSeeOther, loginPath)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Session answers 204 while the forwarded staff session is valid.
func (h *Handler) Session(c *ginext.Context) {
	if err := h.authService.Check(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
