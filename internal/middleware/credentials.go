package middleware

import (
	"net/http"
	"slices"

	"github.com/stpnv0/MOTBooker/internal/backend"
	"github.com/stpnv0/MOTBooker/internal/service"
	"github.com/wb-go/wbf/ginext"
)

// StaffCookie holds the email of the signed-in staff member. It only
// names the actor in the audit log; the backend session decides access.
const StaffCookie = "mot_staff"

// BackendCredentials forwards the browser's backend session cookies with
// every backend call made while serving the request. Cookies listed in
// local belong to this server and are not forwarded.
func BackendCredentials(local ...string) ginext.HandlerFunc {
	local = append(slices.Clone(local), StaffCookie)

	return func(c *ginext.Context) {
		var forward []*http.Cookie
		for _, ck := range c.Request.Cookies() {
			if !slices.Contains(local, ck.Name) {
				forward = append(forward, ck)
			}
		}

		ctx := backend.WithCookies(c.Request.Context(), forward)
		if staff, err := c.Cookie(StaffCookie); err == nil && staff != "" {
			ctx = service.WithActor(ctx, staff)
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
