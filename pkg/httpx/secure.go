package httpx

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders sets the standard browser hardening headers. TLS is
// terminated in front of the service, so no redirects are issued.
func SecureHeaders(isDevelopment bool) Middleware {
	s := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:      isDevelopment,
	})
	return func(next http.Handler) http.Handler {
		return s.Handler(next)
	}
}
