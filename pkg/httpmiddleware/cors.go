package httpmiddleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists origins permitted to make cross-origin requests.
	// Empty, or containing "*", allows every origin.
	AllowOrigins []string

	// AllowMethods lists HTTP methods clients may use. Defaults to
	// "GET, POST, PUT, DELETE, OPTIONS" when empty.
	AllowMethods []string

	// AllowHeaders lists request headers clients may send. When empty the
	// preflight response echoes Access-Control-Request-Headers.
	AllowHeaders []string

	// ExposeHeaders lists response headers the browser may read.
	ExposeHeaders []string

	// AllowCredentials permits credentialed requests. Incompatible with the
	// wildcard origin, so enabling it forces per-origin echo.
	AllowCredentials bool

	// MaxAge is the preflight cache lifetime in seconds. Zero omits the
	// header, negative sends "0".
	MaxAge int
}

// corsPolicy holds the precomputed header values for a CORSConfig.
type corsPolicy struct {
	allowAll     bool
	origins      map[string]string // lowercased origin -> configured casing
	methods      string
	headers      string
	expose       string
	maxAge       string
	credentialed bool
}

func newCORSPolicy(cfg CORSConfig) *corsPolicy {
	p := &corsPolicy{
		allowAll:     len(cfg.AllowOrigins) == 0,
		origins:      make(map[string]string, len(cfg.AllowOrigins)),
		methods:      strings.Join(cfg.AllowMethods, ", "),
		headers:      strings.Join(cfg.AllowHeaders, ", "),
		expose:       strings.Join(cfg.ExposeHeaders, ", "),
		credentialed: cfg.AllowCredentials,
	}
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			p.allowAll = true
			break
		}
		p.origins[strings.ToLower(o)] = o
	}
	// The wildcard origin is invalid with credentials, echo instead.
	if p.credentialed {
		p.allowAll = false
	}
	if p.methods == "" {
		p.methods = "GET, POST, PUT, DELETE, OPTIONS"
	}
	switch {
	case cfg.MaxAge > 0:
		p.maxAge = strconv.Itoa(cfg.MaxAge)
	case cfg.MaxAge < 0:
		p.maxAge = "0"
	}
	return p
}

// resolve returns the Access-Control-Allow-Origin value for origin, or ""
// when the origin is not allowed.
func (p *corsPolicy) resolve(origin string) string {
	if p.allowAll {
		return "*"
	}
	return p.origins[strings.ToLower(origin)]
}

// CORS returns a middleware that handles Cross-Origin Resource Sharing.
// Preflight requests (OPTIONS carrying Access-Control-Request-Method) are
// answered with 204 and never reach the wrapped handler. Responses vary on
// Origin so shared caches cannot serve a CORS response to the wrong origin.
func CORS(cfg CORSConfig) Middleware {
	p := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				if !p.allowAll {
					w.Header().Add("Vary", "Origin")
				}
				next.ServeHTTP(w, r)
				return
			}

			allowOrigin := p.resolve(origin)

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				w.Header().Add("Vary", "Origin")
				w.Header().Add("Vary", "Access-Control-Request-Method")
				w.Header().Add("Vary", "Access-Control-Request-Headers")

				if allowOrigin == "" {
					w.WriteHeader(http.StatusNoContent)
					return
				}

				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				w.Header().Set("Access-Control-Allow-Methods", p.methods)
				if p.headers != "" {
					w.Header().Set("Access-Control-Allow-Headers", p.headers)
				} else if rh := r.Header.Get("Access-Control-Request-Headers"); rh != "" {
					w.Header().Set("Access-Control-Allow-Headers", rh)
				}
				if p.credentialed {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				if p.maxAge != "" {
					w.Header().Set("Access-Control-Max-Age", p.maxAge)
				}

				w.WriteHeader(http.StatusNoContent)
				return
			}

			if !p.allowAll {
				w.Header().Add("Vary", "Origin")
			}
			if allowOrigin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
				if p.credentialed {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				if p.expose != "" {
					w.Header().Set("Access-Control-Expose-Headers", p.expose)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
