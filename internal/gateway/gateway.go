package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	httpresponse "github.com/tumbleweedd/order_pipeline/internal/lib/http"
	"github.com/tumbleweedd/order_pipeline/pkg/logger"
)

var ErrInvalidRoute = errors.New("invalid route")

// Gateway forwards requests to backends by path prefix. Prefixes match whole
// segments and the longest registered prefix wins.
type Gateway struct {
	log    logger.Logger
	router chi.Router
	routes map[string]*url.URL
}

func New(log logger.Logger, routes []config.RouteConfig) (*Gateway, error) {
	const op = "gateway.New"

	g := &Gateway{
		log:    log,
		router: chi.NewRouter(),
		routes: make(map[string]*url.URL),
	}
	g.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httpresponse.WriteMessage(w, http.StatusNotFound, "route not found")
	})
	g.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httpresponse.WriteMessage(w, http.StatusNotFound, "route not found")
	})

	for _, route := range routes {
		if err := g.Route(route.Prefix, route.Target); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return g, nil
}

// Route registers a forwarding rule. The prefix is stripped before the
// request reaches target.
func (g *Gateway) Route(prefix, target string) error {
	const op = "gateway.Route"

	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		return fmt.Errorf("%s: %w: prefix must name a path segment", op, ErrInvalidRoute)
	}
	if _, ok := g.routes[prefix]; ok {
		return fmt.Errorf("%s: %w: duplicate prefix %s", op, ErrInvalidRoute, prefix)
	}

	targetURL, err := url.Parse(target)
	if err != nil || targetURL.Scheme == "" || targetURL.Host == "" {
		return fmt.Errorf("%s: %w: target %q is not an absolute url", op, ErrInvalidRoute, target)
	}

	g.routes[prefix] = targetURL
	g.router.Mount(prefix, http.StripPrefix(prefix, g.proxy(prefix, targetURL)))

	g.log.Info(op, logger.String("prefix", prefix), logger.String("target", targetURL.String()))

	return nil
}

func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.router.ServeHTTP(w, r)
}

func (g *Gateway) proxy(prefix string, target *url.URL) http.Handler {
	const op = "gateway.proxy"

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if pr.Out.URL.Path == "" {
				pr.Out.URL.Path = "/"
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			g.log.ErrorContext(r.Context(), op,
				logger.String("prefix", prefix),
				logger.String("target", target.String()),
				logger.Err(err),
			)
			httpresponse.WriteMessage(w, http.StatusBadGateway, "upstream unavailable")
		},
	}
}
