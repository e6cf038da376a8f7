package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/hangar-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.routes = append(router.routes, routes...)
		}
	}

	// WithInstrumentation envolve cada rota com o middleware devolvido por wrap,
	// recebendo o padrão da rota ("GET /v1/tiers/:id") como rótulo.
	WithInstrumentation = func(wrap func(route string) func(http.Handler) http.Handler) ConfigRouter {
		return func(router *Router) {
			router.instrument = wrap
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router     *httprouter.Router
	routes     []Route
	instrument func(route string) func(http.Handler) http.Handler
}

type ConfigRouter func(router *Router)

// New aplica as configurações e só então registra as rotas, de modo que a
// ordem das opções não importa.
func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}
	router.router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", nil)
	})
	router.router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Método não permitido para esta rota", nil)
	})

	for _, config := range configs {
		config(router)
	}
	router.AddRoutes(router.routes...)

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		if r.instrument != nil {
			handler = r.instrument(route.Method + " " + route.Path)(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}
