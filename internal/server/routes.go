package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bargain/pkg/httpx/reply"
	"bargain/pkg/logx"
	"bargain/pkg/middlewarex"
)

// NewHandler builds the API router with the logging middleware chain.
func NewHandler(s Server, logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/bargain", func(r chi.Router) {
				r.Get("/", handler(s.getV1Bargain))
				r.Post("/", handler(s.postV1Bargain))
				r.Get("/config", handler(s.getV1BargainConfig))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
