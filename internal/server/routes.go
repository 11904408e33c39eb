package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"re_deals/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// расчёты без сохранения, доступны анонимно
			r.Route("/analysis", func(r chi.Router) {
				r.Post("/", handler(s.postV1Analysis))
				r.Post("/sensitivity", handler(s.postV1AnalysisSensitivity))
			})

			r.Get("/published", handler(s.getV1Published))

			// сохранённые сделки, владелец из X-User-Id
			r.Route("/deals", func(r chi.Router) {
				r.Post("/", handler(s.postV1Deals))
				r.Get("/", handler(s.getV1Deals))

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", handler(s.getV1Deal))
					r.Put("/", handler(s.putV1Deal))
					r.Delete("/", handler(s.deleteV1Deal))
					r.Post("/publish", handler(s.postV1DealPublish))
					r.Get("/analysis", handler(s.getV1DealAnalysis))
					r.Get("/sensitivity", handler(s.getV1DealSensitivity))
				})
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
