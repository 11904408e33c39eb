package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"re_deals/pkg/logx"
	"re_deals/pkg/middlewarex"
)

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	AnalysisServer
	DealServer
}

func NewServer(
	analysisServer AnalysisServer,
	dealServer DealServer,
) Server {
	return Server{
		AnalysisServer: analysisServer,
		DealServer:     dealServer,
	}
}

// Handler роутер с middleware. logFieldMaxLen ограничивает размер тел запросов в логах.
func (s Server) Handler(logFieldMaxLen int) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.UserID,
		middlewarex.Logger,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}
