package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/api"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/interfaces/rest/middleware"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewHTTPHandler mounts the generated routes and the docs behind schema
// validation and the recovery, logging, timeout and request id middleware.
func NewHTTPHandler(h *Handlers, doc *openapi3.T, timeout time.Duration, logger *slog.Logger) (http.Handler, error) {
	strictHandler := api.NewStrictHandlerWithOptions(h, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.requestError,
		ResponseErrorHandlerFunc: h.responseError,
	})

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: h.requestError,
	})

	validator, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		return nil, err
	}

	handler := validator(mux)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(timeout)(handler)
	handler = middleware.RequestID()(handler)
	return handler, nil
}

func (h *Handlers) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	rest.WriteError(w, application.NewInvalidInputError(err), h.logger)
}

func (h *Handlers) responseError(w http.ResponseWriter, _ *http.Request, err error) {
	rest.WriteError(w, application.NewInternalError(err), h.logger)
}

func (h *Handlers) logServerError(err error) {
	h.logger.Error("request failed",
		"error", err,
		"code", application.ToErrorCode(err),
		"category", application.CategorizeError(err),
	)
}
