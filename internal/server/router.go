package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	catalogcontroller "tourquote/internal/catalog/controller"
	"tourquote/internal/currency"
	pricingcontroller "tourquote/internal/pricing/controller"
	"tourquote/internal/session"
)

func NewRouter(
	calculateCtrl *pricingcontroller.CalculateController,
	catalogCtrl *catalogcontroller.Controller,
	ratesCtrl *currency.Controller,
	sessionCtrl *session.Controller,
	sessionStore session.Store,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(session.Middleware(sessionStore))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/calculations", calculateCtrl.HandleCalculate)

		r.Get("/rates", ratesCtrl.HandleGetRates)
		r.Get("/session", sessionCtrl.HandleGetSession)

		r.Get("/tours", catalogCtrl.HandleListTours)
		r.Get("/tours/{tourId}", catalogCtrl.HandleGetTour)
		r.Get("/vehicles", catalogCtrl.HandleListVehicles)
		r.Get("/hotels", catalogCtrl.HandleListHotels)
		r.Get("/guides", catalogCtrl.HandleListGuides)
		r.Get("/seasons", catalogCtrl.HandleListSeasons)
		r.Get("/special-services", catalogCtrl.HandleListSpecialServices)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
