package landing

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"teamfortasks/internal/middleware"
	"teamfortasks/internal/services"
	"teamfortasks/web/templates/pages/landing"
)

// Handler serves the landing page. The billing period and the active
// mini-board tab come from the query string; anything else is a 400.
func Handler(svc *services.Services, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		page, err := svc.NewPage()
		if err != nil {
			log.Errorw("build page", "error", err)
			http.Error(w, "Failed to build page", http.StatusInternalServerError)
			return
		}
		if err := page.Apply(r.URL.Query()); err != nil {
			log.Warnw("invalid page state",
				"error", err,
				"query", r.URL.RawQuery,
				"request_id", middleware.RequestIDFrom(r.Context()),
			)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Debugw("render landing", "state", page.String())
		templ.Handler(landing.Landing(page.Model(time.Now()))).ServeHTTP(w, r)
	}
}
