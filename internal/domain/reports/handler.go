package reports

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/reports/{reportID}", downloadReportHandler(store))
}

func downloadReportHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "reportID")

		d, ok := store.Get(id)
		if !ok {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="`+d.Filename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(d.Data)
	}
}
