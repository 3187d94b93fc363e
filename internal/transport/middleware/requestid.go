package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rdelacruz/payroll-management/pkg/logger"
)

// RequestID tags every request with a trace id, minting one when the caller
// did not send X-Trace-ID. The id rides the request-scoped logger and is
// echoed back in the response so payroll submissions can be traced end to
// end.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "trace_id", traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
