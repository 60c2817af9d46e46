package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"apartment-journey/pkg/contextx"
)

const HeaderNameTraceID = "X-Trace-Id"

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(HeaderNameTraceID)

		if traceID == "" {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(HeaderNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
