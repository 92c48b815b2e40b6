package security

import (
	"net/http"

	"github.com/noah-isme/backend-apotek/internal/common"
)

// BodyLimit caps request payload sizes. All API payloads are small JSON
// documents, so a single limit covers every route.
type BodyLimit struct {
	Max int64
}

// Middleware rejects requests whose declared length exceeds the limit and
// caps streamed bodies so handlers cannot read past it.
func (b BodyLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Max <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}
		if r.ContentLength > b.Max {
			common.JSONError(w, http.StatusRequestEntityTooLarge, common.CodeValidation, "request body too large", nil)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, b.Max)
		next.ServeHTTP(w, r)
	})
}
