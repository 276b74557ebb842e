package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// error отдаёт ошибку клиенту телом вида `{"detail": ...}` —
// формат зафиксирован контрактом API
func (h *handler) error(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	reqID := middleware.GetReqID(r.Context())

	type errorJSON struct {
		Detail string `json:"detail"`
	}
	e := errorJSON{
		Detail: err.Error(),
	}

	prefix := "[ERROR]"
	if reqID != "" {
		prefix = fmt.Sprintf("[%s] [ERROR]", reqID)
	}

	b, errMarshal := json.Marshal(e)
	if errMarshal != nil {
		msg := fmt.Sprintf(`{"detail": "Failed to marshal error - %s"}`, err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(msg))
		log.Println(prefix, msg)
		return
	}

	w.Header().Set("Content-Type", ContentTypeApplicationJSON)
	w.WriteHeader(statusCode)
	w.Write(b)
	log.Println(prefix, e, statusCode)
}
