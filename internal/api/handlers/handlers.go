package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"

	"github.com/sergeysynergy/bookshelf/internal/bookshelf"
)

const (
	ContentTypeApplicationJSON = "application/json"
	ContentTypeForm            = "application/x-www-form-urlencoded"
	LogLvlDebug                = "[DEBUG]"
	LogLvlInfo                 = "[INFO]"
	LogLvlWarning              = "[WARNING]"
	LogLvlError                = "[ERROR]"
	LogLvlFatal                = "[FATAL]"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type handler struct {
	r  chi.Router
	bs *bookshelf.Bookshelf
}

type Option func(*handler)

func New(bs *bookshelf.Bookshelf, opts ...Option) *handler {
	h := &handler{
		r:  chi.NewRouter(),
		bs: bs,
	}
	// применяем в цикле каждую опцию
	for _, opt := range opts {
		opt(h) // *handler как аргумент
	}

	// Общая для всех роутеров миделвара
	h.r.Use(middleware.Compress(3, "gzip"))
	h.r.Use(middleware.RequestID)
	h.r.Use(middleware.RealIP)
	h.r.Use(middleware.Logger)
	h.r.Use(middleware.Recoverer)

	// Зададим роуты
	h.setRoutes()

	// Вернём измененный экземпляр handler
	return h
}

func (h *handler) GetRouter() chi.Router {
	return h.r
}

func (h *handler) log(r *http.Request, lvl, msg string) {
	reqID := middleware.GetReqID(r.Context())
	if reqID != "" {
		reqID = "[" + reqID + "] "
	}
	url := fmt.Sprintf(`"%s %s%s%s"`, r.Method, "http://", r.Host, r.URL)
	log.Printf("%s%s %s %s", reqID, lvl, url, msg)
}

// respond отдаёт тело ответа в формате JSON
func (h *handler) respond(w http.ResponseWriter, r *http.Request, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.error(w, r, fmt.Errorf("failed to marshal JSON - %w", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeApplicationJSON)
	w.Write(body)
}
