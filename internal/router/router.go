package routes

import (
	"net/http"

	_ "github.com/oggyb/beem-sms/internal/docs" // swagger docs
	"github.com/oggyb/beem-sms/internal/response"
	swaggerHandler "github.com/swaggo/http-swagger"
)

type AppDeps struct {
	Home HomeHandler
	SMS  SMSHandler
}

type HomeHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type SMSHandler interface {
	Send(w http.ResponseWriter, r *http.Request)
	SendBulk(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	GetByRequestID(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

func Register(mux *http.ServeMux, d AppDeps) {
	mux.HandleFunc("GET /{$}", d.Home.Index)
	mux.HandleFunc("GET /health", d.Home.Health)

	mux.HandleFunc("POST /sms/send", d.SMS.Send)
	mux.HandleFunc("POST /sms/bulk", d.SMS.SendBulk)
	mux.HandleFunc("GET /sms/history", d.SMS.History)
	mux.HandleFunc("GET /sms/requests/{requestId}", d.SMS.GetByRequestID)
	mux.HandleFunc("GET /sms/stats", d.SMS.Stats)

	//Swagger
	mux.HandleFunc("GET /swagger/", swaggerHandler.WrapHandler)

	// Fallback handler for undefined routes (404)
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.RespondError(w, http.StatusNotFound, "route not found")
	}))
}
