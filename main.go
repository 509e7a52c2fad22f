package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/pliu/hiver/internal/config"
	"github.com/pliu/hiver/internal/handlers"
	"github.com/pliu/hiver/internal/logging"
	"github.com/pliu/hiver/internal/media"
	"github.com/pliu/hiver/internal/middleware"
	"github.com/pliu/hiver/internal/store/sqlstore"
)

var addr = flag.String("addr", "", "http service address (overrides HIVER_ADDR)")

func main() {
	flag.Parse()

	cfg := config.Load()
	logging.Init(cfg.Env)
	if *addr != "" {
		cfg.Addr = *addr
	}

	store, err := sqlstore.New(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("open database")
	}
	defer store.Close()

	mediaStore, err := media.New(cfg.MediaDir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.MediaDir).Msg("open media dir")
	}

	authHandler := &handlers.AuthHandler{Store: store}
	chatHandler := &handlers.ChatHandler{Store: store, Media: mediaStore}
	messageHandler := &handlers.MessageHandler{Store: store, Media: mediaStore}

	r := mux.NewRouter()
	r.Use(middleware.Recover, middleware.RequestLogger, middleware.Metrics)
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst))
	}

	// API Endpoints
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/chats", chatHandler.ListChats).Methods("GET")
	r.HandleFunc("/create_chat", chatHandler.CreateChat).Methods("POST")
	r.HandleFunc("/delete_chat", chatHandler.DeleteChat).Methods("POST")
	r.HandleFunc("/send_message", messageHandler.SendMessage).Methods("POST")
	r.HandleFunc("/get_messages", messageHandler.GetMessages).Methods("GET")
	r.HandleFunc("/media/{chat_id}/{filename}", messageHandler.ServeMedia).Methods("GET", "HEAD")

	// Operational endpoints
	r.HandleFunc("/healthz", handlers.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
