package main

import (
	"embed"
	"net/http"
	"os"
	"time"

	"github.com/apex/httplog"
	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
	"github.com/caarlos0/contribgraph/config"
	"github.com/caarlos0/contribgraph/controller"
	"github.com/caarlos0/contribgraph/internal/cache"
	"github.com/caarlos0/contribgraph/internal/github"
	"github.com/go-redis/redis"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static/*
var static embed.FS

var version = "devel"

func main() {
	log.SetHandler(text.New(os.Stderr))
	config := config.Get()
	ctx := log.WithField("listen", config.Listen)

	store := newCache(config)
	defer store.Close()
	gh := github.New(config)

	r := mux.NewRouter()
	r.Path("/").
		Methods(http.MethodGet).
		Handler(controller.Index(static, version))
	r.Path("/").
		Methods(http.MethodPost).
		HandlerFunc(controller.HandleForm())
	r.PathPrefix("/static/").
		Methods(http.MethodGet).
		Handler(http.FileServer(http.FS(static)))
	r.Path("/graph/{username}").
		Methods(http.MethodGet).
		Handler(controller.GetGraph(static, gh, store))
	r.Path("/graph_svg/{username}").
		Methods(http.MethodGet).
		Handler(controller.GetGraphSVG(gh, store))
	r.Path("/stats/{username}").
		Methods(http.MethodGet).
		Handler(controller.GetStats(static, gh, store))

	// generic metrics
	requestCounter := promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contribgraph",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "total requests",
	}, []string{"code", "method"})
	responseObserver := promauto.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "contribgraph",
		Subsystem: "http",
		Name:      "responses",
		Help:      "response times and counts",
	}, []string{"code", "method"})

	r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())

	srv := &http.Server{
		Handler: httplog.New(
			promhttp.InstrumentHandlerDuration(
				responseObserver,
				promhttp.InstrumentHandlerCounter(
					requestCounter,
					r,
				),
			),
		),
		Addr:         config.Listen,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}
	ctx.Info("starting up...")
	ctx.WithError(srv.ListenAndServe()).Error("failed to start up server")
}

// newCache picks the cache backend from configuration. When caching is
// disabled every lookup misses and writes are dropped.
func newCache(config config.Config) cache.Cache {
	if !config.CacheEnabled {
		return cache.Noop{}
	}
	ttl := time.Duration(config.CacheDurationSecs) * time.Second
	switch config.CacheType {
	case "memory":
		return cache.NewMemory(ttl)
	case "file":
		return cache.NewFile(config.CacheFilePath, ttl)
	case "redis":
		options, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			log.WithError(err).Fatal("invalid redis_url")
		}
		return cache.NewRedis(redis.NewClient(options), ttl)
	default:
		log.WithField("cache_type", config.CacheType).Fatal("unknown cache type")
		return nil
	}
}
