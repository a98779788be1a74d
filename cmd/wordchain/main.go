package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/wordchain/modules/account"
	"github.com/dmitrymomot/wordchain/pkg/config"
	"github.com/dmitrymomot/wordchain/pkg/cookie"
	"github.com/dmitrymomot/wordchain/pkg/environment"
	"github.com/dmitrymomot/wordchain/pkg/httpserver"
	"github.com/dmitrymomot/wordchain/pkg/logger"
	"github.com/dmitrymomot/wordchain/pkg/pg"
	"github.com/dmitrymomot/wordchain/pkg/ratelimiter"
	"github.com/dmitrymomot/wordchain/pkg/redis"
	"github.com/dmitrymomot/wordchain/pkg/requestid"
	"github.com/dmitrymomot/wordchain/pkg/route"
	"github.com/dmitrymomot/wordchain/pkg/secrets"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "gen-secret":
			os.Exit(genSecret())
		default:
			fmt.Fprintf(os.Stderr, "usage: %s [gen-secret]\n", os.Args[0])
			os.Exit(2)
		}
	}

	cfg, err := config.Load[appConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor(), session.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("wordchain stopped", logger.Error(err))
		os.Exit(1)
	}
}

func genSecret() int {
	s, err := secrets.GenerateSecret()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	fmt.Println(s)
	return 0
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	if environment.Parse(cfg.Env).IsProduction() && !cfg.Cookie.Secure {
		log.Warn("session cookies are sent without the Secure flag")
	}

	pool, err := pg.Connect(ctx, cfg.PG, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	pgStore := account.NewPGStore(pool, cfg.PG, log)
	checks := []httpserver.Check{pg.Healthcheck(pool)}

	var (
		store        account.Store
		limiterStore ratelimiter.Store
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		store = account.NewCachedStore(pgStore, account.NewRedisCache(client, cfg.Account.CacheTTL), log)
		limiterStore = ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.Name+":ratelimit:"))
		checks = append(checks, redis.Healthcheck(client))
	} else {
		store = account.NewCachedStore(pgStore, account.NewMemoryCache(cfg.Account.CacheSize, cfg.Account.CacheTTL), log)

		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		limiterStore = mem
	}

	var moduleOpts []account.Option
	if limit, ok := cfg.Account.LoginLimit(); ok {
		limiter, err := ratelimiter.NewBucket(limiterStore, limit)
		if err != nil {
			return err
		}
		moduleOpts = append(moduleOpts, account.WithLoginLimiter(limiter))
	}

	auth, err := session.NewFromConfig(cfg.Session, secrets.Secret(cfg.Secret), store,
		session.WithCookieManager(cookie.NewFromConfig(cfg.Cookie)),
		session.WithLogger(log),
	)
	if err != nil {
		return err
	}

	mod, err := account.New(cfg.Account, store, pgStore, auth, log, moduleOpts...)
	if err != nil {
		return err
	}
	root := mod.Root()

	dispatcher, err := route.NewDispatcher(root,
		route.WithConfig(cfg.Routes),
		route.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if err := route.Bootstrap(ctx, root); err != nil {
		return err
	}
	log.Info("routes ready", slog.Any("paths", route.Paths(root)))

	mux := http.NewServeMux()
	mux.Handle("/healthz", httpserver.HealthCheckHandler(log, checks...))
	mux.Handle("/", dispatcher)

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithPreShutdownHook(func(ctx context.Context) error {
			route.Shutdown(ctx, root, log)
			return nil
		}),
	)

	return srv.Run(ctx, mux)
}
