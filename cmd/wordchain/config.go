package main

import (
	"github.com/dmitrymomot/wordchain/modules/account"
	"github.com/dmitrymomot/wordchain/pkg/cookie"
	"github.com/dmitrymomot/wordchain/pkg/httpserver"
	"github.com/dmitrymomot/wordchain/pkg/pg"
	"github.com/dmitrymomot/wordchain/pkg/redis"
	"github.com/dmitrymomot/wordchain/pkg/route"
	"github.com/dmitrymomot/wordchain/pkg/session"
)

// appConfig is everything the process reads from the environment.
type appConfig struct {
	Secret string `env:"APP_SECRET,required,notEmpty"`
	Env    string `env:"APP_ENV" envDefault:"development"`
	Name   string `env:"APP_NAME" envDefault:"wordchain"`

	HTTP    httpserver.Config
	Routes  route.Config
	Session session.Config
	Cookie  cookie.Config
	PG      pg.Config
	Redis   redis.Config
	Account account.Config
}
