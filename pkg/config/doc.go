// Package config populates typed configuration structs from the process
// environment.
//
// Fields are described with caarlos0/env tags. Before parsing, Load reads
// dotenv files through godotenv; variables already set in the environment
// always win over file values.
//
//	type appConfig struct {
//		Secret string `env:"APP_SECRET,required"`
//		Env    string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	cfg, err := config.Load[appConfig]()
//
// Nested structs are supported. Components expose their own Config types
// (session.Config, route.Config, pg.Config, ...) which are embedded into the
// application config and parsed in a single pass.
package config
