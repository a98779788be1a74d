// Package cookie writes and reads the cookies that carry session tokens.
//
// The values stored through this package are already sealed by the token
// package, so the Manager only owns cookie attributes: every cookie it writes
// is HttpOnly, scoped to Path "/" with SameSite=Lax, and carries the Secure
// flag unless Config.Insecure turns it off for plain-HTTP development.
//
// # Usage
//
//	mgr := cookie.NewFromConfig(cfg)
//
//	mgr.Set(w, "access_token", tok)
//	tok, err := mgr.Get(r, "access_token") // cookie.ErrCookieNotFound when absent
//	mgr.Delete(w, "access_token")
//
// Options passed to Set override the Manager defaults for that single cookie
// and never mutate the defaults.
package cookie
