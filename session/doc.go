// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps per-browser state: flash messages, random-play
progress and the page to go back to. It is a typed layer over
alexedwards/scs.

# Middleware

	manager := session.NewManager(memstore.New(), cfg.SessionTTL, cfg.IsProduction())
	r.Use(manager.Middleware)

Handlers read the session from the request context:

	sess := session.FromContext(r.Context())
	sess.AddFlash(models.FlashSuccess, "Quiz created successfully.")

The cookie holds only an opaque scs token; data lives in the store.
Sessions are committed when modified, before the response headers are
sent, so a redirect target sees the new state.

# Stores

  - memstore (scs): single process, expired entries removed periodically
  - RedisStore: shared between instances, expiry handled by redis TTL
*/
package session
