package service

import (
	"go.uber.org/fx"

	"github.com/weddingcard/weddingcard-back/internal/backup"
	"github.com/weddingcard/weddingcard-back/internal/db"
)

var (
	Module = fx.Provide(
		func(w *db.Weddings) WeddingStore { return w },
		func(s *backup.Store) SecondaryStore { return s },
		func(u *db.Users) UserStore { return u },
		func(s *db.Sessions) SessionStore { return s },
		func(r *db.RSVPs) RSVPStore { return r },
		func(g *db.Guestbook) GuestbookStore { return g },
		NewAllocator,
		NewResolver,
		NewWeddings,
		NewSessionManager,
		NewAccounts,
		NewEntries,
	)
)
