package db

import (
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(
		NewMongoClient,
		NewDatabase,
		NewUsers,
		NewSessions,
		NewWeddings,
		NewRSVPs,
		NewGuestbook,
	)
)
