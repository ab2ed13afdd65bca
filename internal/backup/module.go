package backup

import (
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(
		NewStore,
	)
)
