package purchase

import (
	"github.com/reliefdesk/reliefdesk/internal/purchase/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("purchase",
	fx.Provide(repository.Provide),
)
