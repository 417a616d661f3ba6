package femadisaster

import (
	"github.com/reliefdesk/reliefdesk/internal/femadisaster/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("femadisaster",
	fx.Provide(repository.Provide),
)
