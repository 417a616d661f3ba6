package selfdisaster

import (
	"github.com/reliefdesk/reliefdesk/internal/selfdisaster/repository"
	"github.com/reliefdesk/reliefdesk/internal/selfdisaster/service"
	"go.uber.org/fx"
)

var Module = fx.Module("selfdisaster",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
