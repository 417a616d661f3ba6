package claim

import (
	"github.com/reliefdesk/reliefdesk/internal/claim/repository"
	"github.com/reliefdesk/reliefdesk/internal/claim/service"
	"go.uber.org/fx"
)

var Module = fx.Module("claim",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
