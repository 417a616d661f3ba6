package insurancepolicy

import (
	"github.com/reliefdesk/reliefdesk/internal/insurancepolicy/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("insurancepolicy",
	fx.Provide(repository.Provide),
)
