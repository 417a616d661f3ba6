package invoice

import (
	"github.com/reliefdesk/reliefdesk/internal/invoice/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice",
	fx.Provide(repository.Provide),
)
