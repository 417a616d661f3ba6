package purchaselineitem

import (
	"github.com/reliefdesk/reliefdesk/internal/purchaselineitem/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("purchaselineitem",
	fx.Provide(repository.Provide),
)
