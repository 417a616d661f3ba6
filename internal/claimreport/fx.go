package claimreport

import (
	"github.com/reliefdesk/reliefdesk/internal/claimreport/service"
	"go.uber.org/fx"
)

var Module = fx.Module("claimreport",
	fx.Provide(service.New),
)
