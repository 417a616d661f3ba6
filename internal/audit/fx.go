package audit

import (
	"github.com/bwmarrin/snowflake"
	"github.com/reliefdesk/reliefdesk/internal/audit/repository"
	"github.com/reliefdesk/reliefdesk/internal/audit/service"
	"go.uber.org/fx"
)

var Module = fx.Module("audit",
	fx.Provide(func() (*snowflake.Node, error) {
		return snowflake.NewNode(1)
	}),
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
