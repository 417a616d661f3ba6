package evidencelink

import (
	"github.com/reliefdesk/reliefdesk/internal/evidencelink/repository"
	"go.uber.org/fx"
)

var Module = fx.Module("evidencelink",
	fx.Provide(repository.Provide),
)
