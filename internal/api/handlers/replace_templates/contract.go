package replace_templates

import (
	"context"

	replaceTemplates "github.com/m04kA/SMC-ReservationService/internal/usecase/replace_templates"
)

type ReplaceTemplatesUseCase interface {
	Execute(ctx context.Context, req *replaceTemplates.Request) (*replaceTemplates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
