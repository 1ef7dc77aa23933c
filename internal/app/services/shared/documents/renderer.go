package documents

import (
	"go.uber.org/zap"
)

type documentRenderer struct {
	Log *zap.Logger
}

func NewDocumentRenderer(logger *zap.Logger) DocumentRenderer {
	return &documentRenderer{
		Log: logger,
	}
}
