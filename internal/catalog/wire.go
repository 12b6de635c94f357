package catalog

import "go.uber.org/zap"

func NewModule(logger *zap.Logger) *Controller {
	repo := NewSeededRepository()
	return NewController(repo, logger)
}
