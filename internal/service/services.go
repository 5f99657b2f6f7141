package service

import (
	"github.com/veridict/veridict/internal/classifier"
	"github.com/veridict/veridict/internal/logger"
	"github.com/veridict/veridict/internal/store"
)

type Services struct {
	AuthService         AuthService
	VerificationService VerificationService
}

func NewServices(storages *store.Storages, clf classifier.Classifier, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, logger),
		VerificationService: NewVerificationService(storages.VerificationRepository, clf, logger),
	}
}
