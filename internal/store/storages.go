package store

import "github.com/veridict/veridict/internal/logger"

type Storages struct {
	UserRepository         UserRepository
	VerificationRepository VerificationRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		VerificationRepository: NewVerificationRepository(db, logger),
	}
}
