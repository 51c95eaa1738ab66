package service

import (
	"github.com/samuelerdtman/la-palabra-del-dia/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	*WordS
	*UserS
	*AdminS
}

func InitServices(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		WordS:  NewWordService(repo.WordsR, log),
		UserS:  NewUserService(repo.UsersR, log),
		AdminS: NewAdminService(repo.Store, log),
	}
}
