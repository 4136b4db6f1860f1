package service

import (
	"github.com/GlebRadaev/referralmart/internal/handlers/auth"
	"github.com/GlebRadaev/referralmart/internal/handlers/orders"

	pkgauth "github.com/GlebRadaev/referralmart/pkg/auth"

	"github.com/GlebRadaev/referralmart/internal/pg"
	"github.com/GlebRadaev/referralmart/internal/repo"
	authservice "github.com/GlebRadaev/referralmart/internal/service/authservice"
	commissionservice "github.com/GlebRadaev/referralmart/internal/service/commissionservice"
	pointsservice "github.com/GlebRadaev/referralmart/internal/service/pointsservice"
	treeservice "github.com/GlebRadaev/referralmart/internal/service/treeservice"
)

type Services struct {
	AuthService       auth.Service
	TreeService       *treeservice.Service
	CommissionService orders.CommissionService
	PointsService     *pointsservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	treeService := treeservice.New(repo.UserRepo, repo.SettingsRepo)
	commissionService := commissionservice.New(repo.UserRepo, repo.CommissionRepo, repo.SettingsRepo, txManager)
	pointsService := pointsservice.New(repo.UserRepo, repo.PointsRepo, repo.SettingsRepo, treeService, txManager)
	authService := authservice.New(repo.UserRepo, treeService, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		TreeService:       treeService,
		CommissionService: commissionService,
		PointsService:     pointsService,
	}
}
