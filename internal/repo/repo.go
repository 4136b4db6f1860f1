package repo

import (
	"github.com/GlebRadaev/referralmart/internal/pg"
	commissionrepo "github.com/GlebRadaev/referralmart/internal/repo/commission-repo"
	pointsrepo "github.com/GlebRadaev/referralmart/internal/repo/points-repo"
	settingsrepo "github.com/GlebRadaev/referralmart/internal/repo/settings-repo"
	userrepo "github.com/GlebRadaev/referralmart/internal/repo/user-repo"
	"github.com/GlebRadaev/referralmart/internal/service/commissionservice"
	"github.com/GlebRadaev/referralmart/internal/service/pointsservice"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	CommissionRepo commissionservice.CommissionRepo
	PointsRepo     pointsservice.PointsRepo
	SettingsRepo   *settingsrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		CommissionRepo: commissionrepo.New(conn),
		PointsRepo:     pointsrepo.New(conn),
		SettingsRepo:   settingsrepo.New(conn),
	}
}
