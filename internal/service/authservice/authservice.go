package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/referralmart/internal/domain"
	"github.com/GlebRadaev/referralmart/internal/pg"
	"github.com/GlebRadaev/referralmart/pkg/auth"
	"github.com/GlebRadaev/referralmart/pkg/referral"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
type TreeService interface {
	PlaceNewUser(ctx context.Context, referrerID int) (*domain.Placement, error)
}

type Service struct {
	userRepo    Repo
	treeService TreeService
	txManager   pg.TXManager
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, treeService TreeService, txManager pg.TXManager, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		treeService: treeService,
		txManager:   txManager,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrLoginTaken           = errors.New("username already taken")
	ErrReferralCodeNotFound = errors.New("referral code not found")
)

// Register creates a real user. A referral code, when given, is resolved and
// the new user is placed in the referrer's tree before the record is first
// persisted; without one the user becomes a tree root.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newUser := &domain.User{
			Login:        login,
			PasswordHash: hashedPassword,
			Kind:         domain.UserKindReal,
		}

		if referralCode != "" {
			referrer, err := s.userRepo.FindByReferralCode(ctx, referralCode)
			if err != nil {
				return err
			}
			if referrer == nil {
				zap.L().Info("referral code not found", zap.String("code", referralCode))
				return ErrReferralCodeNotFound
			}

			placement, err := s.treeService.PlaceNewUser(ctx, referrer.ID)
			if err != nil {
				return err
			}
			code := referralCode
			newUser.ReferredBy = &code
			newUser.TreeParentID = &placement.ParentID
			newUser.TreeLevel = placement.Level
			newUser.TreePosition = placement.Position
		}

		ownCode, err := referral.GenerateUserCode()
		if err != nil {
			return err
		}
		newUser.ReferralCode = ownCode

		user, err = s.userRepo.Create(ctx, newUser)
		return err
	})
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if user.IsVirtual() {
		zap.L().Info("virtual users cannot authenticate", zap.Int("userID", user.ID))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
