package treeservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/referralmart/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindChildIDs(ctx context.Context, parentID int) ([]int, error)
	AcquireSubtreeLock(ctx context.Context, rootID int) error
}
type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Service struct {
	userRepo     Repo
	settingsRepo SettingsRepo
}

func New(userRepo Repo, settingsRepo SettingsRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
	}
}

var (
	ErrReferrerNotFound = errors.New("referrer not found")
)

const defaultBranchingFactor = 2

// PlaceNewUser finds the shallowest leftmost open slot in the referrer's
// subtree, spilling over to descendants when the referrer's direct slots are
// full. Concurrent placements in overlapping subtrees are serialized by a
// transaction-scoped advisory lock on the subtree root, so the method must be
// called inside a transaction. The caller persists the new user with the
// returned assignment.
func (s *Service) PlaceNewUser(ctx context.Context, referrerID int) (*domain.Placement, error) {
	referrer, err := s.userRepo.FindByID(ctx, referrerID)
	if err != nil {
		return nil, err
	}
	if referrer == nil {
		zap.L().Info("placement referrer not found", zap.Int("referrerID", referrerID))
		return nil, ErrReferrerNotFound
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	branching := settings.BranchingFactor
	if branching <= 0 {
		branching = defaultBranchingFactor
	}

	rootID, err := s.findRoot(ctx, referrer)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.AcquireSubtreeLock(ctx, rootID); err != nil {
		return nil, err
	}

	type node struct {
		id    int
		level int
	}
	queue := []node{{id: referrer.ID, level: referrer.TreeLevel}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		children, err := s.userRepo.FindChildIDs(ctx, n.id)
		if err != nil {
			return nil, err
		}
		if len(children) < branching {
			return &domain.Placement{
				ParentID: n.id,
				Level:    n.level + 1,
				Position: len(children),
			}, nil
		}
		for _, childID := range children {
			queue = append(queue, node{id: childID, level: n.level + 1})
		}
	}

	// Unreachable: a full node always enqueues its children, so the search
	// only stops by returning an open slot.
	return nil, errors.New("no open slot found")
}

func (s *Service) findRoot(ctx context.Context, user *domain.User) (int, error) {
	current := user
	for current.TreeParentID != nil {
		parent, err := s.userRepo.FindByID(ctx, *current.TreeParentID)
		if err != nil {
			return 0, err
		}
		if parent == nil {
			// Dangling parent pointer: treat the current node as the root.
			zap.L().Warn("tree parent missing", zap.Int("userID", current.ID), zap.Int("parentID", *current.TreeParentID))
			break
		}
		current = parent
	}
	return current.ID, nil
}
