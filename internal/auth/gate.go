package auth

import (
	"context"

	"github.com/JLSed/ShoeFreak-Seller/internal/models"
	"github.com/JLSed/ShoeFreak-Seller/internal/util"
	"go.uber.org/zap"
)

// State is the seller gate's session state.
type State string

const (
	// StateUnknown is the initial state while the role check is running.
	StateUnknown State = "UNKNOWN"
	// StateAuthenticatedSeller means the session belongs to a live seller
	// account and seller screens may be served.
	StateAuthenticatedSeller State = "AUTHENTICATED_SELLER"
	// StateUnauthenticated means there is no usable session. Callers
	// redirect to the entry screen.
	StateUnauthenticated State = "UNAUTHENTICATED"
)

// RoleFetcher resolves an account id to its role tag.
type RoleFetcher interface {
	GetAccountRole(ctx context.Context, accountID string) (string, error)
}

// SessionStore resolves and revokes session records.
type SessionStore interface {
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// Gate decides whether a session may reach seller-only screens. The
// check runs on every authenticated request, so a role change or a
// revoked session takes effect on the next call.
//
// The gate fails closed: any error while resolving the session or the
// role is treated the same as "not a seller" and the session is torn
// down.
type Gate struct {
	sessions SessionStore
	roles    RoleFetcher
	logger   *zap.Logger
}

// NewGate creates a seller gate
func NewGate(sessions SessionStore, roles RoleFetcher) *Gate {
	return &Gate{
		sessions: sessions,
		roles:    roles,
		logger:   util.GetLogger(),
	}
}

// Check moves a session from UNKNOWN to a final state and returns the
// account id when the session is an authenticated seller.
func (g *Gate) Check(ctx context.Context, sessionID string) (State, string) {
	if sessionID == "" {
		return StateUnauthenticated, ""
	}

	accountID, err := g.sessions.GetSession(ctx, sessionID)
	if err != nil {
		g.logger.Warn("Session lookup failed, failing closed", zap.Error(err))
		return g.forceSignOut(ctx, sessionID)
	}
	if accountID == "" {
		// Revoked or expired record.
		return StateUnauthenticated, ""
	}

	role, err := g.roles.GetAccountRole(ctx, accountID)
	if err != nil {
		g.logger.Warn("Role check failed, failing closed",
			zap.String("account_id", accountID),
			zap.Error(err))
		return g.forceSignOut(ctx, sessionID)
	}

	if role != models.RoleSeller {
		g.logger.Info("Non-seller account detected, signing out",
			zap.String("account_id", accountID),
			zap.String("role", role))
		return g.forceSignOut(ctx, sessionID)
	}

	return StateAuthenticatedSeller, accountID
}

// forceSignOut revokes the session and lands in UNAUTHENTICATED. Used
// for both errors and non-seller roles; the caller sees no distinction.
func (g *Gate) forceSignOut(ctx context.Context, sessionID string) (State, string) {
	if err := g.sessions.DeleteSession(ctx, sessionID); err != nil {
		g.logger.Error("Failed to revoke session", zap.Error(err))
	}
	util.ForcedSignOutsTotal.Inc()
	return StateUnauthenticated, ""
}
