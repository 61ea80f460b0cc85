package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "flowdesk.com/flowdesk/internal/errors"
	model "flowdesk.com/flowdesk/internal/models"
	repository "flowdesk.com/flowdesk/internal/repositories"
	"flowdesk.com/flowdesk/internal/roles"
)

// inviteAudience marks invite tokens; see sessionAudience for why the
// two token kinds must stay mutually unacceptable.
const inviteAudience = "flowdesk-invite"

// inviteClaims binds an invite token to one workspace and one invited
// user, so a forwarded link cannot admit anyone else.
type inviteClaims struct {
	WorkspaceID string `json:"workspace_id"`
	jwt.RegisteredClaims
}

type InviteService struct {
	workspaces *repository.WorkspaceRepository
	secret     []byte
	ttl        time.Duration
	baseURL    string
}

func NewInviteService(workspaces *repository.WorkspaceRepository, secret, baseURL string, ttl time.Duration) *InviteService {
	return &InviteService{
		workspaces: workspaces,
		secret:     []byte(secret),
		ttl:        ttl,
		baseURL:    baseURL,
	}
}

// GenerateInviteLink returns an absolute join link for the invited
// user.
func (s *InviteService) GenerateInviteLink(workspace *model.Workspace, invited *model.User) (string, error) {
	claims := &inviteClaims{
		WorkspaceID: workspace.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   invited.ID,
			Audience:  jwt.ClaimStrings{inviteAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/workspaces/join?token=%s", s.baseURL, url.QueryEscape(token)), nil
}

// Join redeems an invite token for the requesting user, creating a
// GUEST membership. Joining a workspace the user already belongs to is
// a no-op.
func (s *InviteService) Join(ctx context.Context, tokenStr string, user *model.User) (*model.Workspace, error) {
	claims := &inviteClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(inviteAudience),
	)
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidInvite
	}

	if claims.Subject != user.ID {
		return nil, apperrors.ErrInvalidInvite
	}

	workspace, err := s.workspaces.FindByID(ctx, claims.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if _, err := s.workspaces.FindMembership(ctx, workspace.ID, user.ID); err == nil {
		return workspace, nil
	}

	if _, err := s.workspaces.AddMember(ctx, workspace.ID, user.ID, roles.Guest); err != nil {
		return nil, err
	}

	return workspace, nil
}
