package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"kanbanpro/internal/app/state"
	"kanbanpro/internal/core/domain"
	"kanbanpro/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AccessClaims are carried by every issued token. The registered ID claim
// holds the session id.
type AccessClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	store  *state.Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(store *state.Store, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	user, ok := findUserByEmail(s.store.Snapshot(), email, "")
	if !ok || !checkPassword(user.PasswordHash, password) {
		return ports.LoginResult{}, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := domain.Session{ID: newID(), UserID: user.ID, CreatedAt: now}
	var currentBoardID string

	err := s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		current, ok := st.FindUser(user.ID)
		if !ok {
			return nil, domain.ErrInvalidCredentials
		}

		actions := []state.Action{state.Login{Session: session, ExpiredBefore: now.Add(-s.ttl)}}
		boards := accessibleBoards(st, current)
		switch {
		case len(boards) == 0 && !current.IsAdmin():
			board := personalBoard(current, now)
			currentBoardID = board.ID
			actions = append(actions,
				state.AddBoard{Board: board},
				state.SetCurrentBoard{UserID: current.ID, BoardID: board.ID},
			)
		case len(boards) > 0:
			currentBoardID = boards[0].ID
			actions = append(actions, state.SetCurrentBoard{UserID: current.ID, BoardID: currentBoardID})
		}
		return actions, nil
	})
	if err != nil {
		return ports.LoginResult{}, err
	}

	return s.issue(user, session, currentBoardID)
}

func (s *AuthService) Register(ctx context.Context, email, password, name string) (ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	name = strings.ToUpper(strings.TrimSpace(name))
	if email == "" || name == "" {
		return ports.LoginResult{}, domain.ErrInvalidUser
	}

	hash, err := HashPassword(password)
	if err != nil {
		return ports.LoginResult{}, err
	}

	now := s.now()
	user := domain.User{
		ID:           newID(),
		Email:        email,
		Name:         name,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	session := domain.Session{ID: newID(), UserID: user.ID, CreatedAt: now}
	board := personalBoard(user, now)

	err = s.store.Update(ctx, func(st state.State) ([]state.Action, error) {
		if _, taken := findUserByEmail(st, email, ""); taken {
			return nil, domain.ErrEmailTaken
		}
		return []state.Action{
			state.AddUser{User: user},
			state.Login{Session: session, ExpiredBefore: now.Add(-s.ttl)},
			state.AddBoard{Board: board},
			state.SetCurrentBoard{UserID: user.ID, BoardID: board.ID},
		}, nil
	})
	if err != nil {
		return ports.LoginResult{}, err
	}

	zap.L().Info("user registered", zap.String("user_id", user.ID))
	return s.issue(user, session, board.ID)
}

func (s *AuthService) Logout(ctx context.Context, principal domain.Principal) error {
	return s.store.Dispatch(ctx, state.Logout{SessionID: principal.SessionID})
}

func (s *AuthService) Authenticate(_ context.Context, token string) (domain.Principal, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	st := s.store.Snapshot()
	session, ok := st.FindSession(claims.ID)
	if !ok || session.UserID != claims.UserID {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	// Role comes from the stored user so demotions apply to live sessions.
	user, ok := st.FindUser(claims.UserID)
	if !ok {
		return domain.Principal{}, domain.ErrUnauthorized
	}

	return domain.Principal{UserID: user.ID, Role: user.Role, SessionID: session.ID}, nil
}

func (s *AuthService) issue(user domain.User, session domain.Session, currentBoardID string) (ports.LoginResult, error) {
	expiresAt := session.CreatedAt.Add(s.ttl)
	claims := AccessClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(session.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	return ports.LoginResult{
		User:           user,
		Token:          token,
		ExpiresAt:      expiresAt,
		CurrentBoardID: currentBoardID,
	}, nil
}
