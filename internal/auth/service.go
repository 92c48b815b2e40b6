package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/noah-isme/backend-apotek/internal/common"
	"github.com/noah-isme/backend-apotek/internal/session"
)

const (
	defaultTokenTTL = 12 * time.Hour

	claimSessionID = "sid"
	claimRole      = "role"
	claimName      = "name"
)

// Service authenticates the fixed accounts and issues session tokens.
type Service struct {
	users    map[string]User
	sessions *session.Manager
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
	signer   jwa.SignatureAlgorithm
	issuer   string
	audience string
}

// Config configures the auth service.
type Config struct {
	Users    map[string]User
	Sessions *session.Manager
	Secret   string
	TokenTTL time.Duration
	Issuer   string
	Audience string
}

// UserView is the safe subset of an account returned to clients.
type UserView struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResult bundles the token material returned after a successful login.
type LoginResult struct {
	User      UserView  `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewService constructs a Service instance with sane defaults.
func NewService(cfg Config) (*Service, error) {
	if len(cfg.Users) == 0 {
		return nil, errors.New("auth: users are required")
	}
	if cfg.Sessions == nil {
		return nil, errors.New("auth: session manager is required")
	}
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, errors.New("auth: secret is required")
	}
	tokenTTL := cfg.TokenTTL
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = "backend-apotek"
	}
	audience := strings.TrimSpace(cfg.Audience)
	if audience == "" {
		audience = "apotek-frontend"
	}
	return &Service{
		users:    cfg.Users,
		sessions: cfg.Sessions,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
		signer:   jwa.HS256,
		issuer:   issuer,
		audience: audience,
	}, nil
}

// WithNow allows tests to override the time provider.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Login verifies credentials, opens a session, and signs a token for it.
func (s *Service) Login(username, password string) (LoginResult, error) {
	name := strings.TrimSpace(strings.ToLower(username))
	if name == "" || password == "" {
		return LoginResult{}, invalidCredentials(nil)
	}
	user, ok := s.users[name]
	if !ok {
		return LoginResult{}, invalidCredentials(nil)
	}
	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil || !match {
		return LoginResult{}, invalidCredentials(err)
	}

	sess := s.sessions.Create(user.Role, user.Name)
	token, expiresAt, err := s.signToken(sess)
	if err != nil {
		s.sessions.Delete(sess.ID)
		return LoginResult{}, err
	}
	return LoginResult{
		User:      UserView{Username: user.Username, Role: user.Role, Name: user.Name},
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout discards the identified session. Unknown sessions are a no-op.
func (s *Service) Logout(identity common.Identity) {
	if identity.SessionID == "" {
		return
	}
	s.sessions.Delete(identity.SessionID)
}

// ParseToken validates a token and resolves it to a live session identity.
func (s *Service) ParseToken(raw string) (common.Identity, error) {
	token, err := jwt.Parse([]byte(raw),
		jwt.WithKey(s.signer, s.secret),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithClock(jwt.ClockFunc(s.now)),
	)
	if err != nil {
		return common.Identity{}, unauthorized(err)
	}
	identity := common.Identity{
		SessionID: stringClaim(token, claimSessionID),
		Role:      stringClaim(token, claimRole),
		Name:      stringClaim(token, claimName),
	}
	if identity.SessionID == "" {
		return common.Identity{}, unauthorized(errors.New("auth: token missing session claim"))
	}
	if _, ok := s.sessions.Get(identity.SessionID); !ok {
		return common.Identity{}, unauthorized(errors.New("auth: session revoked or expired"))
	}
	return identity, nil
}

func (s *Service) signToken(sess *session.Session) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	builder := jwt.NewBuilder().
		Subject(sess.Name).
		Issuer(s.issuer).
		Audience([]string{s.audience}).
		IssuedAt(now).
		Expiration(expiresAt).
		Claim(claimSessionID, sess.ID).
		Claim(claimRole, sess.Role).
		Claim(claimName, sess.Name)
	token, err := builder.Build()
	if err != nil {
		return "", time.Time{}, err
	}
	signed, err := jwt.Sign(token, jwt.WithKey(s.signer, s.secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return string(signed), expiresAt, nil
}

func stringClaim(token jwt.Token, name string) string {
	v, ok := token.Get(name)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}

func invalidCredentials(err error) *common.AppError {
	return common.NewAppError(common.CodeInvalidCredentials, "invalid username or password", http.StatusUnauthorized, err)
}

func unauthorized(err error) *common.AppError {
	return common.NewAppError(common.CodeUnauthorized, "missing or invalid token", http.StatusUnauthorized, err)
}
