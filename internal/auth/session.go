package auth

import (
	"crypto/sha256"
	"fmt"
	"net/http"

	"github.com/changhyeonkim/memome/go-api-server/internal/config"
	"github.com/changhyeonkim/memome/go-api-server/internal/model"
	"github.com/gorilla/sessions"
)

const (
	loginStateSession = "memome_login"
	loginStatePath    = "/auth"

	providerKey = "provider"
	stateKey    = "state"
	nonceKey    = "nonce"
)

// LoginState binds an authorization redirect to its callback
type LoginState struct {
	Provider model.ProviderType
	State    string
	Nonce    string
}

// LoginStateStore keeps LoginState in a signed and encrypted cookie between redirect and callback
type LoginStateStore struct {
	store *sessions.CookieStore
}

func NewLoginStateStore(cfg config.OAuthConfig) *LoginStateStore {
	encryptionKey := sha256.Sum256([]byte(cfg.SessionSecret))
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret), encryptionKey[:])
	store.Options = &sessions.Options{
		Path:     loginStatePath,
		HttpOnly: true,
		Secure:   cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	// cookie expiry and the signed timestamp check share one max age
	store.MaxAge(int(cfg.SessionMaxAge.Seconds()))

	return &LoginStateStore{store: store}
}

func (s *LoginStateStore) Save(w http.ResponseWriter, r *http.Request, state LoginState) error {
	session, _ := s.store.New(r, loginStateSession)
	session.Values[providerKey] = string(state.Provider)
	session.Values[stateKey] = state.State
	session.Values[nonceKey] = state.Nonce

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("로그인 state 저장 실패: %w", err)
	}
	return nil
}

// Pop reads the pending LoginState and expires the cookie.
// A missing, expired, or tampered cookie yields ErrInvalidLoginState.
func (s *LoginStateStore) Pop(w http.ResponseWriter, r *http.Request) (LoginState, error) {
	session, err := s.store.Get(r, loginStateSession)
	if err != nil || session.IsNew {
		return LoginState{}, fmt.Errorf("로그인 state cookie가 없습니다: %w", ErrInvalidLoginState)
	}

	provider, _ := session.Values[providerKey].(string)
	state, _ := session.Values[stateKey].(string)
	nonce, _ := session.Values[nonceKey].(string)

	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return LoginState{}, fmt.Errorf("로그인 state 삭제 실패: %w", err)
	}

	if provider == "" || state == "" || nonce == "" {
		return LoginState{}, fmt.Errorf("로그인 state가 비어 있습니다: %w", ErrInvalidLoginState)
	}

	return LoginState{
		Provider: model.ProviderType(provider),
		State:    state,
		Nonce:    nonce,
	}, nil
}
