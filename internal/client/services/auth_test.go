package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/classroom/internal/client/client"
	"github.com/dmitrijs2005/classroom/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/classroom/internal/client/session"
	"github.com/dmitrijs2005/classroom/internal/common"
)

// ---- helpers ----

func setup(t *testing.T) (*client.Repositories, *session.Session) {
	t.Helper()
	ctx := context.Background()
	repos, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	s, err := session.Init(ctx, repos.Metadata)
	require.NoError(t, err)
	return repos, s
}

func getMeta(t *testing.T, repos *client.Repositories, k string) (string, bool) {
	t.Helper()
	v, ok, err := repos.Metadata.Get(context.Background(), k)
	require.NoError(t, err)
	return v, ok
}

// ---- fake client ----

type fakeClient struct {
	RegisterErr error
	LoginRet    string
	LoginErr    error
	WhoamiRet   string
	WhoamiErr   error

	LastRegisterUser string
	LastRegisterPass string
	LastLoginUser    string
	LastLoginPass    string
	LoginCalls       int
}

func (f *fakeClient) Register(ctx context.Context, username, password string) error {
	f.LastRegisterUser, f.LastRegisterPass = username, password
	return f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	f.LoginCalls++
	f.LastLoginUser, f.LastLoginPass = username, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Whoami(ctx context.Context) (string, error) {
	return f.WhoamiRet, f.WhoamiErr
}

// ---- TESTS ----

func TestLogin_Success_PersistsToken(t *testing.T) {
	repos, s := setup(t)
	fc := &fakeClient{LoginRet: "jwt"}
	svc := NewAuthService(fc, s)

	require.NoError(t, svc.Login(context.Background(), " alice ", []byte("pass")))

	require.Equal(t, "alice", fc.LastLoginUser)
	require.Equal(t, "pass", fc.LastLoginPass)
	require.Equal(t, "jwt", s.Token())
	require.Equal(t, session.ShowEntries, session.Gate(s))

	tok, ok := getMeta(t, repos, metadata.KeyToken)
	require.True(t, ok)
	require.Equal(t, "jwt", tok)
	user, _ := getMeta(t, repos, metadata.KeyUsername)
	require.Equal(t, "alice", user)
}

func TestLogin_ClientError_Wrapped(t *testing.T) {
	repos, s := setup(t)
	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	svc := NewAuthService(fc, s)

	err := svc.Login(context.Background(), "u", []byte("p"))
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.True(t, strings.HasPrefix(err.Error(), "login error:"))

	_, ok := getMeta(t, repos, metadata.KeyToken)
	require.False(t, ok)
	require.Equal(t, session.RedirectLogin, session.Gate(s))
}

func TestLogin_Validation(t *testing.T) {
	_, s := setup(t)
	fc := &fakeClient{}
	svc := NewAuthService(fc, s)

	require.ErrorIs(t, svc.Login(context.Background(), "  ", []byte("p")), common.ErrValidation)
	require.ErrorIs(t, svc.Login(context.Background(), "u", nil), common.ErrValidation)
	require.Zero(t, fc.LoginCalls)
}

func TestLogout_ClearsStoredToken(t *testing.T) {
	repos, s := setup(t)
	svc := NewAuthService(&fakeClient{LoginRet: "jwt"}, s)
	ctx := context.Background()

	require.NoError(t, svc.Login(ctx, "u", []byte("p")))
	require.NoError(t, svc.Logout(ctx))

	_, ok := getMeta(t, repos, metadata.KeyToken)
	require.False(t, ok)

	// next boot redirects to login
	s2, err := session.Init(ctx, repos.Metadata)
	require.NoError(t, err)
	require.Equal(t, session.RedirectLogin, session.Gate(s2))
}

func TestRegister_DelegatesToClient(t *testing.T) {
	_, s := setup(t)
	fc := &fakeClient{}
	svc := NewAuthService(fc, s)

	require.NoError(t, svc.Register(context.Background(), "u", []byte("p")))
	require.Equal(t, "u", fc.LastRegisterUser)
	require.Equal(t, "p", fc.LastRegisterPass)
	require.Equal(t, session.RedirectLogin, session.Gate(s), "register does not log in")
}

func TestRegister_ErrorFromClient(t *testing.T) {
	_, s := setup(t)
	svc := NewAuthService(&fakeClient{RegisterErr: errors.New("dup")}, s)

	err := svc.Register(context.Background(), "u", []byte("p"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "register error:"))
}

func TestWhoami_Delegates(t *testing.T) {
	_, s := setup(t)
	svc := NewAuthService(&fakeClient{WhoamiRet: "Hello, u"}, s)

	msg, err := svc.Whoami(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hello, u", msg)

	svc = NewAuthService(&fakeClient{WhoamiErr: client.ErrUnauthorized}, s)
	_, err = svc.Whoami(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
}
