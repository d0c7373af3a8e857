package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridian-erp/meridian-erp/internal/customers"
	"github.com/meridian-erp/meridian-erp/internal/shared"
)

type staticDirectory struct {
	accounts map[string]customers.Customer
}

func (d staticDirectory) FindByEmail(ctx context.Context, email string) (customers.Customer, error) {
	c, ok := d.accounts[email]
	if !ok {
		return customers.Customer{}, fmt.Errorf("customer %s: %w", email, shared.ErrNotFound)
	}
	return c, nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	dir := staticDirectory{accounts: map[string]customers.Customer{
		"ana@example.com": {ID: 7, Name: "Ana", Email: "ana@example.com", PasswordHash: string(hash)},
	}}
	return NewService(dir, slog.Default())
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	c, err := svc.Authenticate(ctx, "ana@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, int64(7), c.ID)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmailMapsToInvalidCredentials(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	require.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestRequireUser(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := RequireUser(next)

	rec := httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	sess := &shared.Session{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(shared.ContextWithSession(req.Context(), sess))
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	sess.SetUser("7")
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
}
