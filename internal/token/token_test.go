package token

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/and161185/authkeeper/internal/errs"
	"github.com/and161185/authkeeper/internal/model"
)

func testUser() *model.User {
	return &model.User{ID: uuid.Must(uuid.NewV4()), Email: "alice@example.com", Roles: []string{"USER"}}
}

func TestManager_IssueParse(t *testing.T) {
	m, err := NewManager([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	require.NoError(t, err)
	u := testUser()

	tok, exp, err := m.Issue(u)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)

	c, err := m.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, u.ID.String(), c.UserID)
	require.Equal(t, u.Email, c.Email)
	require.Equal(t, []string{"USER"}, c.Roles)
	require.NotEmpty(t, c.ID)

	sub, err := c.SubjectID()
	require.NoError(t, err)
	require.Equal(t, u.ID, sub)
}

func TestManager_TokensAreUnique(t *testing.T) {
	m, err := NewManager([]byte("k"), time.Hour)
	require.NoError(t, err)
	u := testUser()

	a, _, err := m.Issue(u)
	require.NoError(t, err)
	b, _, err := m.Issue(u)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestManager_SameKeyAcrossInstances(t *testing.T) {
	key := []byte("stable-key")
	m1, _ := NewManager(key, time.Hour)
	m2, _ := NewManager(key, time.Hour)

	tok, _, err := m1.Issue(testUser())
	require.NoError(t, err)
	_, err = m2.Parse(tok)
	require.NoError(t, err)
}

func TestManager_Rejects(t *testing.T) {
	m, _ := NewManager([]byte("key-one"), time.Minute)
	other, _ := NewManager([]byte("key-two"), time.Minute)
	u := testUser()

	tok, _, err := other.Issue(u)
	require.NoError(t, err)
	_, err = m.Parse(tok)
	require.ErrorIs(t, err, errs.ErrUnauthorized, "foreign signature")

	_, err = m.Parse("not.a.jwt")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	// expired
	m.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	old, _, err := m.Issue(u)
	require.NoError(t, err)
	m.now = time.Now
	_, err = m.Parse(old)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	// alg none
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": u.ID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Parse(unsigned)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager(nil, time.Hour)
	require.Error(t, err)
	_, err = NewManager([]byte("k"), 0)
	require.Error(t, err)
}

func TestClaims_SubjectID_Bad(t *testing.T) {
	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "nope"}}
	_, err := c.SubjectID()
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
