package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/types"
)

func newTestTokenService(store KeyStore) *TokenService {
	os.Setenv("JWT_SECRET", "test-secret")

	return NewTokenService(store)
}

func testMember() *models.Member {
	return &models.Member{
		ID:    1,
		UID:   "c2c3e6a0-1111-4222-8333-444455556666",
		Email: "user@example.com",
		Role:  types.RoleUser,
	}
}

func TestIssuePairRoundTrip(t *testing.T) {
	store := newFakeKeyStore()
	tokens := newTestTokenService(store)
	member := testMember()

	pair, err := tokens.IssuePair(member)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := tokens.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, member.UID, claims.UID)
	assert.Equal(t, types.RoleUser, claims.Role)

	var stored string
	require.NoError(t, store.GetKey(refreshKeyPrefix+member.UID, &stored))
	assert.Equal(t, pair.RefreshToken, stored)
}

func TestParseMissingToken(t *testing.T) {
	tokens := newTestTokenService(newFakeKeyStore())

	_, err := tokens.Parse("")

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeTokenNotFound, domain_err.Code)
}

func TestParseTamperedToken(t *testing.T) {
	tokens := newTestTokenService(newFakeKeyStore())

	_, err := tokens.Parse("not.a.token")

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeTokenInvalid, domain_err.Code)
}

func TestParseExpiredToken(t *testing.T) {
	tokens := newTestTokenService(newFakeKeyStore())
	member := testMember()

	expired, err := tokens.sign(member.UID, member.Role, -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Parse(expired)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeTokenExpired, domain_err.Code)
}

func TestParseAllowExpiredReadsClaims(t *testing.T) {
	tokens := newTestTokenService(newFakeKeyStore())
	member := testMember()

	expired, err := tokens.sign(member.UID, member.Role, -time.Minute)
	require.NoError(t, err)

	claims, err := tokens.ParseAllowExpired(expired)
	require.NoError(t, err)
	assert.Equal(t, member.UID, claims.UID)
}

func TestReissueRotatesPair(t *testing.T) {
	store := newFakeKeyStore()
	tokens := newTestTokenService(store)
	member := testMember()

	pair, err := tokens.IssuePair(member)
	require.NoError(t, err)

	fresh, err := tokens.Reissue(member, pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, fresh.AccessToken)

	var stored string
	require.NoError(t, store.GetKey(refreshKeyPrefix+member.UID, &stored))
	assert.Equal(t, fresh.RefreshToken, stored)
}

func TestReissueRejectsUnknownRefreshToken(t *testing.T) {
	store := newFakeKeyStore()
	tokens := newTestTokenService(store)
	member := testMember()

	_, err := tokens.IssuePair(member)
	require.NoError(t, err)

	// A token signed with the right key but never stored cannot be used
	// for a reissue.
	foreign, err := tokens.sign(member.UID, member.Role, RefreshTokenTTL)
	require.NoError(t, err)

	_, err = tokens.Reissue(member, foreign)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeInvalidRefreshToken, domain_err.Code)
}

func TestReissueRejectsForeignUID(t *testing.T) {
	tokens := newTestTokenService(newFakeKeyStore())
	member := testMember()

	other, err := tokens.sign("another-uid", member.Role, RefreshTokenTTL)
	require.NoError(t, err)

	_, err = tokens.Reissue(member, other)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeInvalidRefreshToken, domain_err.Code)
}

func TestReissueRejectsExpiredRefreshToken(t *testing.T) {
	tokens := newTestTokenService(newFakeKeyStore())
	member := testMember()

	expired, err := tokens.sign(member.UID, member.Role, -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Reissue(member, expired)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeExpiredRefreshToken, domain_err.Code)
}
