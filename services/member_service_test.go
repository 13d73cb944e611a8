package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/types"
)

type silentMailer struct{}

func (silentMailer) SendAuthCode(email, code string) error { return nil }

func newTestMemberService(t *testing.T) (*MemberService, sqlmock.Sqlmock, *fakeKeyStore) {
	t.Helper()

	db, mock := newServiceDB(t)
	store := newFakeKeyStore()

	return NewMemberService(db, store, newTestTokenService(store), silentMailer{}), mock, store
}

func TestCheckAuthCode(t *testing.T) {
	members, _, store := newTestMemberService(t)

	require.NoError(t, store.SetKey(authCodeKeyPrefix+"user@example.com", "123456", authCodeTTL))

	err := members.CheckAuthCode("user@example.com", "000000")
	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeMailAuthNotEqual, domain_err.Code)

	require.NoError(t, members.CheckAuthCode("user@example.com", "123456"))

	// The code is single use.
	err = members.CheckAuthCode("user@example.com", "123456")
	_, ok = exceptions.AsDomain(err)
	assert.True(t, ok)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	members, mock, _ := newTestMemberService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "members" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := members.Register(&queries.MemberJoinPayload{
		Email:    "user@example.com",
		Password: "password123",
	})

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeMemberDuplicationEmail, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongEmail(t *testing.T) {
	members, mock, _ := newTestMemberService(t)

	mock.ExpectQuery(`SELECT \* FROM "members" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "email", "password", "role"}))

	_, err := members.Login(&queries.MemberLoginPayload{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeWrongEmail, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	members, mock, _ := newTestMemberService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "members" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "email", "password", "role"}).
			AddRow(1, "uid-1", "user@example.com", string(hash), types.RoleUser))

	_, err = members.Login(&queries.MemberLoginPayload{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeWrongPassword, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginIssuesTokenPair(t *testing.T) {
	members, mock, store := newTestMemberService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "members" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "email", "password", "role"}).
			AddRow(1, "uid-1", "user@example.com", string(hash), types.RoleUser))

	pair, err := members.Login(&queries.MemberLoginPayload{
		Email:    "user@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	var stored string
	require.NoError(t, store.GetKey(refreshKeyPrefix+"uid-1", &stored))
	assert.Equal(t, pair.RefreshToken, stored)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAddressProtectsBase(t *testing.T) {
	members, mock, _ := newTestMemberService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE id = (.+) AND member_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "name", "base"}).
			AddRow(3, 1, "home", true))
	mock.ExpectRollback()

	err := members.DeleteAddress(testMember(), 3)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeBaseAddressProtected, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetBaseAddressRejectsCurrentBase(t *testing.T) {
	members, mock, _ := newTestMemberService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "addresses" WHERE id = (.+) AND member_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "name", "base"}).
			AddRow(3, 1, "home", true))
	mock.ExpectRollback()

	err := members.SetBaseAddress(testMember(), 3)

	domain_err, ok := exceptions.AsDomain(err)
	require.True(t, ok)
	assert.Equal(t, exceptions.CodeBaseAddressProtected, domain_err.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSendAuthCodeStoresSixDigits(t *testing.T) {
	members, _, store := newTestMemberService(t)

	require.NoError(t, members.SendAuthCode("user@example.com"))

	var code string
	require.NoError(t, store.GetKey(authCodeKeyPrefix+"user@example.com", &code))
	assert.Len(t, code, 6)
}
