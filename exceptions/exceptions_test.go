package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	cases := []struct {
		err  *DomainError
		code int
	}{
		{MemberDuplicationEmail(), -100},
		{MailAuthNotEqual(), -101},
		{MemberNotFound(), -102},
		{WrongEmail(), -103},
		{WrongPassword(), -104},
		{AddressNotFound(), -105},
		{BaseAddressNotDelete(), -106},
		{BaseAddressUnchecked(), -106},
		{InvalidRefreshToken(), -107},
		{ExpiredRefreshToken(), -108},
		{MalformedNumber("abc"), -109},
		{TokenNotFound(), 1000},
		{TokenInvalid(), 1001},
		{TokenExpired(), 1002},
		{BrandDuplication("Nike"), -1},
		{BrandNotFound(3), -1},
		{ProductDuplication("Dunk Low"), -1},
		{ProductNotFound(9), -1},
		{ProductImageDuplication([]string{"a.png"}), -1},
		{ProductImageNotFound(5), -1},
		{ProductSizeNotFound(7), -1},
		{TradeNotFound(11), -1},
		{Internal(), -9999},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.err.Code, c.err.Message)
		assert.NotEmpty(t, c.err.Message)
	}
}

func TestErrorMessagesCarryIdentifier(t *testing.T) {
	assert.Equal(t, "abc : input is not an integer", MalformedNumber("abc").Message)
	assert.Equal(t, "Nike : brand name already exists", BrandDuplication("Nike").Message)
	assert.Equal(t, "7 : brand with this id cannot be found", BrandNotFound(7).Message)
	assert.Equal(t, "image names (a.png b.png) are duplicated", ProductImageDuplication([]string{"a.png", "b.png"}).Message)
}

func TestAsDomain(t *testing.T) {
	wrapped := fmt.Errorf("save product: %w", ProductNotFound(3))

	domain_err, ok := AsDomain(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeShared, domain_err.Code)

	_, ok = AsDomain(errors.New("connection refused"))
	assert.False(t, ok)
}
