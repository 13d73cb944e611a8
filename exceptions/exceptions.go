package exceptions

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError is the single error type every service returns for a
// business failure. Code and Message form the stable error contract
// rendered in the response envelope; the HTTP status stays 200.
type DomainError struct {
	Code    int
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// AsDomain extracts a *DomainError from an error chain.
func AsDomain(err error) (*DomainError, bool) {
	var domain_err *DomainError
	if errors.As(err, &domain_err) {
		return domain_err, true
	}

	return nil, false
}

const (
	CodeMemberDuplicationEmail = -100
	CodeMailAuthNotEqual       = -101
	CodeMemberNotFound         = -102
	CodeWrongEmail             = -103
	CodeWrongPassword          = -104
	CodeAddressNotFound        = -105
	CodeBaseAddressProtected   = -106
	CodeInvalidRefreshToken    = -107
	CodeExpiredRefreshToken    = -108
	CodeMalformedNumber        = -109
	CodeTokenNotFound          = 1000
	CodeTokenInvalid           = 1001
	CodeTokenExpired           = 1002
	CodeShared                 = -1
	CodeInternal               = -9999
)

func MemberDuplicationEmail() *DomainError {
	return &DomainError{Code: CodeMemberDuplicationEmail, Message: "email is already registered"}
}

func MailAuthNotEqual() *DomainError {
	return &DomainError{Code: CodeMailAuthNotEqual, Message: "auth code does not match"}
}

func MemberNotFound() *DomainError {
	return &DomainError{Code: CodeMemberNotFound, Message: "member does not exist"}
}

func WrongEmail() *DomainError {
	return &DomainError{Code: CodeWrongEmail, Message: "wrong email"}
}

func WrongPassword() *DomainError {
	return &DomainError{Code: CodeWrongPassword, Message: "wrong password"}
}

func AddressNotFound() *DomainError {
	return &DomainError{Code: CodeAddressNotFound, Message: "address does not exist"}
}

func BaseAddressNotDelete() *DomainError {
	return &DomainError{Code: CodeBaseAddressProtected, Message: "base address cannot be deleted"}
}

func BaseAddressUnchecked() *DomainError {
	return &DomainError{Code: CodeBaseAddressProtected, Message: "base address cannot be unset"}
}

func InvalidRefreshToken() *DomainError {
	return &DomainError{Code: CodeInvalidRefreshToken, Message: "refresh token does not match"}
}

func ExpiredRefreshToken() *DomainError {
	return &DomainError{Code: CodeExpiredRefreshToken, Message: "refresh token has expired"}
}

func MalformedNumber(value string) *DomainError {
	return &DomainError{Code: CodeMalformedNumber, Message: fmt.Sprintf("%s : input is not an integer", value)}
}

func TokenNotFound() *DomainError {
	return &DomainError{Code: CodeTokenNotFound, Message: "token does not exist"}
}

func TokenInvalid() *DomainError {
	return &DomainError{Code: CodeTokenInvalid, Message: "token is tampered"}
}

func TokenExpired() *DomainError {
	return &DomainError{Code: CodeTokenExpired, Message: "token has expired"}
}

// The brand/product/image/size/trade family shares code -1; the message
// carries the offending identifier.

func BrandDuplication(name string) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%s : brand name already exists", name)}
}

func BrandNotFound(id uint64) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%d : brand with this id cannot be found", id)}
}

func ProductDuplication(name string) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%s : product name already exists", name)}
}

func ProductNotFound(id uint64) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%d : product with this id cannot be found", id)}
}

func ProductImageDuplication(names []string) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("image names (%s) are duplicated", strings.Join(names, " "))}
}

func ProductImageNotFound(id uint64) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%d : product image with this id cannot be found", id)}
}

func ProductSizeNotFound(id uint64) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%d : shoe size with this id cannot be found", id)}
}

func TradeNotFound(id uint64) *DomainError {
	return &DomainError{Code: CodeShared, Message: fmt.Sprintf("%d : trade with this id cannot be found", id)}
}

func Internal() *DomainError {
	return &DomainError{Code: CodeInternal, Message: "server internal error"}
}
