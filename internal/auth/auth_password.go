package auth

import (
	"errors"
	"net/http"
	"sync"
	"unicode/utf8"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/shared/apperror"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is counted in characters, not bytes.
const MinPasswordLength = 6

// dummyHash is compared against when the username does not exist so a miss
// costs the same as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return h
})

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", autherrors.ErrPasswordTooLong
	}
	if err != nil {
		return "", apperror.Wrap(err, apperror.CodeInternalError, "Could not process password", http.StatusInternalServerError)
	}
	return string(h), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func PasswordLongEnough(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}
