package helpers

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/qscaler/qscaler/models"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only looks at the first 72 bytes of its input
const maxBcryptInputLength = 72

type BasicAuthenticationMiddleware struct {
	usernameHash []byte
	passwordHash []byte
}

func (bam *BasicAuthenticationMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, authOK := r.BasicAuth()

		if !authOK || bcrypt.CompareHashAndPassword(bam.usernameHash, []byte(truncate(username))) != nil || bcrypt.CompareHashAndPassword(bam.passwordHash, []byte(truncate(password))) != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func CreateBasicAuthMiddleware(logger lager.Logger, ba models.BasicAuth) (*BasicAuthenticationMiddleware, error) {
	usernameHash, err := hashBytes(logger.Session("username"), ba.UsernameHash, ba.Username)
	if err != nil {
		return nil, err
	}

	passwordHash, err := hashBytes(logger.Session("password"), ba.PasswordHash, ba.Password)
	if err != nil {
		return nil, err
	}

	return &BasicAuthenticationMiddleware{
		usernameHash: usernameHash,
		passwordHash: passwordHash,
	}, nil
}

func hashBytes(logger lager.Logger, hash string, clear string) ([]byte, error) {
	if hash != "" {
		return []byte(hash), nil
	}
	if len(clear) > maxBcryptInputLength {
		logger.Info("configured-value-too-long-using-only-first-72-characters", lager.Data{"length": len(clear)})
	}
	// MinCost as the config already provided it as cleartext
	hashed, err := bcrypt.GenerateFromPassword([]byte(truncate(clear)), bcrypt.MinCost)
	if err != nil {
		logger.Error("failed-to-hash", err)
		return nil, err
	}
	return hashed, nil
}

func truncate(s string) string {
	if len(s) > maxBcryptInputLength {
		return s[:maxBcryptInputLength]
	}
	return s
}
