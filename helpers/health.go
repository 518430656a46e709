package helpers

import (
	"fmt"

	"github.com/qscaler/qscaler/models"
	"golang.org/x/crypto/bcrypt"
)

type ServerConfig struct {
	Port int `yaml:"port" json:"port"`
}

// HealthConfig configures the readiness and metrics server.
type HealthConfig struct {
	ServerConfig          ServerConfig     `yaml:"server_config" json:"server_config"`
	BasicAuth             models.BasicAuth `yaml:"basic_auth" json:"basic_auth"`
	ReadinessCheckEnabled bool             `yaml:"readiness_enabled" json:"readiness_enabled"`
}

var ErrConfiguration = fmt.Errorf("configuration error")

// credential is one half of the basic auth pair, given either in clear or as
// a bcrypt hash.
type credential struct {
	name  string
	clear string
	hash  string
}

func (c credential) set() bool {
	return c.clear != "" || c.hash != ""
}

func (c credential) validate() error {
	if c.clear != "" && c.hash != "" {
		return fmt.Errorf("%w: both healthcheck %s and healthcheck %s_hash are set, please provide only one of them", ErrConfiguration, c.name, c.name)
	}
	if c.hash == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(c.hash)); err != nil {
		return fmt.Errorf("%w: healthcheck %s_hash is not a valid bcrypt hash", ErrConfiguration, c.name)
	}
	return nil
}

func (c *HealthConfig) Validate() error {
	if c.ServerConfig.Port < 0 || c.ServerConfig.Port > 65535 {
		return fmt.Errorf("%w: health server port %d is out of range", ErrConfiguration, c.ServerConfig.Port)
	}

	username := credential{name: "username", clear: c.BasicAuth.Username, hash: c.BasicAuth.UsernameHash}
	password := credential{name: "password", clear: c.BasicAuth.Password, hash: c.BasicAuth.PasswordHash}

	for _, cred := range []credential{username, password} {
		if err := cred.validate(); err != nil {
			return err
		}
	}

	switch {
	case password.set() && !username.set():
		return fmt.Errorf("%w: healthcheck username is empty", ErrConfiguration)
	case username.set() && !password.set():
		return fmt.Errorf("%w: healthcheck password is empty", ErrConfiguration)
	}

	return nil
}

func (c *HealthConfig) BasicAuthEnabled() bool {
	return c.BasicAuth != models.BasicAuth{}
}
