package helpers_test

import (
	"github.com/qscaler/qscaler/helpers"
	"github.com/qscaler/qscaler/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var _ = Describe("Health Config", func() {
	var (
		healthConfigBytes []byte
		healthConfig      helpers.HealthConfig
		err               error
	)

	BeforeEach(func() {
		healthConfig = helpers.HealthConfig{}
	})

	JustBeforeEach(func() {
		Expect(yaml.Unmarshal(healthConfigBytes, &healthConfig)).To(Succeed())
		err = healthConfig.Validate()
	})

	When("readiness is not supplied", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
server_config:
  port: 9999
basic_auth:
  username: test-username
  password: password
`)
		})

		It("defaults to false", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(healthConfig).To(Equal(helpers.HealthConfig{
				ServerConfig: helpers.ServerConfig{Port: 9999},
				BasicAuth: models.BasicAuth{
					Username: "test-username",
					Password: "password",
				},
			}))
			Expect(healthConfig.BasicAuthEnabled()).To(BeTrue())
		})
	})

	When("no credentials are supplied", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
readiness_enabled: true
`)
		})

		It("is valid without basic auth", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(healthConfig.ReadinessCheckEnabled).To(BeTrue())
			Expect(healthConfig.BasicAuthEnabled()).To(BeFalse())
		})
	})

	When("both password and password_hash are supplied", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
basic_auth:
  username: test-username
  password: password
  password_hash: password_hash
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(helpers.ErrConfiguration))
			Expect(err).To(MatchError(ContainSubstring("both healthcheck password and healthcheck password_hash are set")))
		})
	})

	When("both username and username_hash are supplied", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
basic_auth:
  username: test-username
  username_hash: username_hash
  password: password
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(ContainSubstring("both healthcheck username and healthcheck username_hash are set")))
		})
	})

	When("the password_hash is not a bcrypt hash", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
basic_auth:
  username: test-username
  password_hash: not-a-hash
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(ContainSubstring("healthcheck password_hash is not a valid bcrypt hash")))
		})
	})

	When("valid bcrypt hashes are supplied", func() {
		BeforeEach(func() {
			usernameHash, hashErr := bcrypt.GenerateFromPassword([]byte("user"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			passwordHash, hashErr := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			healthConfigBytes = []byte("basic_auth:\n  username_hash: " + string(usernameHash) + "\n  password_hash: " + string(passwordHash) + "\n")
		})

		It("passes validation", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("only a password is supplied", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
basic_auth:
  password: password
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(ContainSubstring("healthcheck username is empty")))
		})
	})

	When("only a username is supplied", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
basic_auth:
  username: test-username
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(ContainSubstring("healthcheck password is empty")))
		})
	})

	When("a username_hash is combined with a clear password", func() {
		BeforeEach(func() {
			usernameHash, hashErr := bcrypt.GenerateFromPassword([]byte("user"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			healthConfigBytes = []byte("basic_auth:\n  username_hash: " + string(usernameHash) + "\n  password: pass\n")
		})

		It("passes validation", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(healthConfig.BasicAuthEnabled()).To(BeTrue())
		})
	})

	When("the username_hash is not a bcrypt hash", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
basic_auth:
  username_hash: not-a-hash
  password: password
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(helpers.ErrConfiguration))
			Expect(err).To(MatchError(ContainSubstring("healthcheck username_hash is not a valid bcrypt hash")))
		})
	})

	When("the port is out of range", func() {
		BeforeEach(func() {
			healthConfigBytes = []byte(`
server_config:
  port: 70000
`)
		})

		It("fails validation", func() {
			Expect(err).To(MatchError(ContainSubstring("health server port 70000 is out of range")))
		})
	})
})
