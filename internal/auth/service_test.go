package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/auth"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

type storedUser struct {
	id       int64
	username string
	hash     string
	role     string
}

type mockUserRepository struct {
	users map[string]*storedUser
}

func (m *mockUserRepository) GetCredentialsByUsername(username string) (string, int64, string, error) {
	u, ok := m.users[username]
	if !ok {
		return "", 0, "", internal.ErrUserNotFound
	}
	return u.hash, u.id, u.role, nil
}

func (m *mockUserRepository) GetUserByID(userID int64) (*auth.User, error) {
	for _, u := range m.users {
		if u.id == userID {
			return &auth.User{ID: u.id, Username: u.username, Role: u.role}, nil
		}
	}
	return nil, internal.ErrUserNotFound
}

const (
	accessSecret  = "test-access-secret-0123456789abcdef"
	refreshSecret = "test-refresh-secret-0123456789abcdef"
)

var _ = Describe("AuthService", func() {
	var (
		repo     *mockUserRepository
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
	)

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		repo = &mockUserRepository{users: map[string]*storedUser{
			"admin":      {id: 1, username: "admin", hash: string(hash), role: auth.RoleAdmin},
			"superadmin": {id: 2, username: "superadmin", hash: string(hash), role: auth.RoleSuperAdmin},
		}}
		tokenGen = auth.NewJWTTokenGenerator(accessSecret, refreshSecret, time.Hour, 24*time.Hour)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(repo, tokenGen, bcrypt.MinCost, logger)
	})

	Describe("Authenticate", func() {
		It("returns signed tokens and the role for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
			Expect(tokens.Role).To(Equal(auth.RoleAdmin))

			claims, err := service.ValidateAccessToken(tokens.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(int64(1)))
			Expect(claims.Role).To(Equal(auth.RoleAdmin))
		})

		It("reports the same error for an unknown username and a wrong password", func() {
			_, unknownErr := service.Authenticate(auth.LoginDTO{Username: "nobody", Password: "correct-horse"})
			_, wrongErr := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "wrong"})

			Expect(unknownErr).To(Equal(internal.ErrInvalidCredentials))
			Expect(wrongErr).To(Equal(internal.ErrInvalidCredentials))
			Expect(unknownErr.Error()).To(Equal(wrongErr.Error()))
		})

		It("rejects empty credentials before touching storage", func() {
			_, err := service.Authenticate(auth.LoginDTO{})
			Expect(err).To(BeAssignableToTypeOf(auth.ValidationError{}))
		})
	})

	Describe("token validation", func() {
		It("reports expiry for a well-signed stale token", func() {
			staleGen := auth.NewJWTTokenGenerator(accessSecret, refreshSecret, -time.Minute, -time.Minute)
			token, err := staleGen.GenerateAccessToken(1, auth.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(Equal(internal.ErrTokenExpired))
		})

		It("reports invalid for a token signed with another key", func() {
			forgedGen := auth.NewJWTTokenGenerator("another-secret-0123456789abcdefgh", refreshSecret, time.Hour, time.Hour)
			token, err := forgedGen.GenerateAccessToken(1, auth.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(token)
			Expect(err).To(Equal(internal.ErrInvalidToken))
		})

		It("reports invalid for garbage input", func() {
			_, err := service.ValidateAccessToken("not.a.token")
			Expect(err).To(Equal(internal.ErrInvalidToken))
		})

		It("does not accept an access token on the refresh path", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.RefreshTokens(tokens.AccessToken)
			Expect(err).To(Equal(internal.ErrInvalidToken))
		})
	})

	Describe("RefreshTokens", func() {
		It("issues a fresh pair carrying the role currently in storage", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			// Promotion lands on the next refresh, not at token expiry.
			repo.users["admin"].role = auth.RoleSuperAdmin

			refreshed, err := service.RefreshTokens(tokens.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(refreshed.Role).To(Equal(auth.RoleSuperAdmin))

			claims, err := service.ValidateAccessToken(refreshed.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Role).To(Equal(auth.RoleSuperAdmin))
		})

		It("rejects a refresh token for a deleted user", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			delete(repo.users, "admin")

			_, err = service.RefreshTokens(tokens.RefreshToken)
			Expect(err).To(Equal(internal.ErrInvalidToken))
		})
	})

	Describe("Authorize", func() {
		It("allows an admin to write payrolls but not delete them", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "admin", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Authorize(tokens.AccessToken, auth.OpPayrollWrite)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Authorize(tokens.AccessToken, auth.OpPayrollDelete)
			Expect(err).To(Equal(internal.ErrForbidden))
		})

		It("allows a super admin everything an admin can do and more", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Username: "superadmin", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())

			for _, op := range []auth.Operation{auth.OpPayrollWrite, auth.OpPayrollDelete, auth.OpUserManage} {
				_, err = service.Authorize(tokens.AccessToken, op)
				Expect(err).NotTo(HaveOccurred(), string(op))
			}
		})
	})
})

var _ = Describe("Policy", func() {
	allOps := []auth.Operation{
		auth.OpEmployeeRead, auth.OpEmployeeWrite, auth.OpEmployeeDelete,
		auth.OpProjectRead, auth.OpProjectWrite, auth.OpProjectDelete,
		auth.OpDeductionRead, auth.OpDeductionWrite,
		auth.OpAttendanceRead, auth.OpAttendanceWrite, auth.OpAttendanceDelete,
		auth.OpPayrollRead, auth.OpPayrollWrite, auth.OpPayrollDelete,
		auth.OpPayRecordRead, auth.OpPayRecordWrite,
		auth.OpUserManage,
	}

	It("grants super_admin a strict superset of admin", func() {
		adminCount := 0
		for _, op := range allOps {
			if auth.RoleAllowed(auth.RoleAdmin, op) {
				Expect(auth.RoleAllowed(auth.RoleSuperAdmin, op)).To(BeTrue(), string(op))
				adminCount++
			}
		}
		Expect(adminCount).To(BeNumerically("<", len(allOps)))
	})

	It("allows nobody an unknown operation", func() {
		Expect(auth.RoleAllowed(auth.RoleSuperAdmin, auth.Operation("reports.read"))).To(BeFalse())
	})
})
