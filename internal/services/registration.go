package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/mcoelho/eduterm/internal/audit"
	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/logging"
	"github.com/mcoelho/eduterm/internal/models"
	"github.com/mcoelho/eduterm/internal/repositories/users"
)

// passwordSymbols is the accepted special-character set for passwords.
const passwordSymbols = "!@#$%&*_-+="

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{4,20}$`)

// RegistrationInput carries the fields of a new account through validation.
type RegistrationInput struct {
	Username string `validate:"required,username"`
	Password string `validate:"required,strongpwd"`
	Email    string `validate:"required,email"`
	Age      int    `validate:"gte=5,lte=120"`
}

// newValidate builds the validator instance with the project's custom
// rules registered.
func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return passwordIssue(fl.Field().String()) == ""
	})
	return v
}

// passwordIssue returns the first unmet strength rule as a user-facing
// message, or "" when the password is acceptable.
func passwordIssue(password string) string {
	if len(password) < 8 {
		return "Mínimo 8 caracteres"
	}
	hasUpper, hasDigit, hasSymbol := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return "Pelo menos 1 letra maiúscula"
	}
	if !hasDigit {
		return "Pelo menos 1 número"
	}
	if !hasSymbol {
		return "Pelo menos 1 símbolo especial"
	}
	return ""
}

// RegistrationService creates validated accounts in the credential store.
type RegistrationService struct {
	users    users.Repository
	auditor  *audit.Log
	log      logging.Logger
	validate *validator.Validate
}

func NewRegistrationService(repo users.Repository, auditor *audit.Log, log logging.Logger) *RegistrationService {
	return &RegistrationService{users: repo, auditor: auditor, log: log, validate: newValidate()}
}

// Per-field checks used by the interactive retry loops. Each returns a
// common.ErrValidation wrapper with a user-facing message.

func (s *RegistrationService) ValidateUsername(username string) error {
	if err := s.validate.Var(username, "required,username"); err != nil {
		return fmt.Errorf("%w: 4-20 caracteres (letras, números e _)", common.ErrValidation)
	}
	return nil
}

func (s *RegistrationService) ValidateEmail(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("%w: Email inválido! Formato: usuario@dominio.com", common.ErrValidation)
	}
	return nil
}

func (s *RegistrationService) ValidateAge(age int) error {
	if err := s.validate.Var(age, "gte=5,lte=120"); err != nil {
		return fmt.Errorf("%w: Idade deve ser entre 5-120 anos", common.ErrValidation)
	}
	return nil
}

func (s *RegistrationService) ValidatePassword(password string) error {
	if msg := passwordIssue(password); msg != "" {
		return fmt.Errorf("%w: %s", common.ErrValidation, msg)
	}
	return nil
}

// Register validates the input and creates the account. A duplicate
// username fails with common.ErrAlreadyExists and leaves the store
// untouched. actor is the session user performing the registration, or ""
// for anonymous self-registration (audited as SYSTEM).
func (s *RegistrationService) Register(ctx context.Context, actor string, in RegistrationInput, isAdmin bool) error {
	if err := s.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	account := &models.UserAccount{
		Password:     in.Password,
		Email:        in.Email,
		Age:          in.Age,
		IsAdmin:      isAdmin,
		RegisteredAt: time.Now().Format(time.RFC3339),
	}
	if err := s.users.Create(in.Username, account); err != nil {
		return err
	}

	role := "ALUNO"
	if isAdmin {
		role = "ADMIN"
	}
	s.log.Info(ctx, "account registered", "user", in.Username, "role", role)
	return s.auditor.Record(actor, "Cadastro de "+role, "Usuário: "+in.Username)
}
