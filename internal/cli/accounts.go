package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcoelho/eduterm/internal/common"
	"github.com/mcoelho/eduterm/internal/services"
)

// accountScreen adapts to login status: entering/leaving a session,
// self-registration, showing own data, and self-deletion.
func (a *App) accountScreen(ctx context.Context) {
	for {
		logged := a.sessions.IsAuthenticated()

		userColor.Fprintln(a.out, "\n=== LOGIN / CADASTRO ===")
		if logged {
			fmt.Fprintln(a.out, "1. 🔓 DESLOGAR")
		} else {
			fmt.Fprintln(a.out, "1. 🔑 ENTRAR")
		}
		fmt.Fprintln(a.out, "2. 📝 CADASTRAR-SE")
		if logged {
			fmt.Fprintln(a.out, "3. 👤 VER MEUS DADOS")
			fmt.Fprintln(a.out, "4. 💀 DELETAR MINHA CONTA")
		}
		fmt.Fprintln(a.out, "0. ↩ VOLTAR")

		choice, err := promptLine(a.reader, "Escolha: ", a.out)
		if err != nil {
			return
		}

		switch {
		case choice == "1" && logged:
			if err := a.sessions.Logout(ctx); err != nil {
				a.showError(err)
			}
			return
		case choice == "1":
			a.loginFlow(ctx)
			if a.sessions.IsAuthenticated() {
				return
			}
		case choice == "2":
			a.registerFlow(ctx, false)
		case choice == "3" && logged:
			a.showOwnData()
		case choice == "4" && logged:
			a.deleteOwnAccountFlow(ctx)
			if !a.sessions.IsAuthenticated() {
				return
			}
		case choice == "0":
			return
		default:
			a.showInvalidOption()
		}
	}
}

func (a *App) loginFlow(ctx context.Context) {
	adminColor.Fprintln(a.out, "\n=== LOGIN ===")

	username, err := promptLine(a.reader, "Usuário: ", a.out)
	if err != nil {
		return
	}
	password, err := promptPassword("Senha: ", a.out)
	if err != nil {
		return
	}

	if err := a.sessions.Login(ctx, username, password); err != nil {
		if errors.Is(err, common.ErrAuthFailed) {
			alertColor.Fprintln(a.out, "⚠️ Credenciais inválidas!")
		} else {
			a.showError(err)
		}
		return
	}
	successColor.Fprintln(a.out, "\n✅ Login bem-sucedido!")
}

// registerFlow prompts each field in a retry loop until it validates, then
// creates the account.
func (a *App) registerFlow(ctx context.Context, isAdmin bool) {
	role := "ALUNO"
	c := userColor
	if isAdmin {
		role = "ADMIN"
		c = adminColor
	}
	c.Fprintf(a.out, "\n=== CADASTRO %s ===\n", role)

	in := services.RegistrationInput{}

	for {
		username, err := promptLine(a.reader, "Nome de usuário: ", a.out)
		if err != nil {
			return
		}
		if err := a.registration.ValidateUsername(username); err != nil {
			a.showError(err)
			continue
		}
		in.Username = username
		break
	}

	for {
		email, err := promptLine(a.reader, "Email: ", a.out)
		if err != nil {
			return
		}
		if err := a.registration.ValidateEmail(email); err != nil {
			a.showError(err)
			continue
		}
		in.Email = email
		break
	}

	for {
		age, err := promptInt(a.reader, "Idade: ", a.out)
		if err != nil {
			a.showError(err)
			continue
		}
		if err := a.registration.ValidateAge(age); err != nil {
			a.showError(err)
			continue
		}
		in.Age = age
		break
	}

	for {
		password, err := promptPassword("Senha: ", a.out)
		if err != nil {
			return
		}
		if err := a.registration.ValidatePassword(password); err != nil {
			a.showError(err)
			continue
		}
		in.Password = password
		break
	}

	actor := ""
	if session := a.sessions.Current(); session != nil {
		actor = session.Username
	}
	if err := a.registration.Register(ctx, actor, in, isAdmin); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			alertColor.Fprintln(a.out, "⚠️ Usuário já existe!")
		} else {
			a.showError(err)
		}
		return
	}
	successColor.Fprintf(a.out, "✅ %s registrado!\n", role)
}

func (a *App) showOwnData() {
	session := a.sessions.Current()
	account, err := a.users.Get(session.Username)
	if err != nil {
		a.showError(err)
		return
	}

	userColor.Fprintln(a.out, "\n=== MEUS DADOS ===")
	fmt.Fprintf(a.out, "👤 Usuário: %s\n", session.Username)
	fmt.Fprintf(a.out, "📧 Email: %s\n", account.Email)
	fmt.Fprintf(a.out, "🎂 Idade: %d\n", account.Age)
	fmt.Fprintf(a.out, "📅 Cadastro: %.10s\n", account.RegisteredAt)
	fmt.Fprintf(a.out, "🎓 Cursos: %d matriculados\n", len(account.EnrolledCourses))
}

func (a *App) deleteOwnAccountFlow(ctx context.Context) {
	session := a.sessions.Current()
	account, err := a.users.Get(session.Username)
	if err != nil {
		a.showError(err)
		return
	}

	errorColor.Fprintln(a.out, "\n🚨 ATENÇÃO! DELETAR CONTA PERMANENTEMENTE!")
	fmt.Fprintf(a.out, "• Todos os dados de %s serão perdidos\n", session.Username)
	fmt.Fprintf(a.out, "• Cursos matriculados: %d\n", len(account.EnrolledCourses))

	confirmation, err := promptLine(a.reader, fmt.Sprintf("\nDigite '%s' para confirmar: ", services.DeleteConfirmation), a.out)
	if err != nil {
		return
	}

	switch err := a.sessions.DeleteOwnAccount(ctx, confirmation); {
	case err == nil:
		successColor.Fprintln(a.out, "✅ Conta removida!")
	case errors.Is(err, common.ErrNotConfirmed):
		userColor.Fprintln(a.out, "❌ Cancelado")
	case errors.Is(err, common.ErrAdminSelfDelete):
		adminColor.Fprintln(a.out, "⚠️ ADMs devem usar o menu administrativo")
	default:
		a.showError(err)
	}
}
