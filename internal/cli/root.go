package cli

import (
	"context"
	"fmt"
)

// Run drives the main menu until the user picks sair. The open session, if
// any, is closed on the way out.
func (a *App) Run(ctx context.Context) {
	for {
		a.showHeader()

		menuColor.Fprintln(a.out, "\n=== MENU PRINCIPAL ===")
		fmt.Fprintln(a.out, "1. 🔐 Login/Cadastro")
		fmt.Fprintln(a.out, "2. 🎓 Cursos")
		fmt.Fprintln(a.out, "3. 🔒 Segurança")
		fmt.Fprintln(a.out, "4. 📜 Certificados")
		fmt.Fprintln(a.out, "5. 🚪 Sair")
		if a.sessions.IsAdmin() {
			adminColor.Fprintln(a.out, "99. ⚡ Menu ADM")
		}

		choice, err := promptLine(a.reader, "Escolha uma opção: ", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.accountScreen(ctx)
		case "2":
			if !a.requireLogin() {
				continue
			}
			a.coursesScreen(ctx)
		case "3":
			a.securityScreen()
		case "4":
			if !a.requireLogin() {
				continue
			}
			a.certificatesScreen(ctx)
		case "5":
			successColor.Fprintln(a.out, "\n✅ Até logo!")
			if err := a.sessions.Logout(ctx); err != nil {
				a.showError(err)
			}
			return
		case "99":
			if a.sessions.IsAdmin() {
				a.adminScreen(ctx)
			} else {
				a.showInvalidOption()
			}
		default:
			a.showInvalidOption()
		}
	}
}

func (a *App) showHeader() {
	titleColor.Fprintln(a.out, "\n=== PLATAFORMA EDUCAÇÃO DIGITAL ===")
	if session := a.sessions.Current(); session != nil {
		c := userColor
		role := "USUÁRIO"
		if session.IsAdmin {
			c = adminColor
			role = "ADMIN"
		}
		c.Fprintf(a.out, "👉 Logado como: %s (%s)\n", session.Username, role)
	}
}

func (a *App) requireLogin() bool {
	if a.sessions.IsAuthenticated() {
		return true
	}
	alertColor.Fprintln(a.out, "\n⚠️ Você precisa fazer login primeiro!")
	return false
}

func (a *App) showInvalidOption() {
	errorColor.Fprintln(a.out, "\n❌ Opção inválida!")
}

func (a *App) showError(err error) {
	errorColor.Fprintf(a.out, "❌ %v\n", err)
}

func (a *App) securityScreen() {
	fmt.Fprintln(a.out, "\n=== INFORMAÇÕES DE SEGURANÇA E PRIVACIDADE ===")
	fmt.Fprintln(a.out, "• As senhas dos usuários são tratadas com critérios de segurança.")
	fmt.Fprintln(a.out, "• Os dados são protegidos conforme a Lei Geral de Proteção de Dados (LGPD).")
	fmt.Fprintln(a.out, "• Evite compartilhar suas credenciais com outras pessoas.")
	fmt.Fprintln(a.out, "• Atualize sua senha com frequência.")
	fmt.Fprintln(a.out, "• Dúvidas? Procure o administrador responsável.")
}
