package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoelho/eduterm/internal/common"
)

// adminScreen is the administrative panel. The root menu only routes here
// for admin sessions; each service call re-checks authorization anyway.
func (a *App) adminScreen(ctx context.Context) {
	for {
		adminColor.Fprintln(a.out, "\n=== MENU ADMIN ===")
		fmt.Fprintln(a.out, "1. 👑 CADASTRAR ADM")
		fmt.Fprintln(a.out, "2. 🧑‍🎓 CADASTRAR ALUNO")
		fmt.Fprintln(a.out, "3. 📋 LISTAR USUÁRIOS")
		fmt.Fprintln(a.out, "4. 🔍 VER DADOS COMPLETOS")
		fmt.Fprintln(a.out, "5. 🗑️ DELETAR USUÁRIO")
		fmt.Fprintln(a.out, "6. 🎓 MATRICULAR ALUNO")
		fmt.Fprintln(a.out, "7. 📜 VER REGISTROS DE LOG")
		fmt.Fprintln(a.out, "8. ↩ VOLTAR")

		choice, err := promptLine(a.reader, "Escolha: ", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.registerFlow(ctx, true)
		case "2":
			a.registerFlow(ctx, false)
		case "3":
			a.listUsers()
		case "4":
			a.showFullData()
		case "5":
			a.adminDeleteFlow(ctx)
		case "6":
			a.enrollFlow(ctx)
		case "7":
			a.showAuditLog()
		case "8":
			return
		default:
			a.showInvalidOption()
		}
	}
}

func (a *App) listUsers() {
	adminColor.Fprintln(a.out, "\n=== USUÁRIOS ===")
	for username, account := range a.users.All() {
		role := userColor.Sprint("ALUNO")
		if account.IsAdmin {
			role = adminColor.Sprint("ADMIN")
		}
		fmt.Fprintf(a.out, "- %s (%s) | Email: %s\n", username, role, account.Email)
	}
}

func (a *App) showFullData() {
	adminColor.Fprintln(a.out, "\n=== DADOS COMPLETOS ===")
	data, err := json.MarshalIndent(a.users.All(), "", "    ")
	if err != nil {
		a.showError(err)
		return
	}
	fmt.Fprintln(a.out, string(data))
}

func (a *App) adminDeleteFlow(ctx context.Context) {
	adminColor.Fprintln(a.out, "\n=== DELETAR USUÁRIO ===")
	a.listUsers()

	target, err := promptLine(a.reader, "\nNome do usuário a deletar: ", a.out)
	if err != nil {
		return
	}

	account, err := a.users.Get(target)
	if err != nil {
		alertColor.Fprintln(a.out, "⚠️ Usuário não encontrado!")
		return
	}

	errorColor.Fprintln(a.out, "\n🚨 DETALHES DO USUÁRIO:")
	fmt.Fprintf(a.out, "• Email: %s\n", account.Email)
	fmt.Fprintf(a.out, "• Idade: %d\n", account.Age)
	fmt.Fprintf(a.out, "• Cursos: %d\n", len(account.EnrolledCourses))

	confirmation, err := promptLine(a.reader, "\nConfirmar deleção? (S/N): ", a.out)
	if err != nil || (confirmation != "S" && confirmation != "s") {
		return
	}

	switch err := a.sessions.AdminDeleteAccount(ctx, target); {
	case err == nil:
		successColor.Fprintln(a.out, "✅ Usuário removido!")
	case errors.Is(err, common.ErrSelfDeleteViaAdminPath):
		adminColor.Fprintln(a.out, "⚠️ Use a opção de deletar conta no menu principal")
	default:
		a.showError(err)
	}
}

func (a *App) enrollFlow(ctx context.Context) {
	adminColor.Fprintln(a.out, "\n=== MATRICULAR ALUNO ===")

	username, err := promptLine(a.reader, "Nome do aluno: ", a.out)
	if err != nil {
		return
	}
	a.listCourses()
	courseID, err := promptLine(a.reader, "ID do curso: ", a.out)
	if err != nil {
		return
	}

	if err := a.enrollment.Enroll(ctx, a.sessions.Current(), username, courseID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			alertColor.Fprintln(a.out, "⚠️ Aluno ou curso não encontrado!")
		} else {
			a.showError(err)
		}
		return
	}
	successColor.Fprintln(a.out, "✅ Aluno matriculado!")
}

func (a *App) showAuditLog() {
	logColor.Fprintln(a.out, "\n=== ÚLTIMOS REGISTROS ===")
	content, err := a.auditor.Dump()
	if err != nil {
		a.showError(err)
		return
	}
	if content == "" {
		fmt.Fprintln(a.out, "Nenhum registro encontrado")
		return
	}
	fmt.Fprint(a.out, content)
}
