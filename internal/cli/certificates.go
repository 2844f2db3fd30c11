package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcoelho/eduterm/internal/common"
)

func (a *App) certificatesScreen(ctx context.Context) {
	for {
		titleColor.Fprintln(a.out, "\n=== CERTIFICADOS ===")
		fmt.Fprintln(a.out, "1. 🎓 Gerar certificado")
		fmt.Fprintln(a.out, "2. 📋 Listar meus certificados")
		fmt.Fprintln(a.out, "0. ↩ Voltar")

		choice, err := promptLine(a.reader, "Escolha: ", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.issueCertificateFlow(ctx)
		case "2":
			a.listCertificates()
		case "0":
			return
		default:
			a.showInvalidOption()
		}
	}
}

func (a *App) issueCertificateFlow(ctx context.Context) {
	session := a.sessions.Current()
	account, err := a.users.Get(session.Username)
	if err != nil {
		a.showError(err)
		return
	}
	if len(account.EnrolledCourses) == 0 {
		alertColor.Fprintln(a.out, "⚠️ Você não está matriculado em nenhum curso!")
		return
	}

	titleColor.Fprintln(a.out, "\n=== CURSOS MATRICULADOS ===")
	for _, id := range account.EnrolledCourses {
		if course, err := a.courses.Get(id); err == nil {
			fmt.Fprintf(a.out, "%s. %s (%s)\n", id, course.Name, course.Duration)
		}
	}

	courseID, err := promptLine(a.reader, "\nID do curso: ", a.out)
	if err != nil {
		return
	}

	switch record, err := a.certificates.Issue(ctx, session, courseID); {
	case err == nil:
		successColor.Fprintln(a.out, "✅ Certificado gerado com sucesso!")
		fmt.Fprintf(a.out, "Código: %s\n", record.Code)
		fmt.Fprintf(a.out, "Arquivo: %s\n", record.ArtifactPath)
	case errors.Is(err, common.ErrNotEnrolled):
		alertColor.Fprintln(a.out, "⚠️ Você não está matriculado neste curso!")
	case errors.Is(err, common.ErrNotCompleted):
		alertColor.Fprintln(a.out, "⚠️ Conclua todos os módulos do curso antes de gerar o certificado!")
	case errors.Is(err, common.ErrNotFound):
		errorColor.Fprintln(a.out, "❌ Curso inválido!")
	default:
		a.showError(err)
	}
}

func (a *App) listCertificates() {
	views, err := a.certificates.List(a.sessions.Current())
	if err != nil {
		a.showError(err)
		return
	}
	if len(views) == 0 {
		alertColor.Fprintln(a.out, "⚠️ Nenhum certificado emitido ainda.")
		return
	}

	titleColor.Fprintln(a.out, "\n=== MEUS CERTIFICADOS ===")
	for _, v := range views {
		fmt.Fprintf(a.out, "\nCurso: %s\n", v.CourseName)
		fmt.Fprintf(a.out, "Código: %s\n", v.Code)
		fmt.Fprintf(a.out, "Emitido em: %s\n", v.IssuedAt)
		fmt.Fprintf(a.out, "Arquivo: %s\n", v.ArtifactPath)
	}
}
