package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mcoelho/eduterm/internal/common"
)

// coursesScreen shows the catalog to every logged-in user; catalog and
// module administration stays behind the admin role, while students get
// the module-completion option.
func (a *App) coursesScreen(ctx context.Context) {
	for {
		titleColor.Fprintln(a.out, "\n=== GERENCIAMENTO DE CURSOS ===")
		fmt.Fprintln(a.out, "1. 📋 Listar cursos")
		fmt.Fprintln(a.out, "2. ✔️ Concluir módulo")
		if a.sessions.IsAdmin() {
			fmt.Fprintln(a.out, "3. ➕ Criar novo curso (ADM)")
			fmt.Fprintln(a.out, "4. ✏️ Editar curso (ADM)")
			fmt.Fprintln(a.out, "5. 📚 Gerenciar módulos (ADM)")
		}
		fmt.Fprintln(a.out, "0. ↩ Voltar")

		choice, err := promptLine(a.reader, "Escolha: ", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.listCourses()
		case "2":
			a.completeModuleFlow(ctx)
		case "3":
			a.createCourseFlow(ctx)
		case "4":
			a.editCourseFlow(ctx)
		case "5":
			a.modulesScreen(ctx)
		case "0":
			return
		default:
			a.showInvalidOption()
		}
	}
}

func (a *App) listCourses() {
	titleColor.Fprintln(a.out, "\n=== CURSOS DISPONÍVEIS ===")
	for _, id := range a.courses.SortedIDs() {
		course, err := a.courses.Get(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(a.out, "\n%s. %s (%s)\n", id, course.Name, course.Duration)
		if len(course.Modules) > 0 {
			fmt.Fprintln(a.out, "   Módulos:")
			for _, m := range course.Modules {
				fmt.Fprintf(a.out, "   - %s\n", m.Name)
			}
		}
	}
}

func (a *App) completeModuleFlow(ctx context.Context) {
	a.listCourses()
	courseID, err := promptLine(a.reader, "\nID do curso: ", a.out)
	if err != nil {
		return
	}
	moduleName, err := promptLine(a.reader, "Nome do módulo concluído: ", a.out)
	if err != nil {
		return
	}

	switch err := a.enrollment.CompleteModule(ctx, a.sessions.Current(), courseID, moduleName); {
	case err == nil:
		successColor.Fprintln(a.out, "✅ Módulo concluído!")
	case errors.Is(err, common.ErrNotEnrolled):
		alertColor.Fprintln(a.out, "⚠️ Você não está matriculado neste curso!")
	case errors.Is(err, common.ErrNotFound):
		errorColor.Fprintln(a.out, "❌ Curso ou módulo inválido!")
	default:
		a.showError(err)
	}
}

func (a *App) createCourseFlow(ctx context.Context) {
	titleColor.Fprintln(a.out, "\n=== CRIAR CURSO ===")
	name, err := promptLine(a.reader, "Nome do curso: ", a.out)
	if err != nil {
		return
	}
	duration, err := promptLine(a.reader, "Carga horária (ex: 40h): ", a.out)
	if err != nil {
		return
	}

	id, err := a.courseAdmin.Create(ctx, a.sessions.Current(), name, duration)
	if err != nil {
		a.showError(err)
		return
	}
	successColor.Fprintf(a.out, "✅ Curso criado com ID %s!\n", id)
}

func (a *App) editCourseFlow(ctx context.Context) {
	a.listCourses()
	id, err := promptLine(a.reader, "\nID do curso a editar: ", a.out)
	if err != nil {
		return
	}
	course, err := a.courses.Get(id)
	if err != nil {
		errorColor.Fprintln(a.out, "❌ Curso inválido!")
		return
	}

	newName, err := promptLine(a.reader, fmt.Sprintf("Novo nome [%s]: ", course.Name), a.out)
	if err != nil {
		return
	}
	newDuration, err := promptLine(a.reader, fmt.Sprintf("Nova carga horária [%s]: ", course.Duration), a.out)
	if err != nil {
		return
	}

	if err := a.courseAdmin.Edit(ctx, a.sessions.Current(), id, newName, newDuration); err != nil {
		a.showError(err)
		return
	}
	successColor.Fprintln(a.out, "✅ Curso atualizado!")
}

func (a *App) modulesScreen(ctx context.Context) {
	for {
		titleColor.Fprintln(a.out, "\n=== GERENCIAMENTO DE MÓDULOS ===")
		fmt.Fprintln(a.out, "1. 📋 Listar módulos por curso")
		fmt.Fprintln(a.out, "2. ➕ Adicionar módulo")
		fmt.Fprintln(a.out, "3. ✏️ Renomear módulo")
		fmt.Fprintln(a.out, "4. 🗑️ Remover módulo")
		fmt.Fprintln(a.out, "0. ↩ Voltar")

		choice, err := promptLine(a.reader, "Escolha: ", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.listCourses()
		case "2":
			a.addModuleFlow(ctx)
		case "3":
			a.renameModuleFlow(ctx)
		case "4":
			a.removeModuleFlow(ctx)
		case "0":
			return
		default:
			a.showInvalidOption()
		}
	}
}

func (a *App) addModuleFlow(ctx context.Context) {
	courseID, err := promptLine(a.reader, "ID do curso: ", a.out)
	if err != nil {
		return
	}
	name, err := promptLine(a.reader, "Nome do módulo: ", a.out)
	if err != nil {
		return
	}

	if err := a.courseAdmin.AddModule(ctx, a.sessions.Current(), courseID, name); err != nil {
		a.showError(err)
		return
	}
	successColor.Fprintln(a.out, "✅ Módulo adicionado!")
}

// pickModule lists a course's modules and reads a 1-based position.
func (a *App) pickModule(courseID string) (int, error) {
	course, err := a.courses.Get(courseID)
	if err != nil {
		return 0, err
	}
	if len(course.Modules) == 0 {
		return 0, common.ErrNotFound
	}
	for i, m := range course.Modules {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, m.Name)
	}
	pos, err := promptInt(a.reader, "Número do módulo: ", a.out)
	if err != nil {
		return 0, err
	}
	return pos - 1, nil
}

func (a *App) renameModuleFlow(ctx context.Context) {
	courseID, err := promptLine(a.reader, "ID do curso: ", a.out)
	if err != nil {
		return
	}
	index, err := a.pickModule(courseID)
	if err != nil {
		a.showError(err)
		return
	}
	newName, err := promptLine(a.reader, "Novo nome: ", a.out)
	if err != nil {
		return
	}

	if err := a.courseAdmin.RenameModule(ctx, a.sessions.Current(), courseID, index, newName); err != nil {
		a.showError(err)
		return
	}
	successColor.Fprintln(a.out, "✅ Módulo renomeado!")
}

func (a *App) removeModuleFlow(ctx context.Context) {
	courseID, err := promptLine(a.reader, "ID do curso: ", a.out)
	if err != nil {
		return
	}
	index, err := a.pickModule(courseID)
	if err != nil {
		a.showError(err)
		return
	}

	if err := a.courseAdmin.RemoveModule(ctx, a.sessions.Current(), courseID, index); err != nil {
		a.showError(err)
		return
	}
	successColor.Fprintln(a.out, "✅ Módulo removido!")
}
