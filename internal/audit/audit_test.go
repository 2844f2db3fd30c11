package audit

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	l := New(filepath.Join(t.TempDir(), "registro_logs.log"))
	l.now = func() time.Time {
		return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	}
	return l
}

func TestLog_Record_BlockFormat(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, l.Record("admin", "Login realizado", "Usuário: admin"))

	content, err := l.Dump()
	require.NoError(t, err)

	want := "[2025-03-14 09:26:53]\n" +
		"Usuário: admin\n" +
		"Ação: Login realizado\n" +
		"Detalhes: Usuário: admin\n" +
		separator + "\n"
	assert.Equal(t, want, content)
}

func TestLog_Record_EmptyActorBecomesSystem(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, l.Record("", "Inicialização", ""))

	content, err := l.Dump()
	require.NoError(t, err)
	assert.Contains(t, content, "Usuário: "+SystemActor)
}

func TestLog_Record_Appends(t *testing.T) {
	l := newTestLog(t)
	require.NoError(t, l.Record("admin", "Login realizado", ""))
	require.NoError(t, l.Record("admin", "Logout", ""))

	content, err := l.Dump()
	require.NoError(t, err)
	assert.Less(t, strings.Index(content, "Login realizado"), strings.Index(content, "Logout"))

	n, err := l.EntryCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLog_Dump_MissingFileIsEmpty(t *testing.T) {
	l := newTestLog(t)
	content, err := l.Dump()
	require.NoError(t, err)
	assert.Empty(t, content)
}
