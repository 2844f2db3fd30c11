package render

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoelho/eduterm/internal/config"
)

func sampleCert() Certificate {
	return Certificate{
		StudentName: "alice123",
		CourseName:  "Introdução à Programação",
		Duration:    "40h",
		Code:        "CERT-0123456789AB",
		IssuedAt:    time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(t.TempDir(), "docx")
	assert.Error(t, err)
}

func TestNew_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certificados")
	_, err := New(dir, config.FormatText)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTextRenderer_ContentAndNaming(t *testing.T) {
	dir := t.TempDir()
	r, err := New(dir, config.FormatText)
	require.NoError(t, err)

	path, err := r.Render(sampleCert())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CERT-0123456789AB.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "CERTIFICADO")
	assert.Contains(t, content, "alice123")
	assert.Contains(t, content, "Introdução à Programação")
	assert.Contains(t, content, "carga horária de 40h")
	assert.Contains(t, content, "Data de emissão: 14/03/2025")
	assert.Contains(t, content, "Código de validação: CERT-0123456789AB")
	assert.Contains(t, content, "validado em nossa plataforma")
}

func TestPDFRenderer_WritesFile(t *testing.T) {
	dir := t.TempDir()
	r, err := New(dir, config.FormatPDF)
	require.NoError(t, err)

	path, err := r.Render(sampleCert())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CERT-0123456789AB.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderers_FailOnUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.Mkdir(dir, 0o500))

	r := &TextRenderer{dir: dir}
	_, err := r.Render(sampleCert())
	assert.Error(t, err)
}
