package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["resume"][0]
}

func TestReadPDFAcceptsPDF(t *testing.T) {
	svc := NewUploadService(1024)
	payload := []byte("%PDF-1.4\nrest of file")

	data, err := svc.ReadPDF(fileHeader(t, "resume.PDF", payload))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestReadPDFRejectsWrongExtension(t *testing.T) {
	svc := NewUploadService(1024)

	_, err := svc.ReadPDF(fileHeader(t, "resume.docx", []byte("%PDF-1.4")))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "only PDF files are accepted")
}

func TestReadPDFRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(16)

	_, err := svc.ReadPDF(fileHeader(t, "resume.pdf", append([]byte("%PDF-1.4\n"), make([]byte, 64)...)))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "file too large")
}

func TestReadPDFRejectsMissingHeader(t *testing.T) {
	svc := NewUploadService(1024)

	_, err := svc.ReadPDF(fileHeader(t, "resume.pdf", []byte("GIF89a")))
	assert.ErrorIs(t, err, ErrInvalidPDF)
}

func TestReadPDFFile(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("%PDF-1.4\nrest of file")

	good := filepath.Join(dir, "resume.pdf")
	require.NoError(t, os.WriteFile(good, payload, 0o600))

	text := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(text, payload, 0o600))

	svc := NewUploadService(1024)

	data, err := svc.ReadPDFFile(good)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	_, err = svc.ReadPDFFile(text)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ReadPDFFile(filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewUploadService(8).ReadPDFFile(good)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "file too large")
}

func TestNewDocumentInfo(t *testing.T) {
	doc := NewDocumentInfo("/tmp/uploads/jane.pdf", 1536, &PDFContent{PageCount: 2, Characters: 420})

	assert.Equal(t, "jane.pdf", doc.Filename)
	assert.Equal(t, 1.5, doc.SizeKB)
	assert.Equal(t, 2, doc.Pages)
	assert.Equal(t, 420, doc.Characters)
}
