package services

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/resume-vibes/internal/models"
)

var pdfMagic = []byte("%PDF-")

type UploadService interface {
	ReadPDF(file *multipart.FileHeader) ([]byte, error)
	ReadPDFFile(path string) ([]byte, error)
}

type uploadService struct {
	maxFileSize int64
}

// NewUploadService reads uploads into memory; nothing is written to disk.
func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) ReadPDF(file *multipart.FileHeader) ([]byte, error) {
	if err := s.checkHeader(file.Filename, file.Size); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.read(src)
}

// ReadPDFFile applies the upload checks to a local file.
func (s *uploadService) ReadPDFFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkHeader(path, info.Size()); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return s.read(f)
}

func (s *uploadService) checkHeader(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return fmt.Errorf("%w: only PDF files are accepted, got %q", ErrInvalidInput, ext)
	}

	if size > s.maxFileSize {
		return s.tooLarge()
	}
	return nil
}

func (s *uploadService) read(src io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if int64(len(data)) > s.maxFileSize {
		return nil, s.tooLarge()
	}

	if !bytes.HasPrefix(data, pdfMagic) {
		return nil, fmt.Errorf("%w: missing PDF header", ErrInvalidPDF)
	}

	return data, nil
}

func (s *uploadService) tooLarge() error {
	return fmt.Errorf("%w: file too large, max size is %d bytes", ErrInvalidInput, s.maxFileSize)
}

// NewDocumentInfo summarizes an extracted résumé. SizeKB is rounded to two decimals.
func NewDocumentInfo(filename string, size int, content *PDFContent) *models.DocumentInfo {
	return &models.DocumentInfo{
		Filename:   filepath.Base(filename),
		SizeKB:     math.Round(float64(size)/1024*100) / 100,
		Pages:      content.PageCount,
		Characters: content.Characters,
	}
}
