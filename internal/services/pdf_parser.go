package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(data []byte) (*PDFContent, error)
}

type PDFContent struct {
	Text       string
	PageCount  int
	Characters int
}

type pdfParserService struct {
	minChars int
}

// NewPDFParserService returns a parser that rejects documents yielding fewer than
// minChars characters of text, which is what scanned résumés look like.
func NewPDFParserService(minChars int) PDFParserService {
	return &pdfParserService{minChars: minChars}
}

func (p *pdfParserService) ExtractText(data []byte) (content *PDFContent, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	totalPage := r.NumPage()
	if totalPage == 0 {
		return nil, ErrEmptyPDF
	}

	var pages []string
	totalChars := 0

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("⚠️  Failed to read PDF page %d: %v", pageIndex, err)
			continue
		}

		text = strings.ToValidUTF8(text, "�")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		pages = append(pages, text)
		totalChars += utf8.RuneCountInString(trimmed)
	}

	if totalChars < p.minChars {
		return nil, fmt.Errorf("%w: only %d characters found", ErrScannedPDF, totalChars)
	}

	return &PDFContent{
		Text:       strings.Join(pages, "\n\n"),
		PageCount:  totalPage,
		Characters: totalChars,
	}, nil
}
