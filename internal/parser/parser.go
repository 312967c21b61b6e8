package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"book-analysis/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Parser reads every line of a text source.
type Parser interface {
	ReadLines(filePath string) ([]string, error)
}

// FileParser picks a reader by file extension.
type FileParser struct{}

const maxLineSize = 1024 * 1024

var errUnsupported = errors.New("unsupported file format")

// SupportedFormats lists the extensions ReadLines understands. Files with no
// extension are read as plain text.
func SupportedFormats() []string {
	return []string{".txt", ".md", ".markdown", ".pdf", ".docx", ".xlsx", ".xlsm"}
}

func (FileParser) ReadLines(filePath string) ([]string, error) {
	return ReadLines(filePath)
}

// ReadLines returns all lines of the source at filePath in reading order.
// Spreadsheet rows are read as their cells joined by a single space.
func ReadLines(filePath string) ([]string, error) {
	return read(filePath, joinCells)
}

// ReadFirstColumn is ReadLines except that a spreadsheet row yields only its
// first cell.
func ReadFirstColumn(filePath string) ([]string, error) {
	return read(filePath, firstCell)
}

func read(filePath string, row func([]string) string) ([]string, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, fmt.Errorf("%w: file path can't be empty", models.ErrInvalidArgument)
	}

	var (
		lines []string
		err   error
	)
	ext := strings.ToLower(filepath.Ext(filePath))
	switch ext {
	case "", ".txt":
		lines, err = parseText(filePath)
	case ".md", ".markdown":
		lines, err = parseMarkdown(filePath)
	case ".pdf":
		lines, err = parsePDF(filePath)
	case ".docx":
		lines, err = parseDOCX(filePath)
	case ".xlsx":
		lines, err = parseXLSX(filePath, row)
	case ".xlsm":
		lines, err = parseXLSM(filePath, row)
	default:
		err = fmt.Errorf("%w %q, want one of %v", errUnsupported, ext, SupportedFormats())
	}
	if err != nil {
		log.Error().Err(err).Msgf("Failed to read file: %s", filePath)
		return nil, fmt.Errorf("%w: %s: %w", models.ErrSourceUnavailable, filePath, err)
	}

	log.Debug().Str("file", filePath).Int("lines", len(lines)).Msg("Read source")
	return lines, nil
}

func parseText(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// parseMarkdown keeps the raw lines of headings and text blocks. Code and
// html blocks are dropped.
func parseMarkdown(filePath string) ([]string, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(src))

	var lines []string
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading, ast.KindParagraph, ast.KindTextBlock:
			segments := n.Lines()
			for i := 0; i < segments.Len(); i++ {
				seg := segments.At(i)
				lines = append(lines, string(bytes.TrimRight(seg.Value(src), "\r\n")))
			}
			return ast.WalkSkipChildren, nil
		case ast.KindFencedCodeBlock, ast.KindCodeBlock, ast.KindHTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}
