package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"

	"cishsite/internal/domain"
)

const readerWrap = 100

// RenderArticle renders an article's markdown for the terminal
func RenderArticle(a domain.Article, width int) (string, error) {
	if width <= 0 || width > readerWrap {
		width = readerWrap
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(a.Markdown())
	if err != nil {
		return "", fmt.Errorf("failed to render article %d: %w", a.ID, err)
	}
	return out, nil
}

// ArticleReader shows long content in the ov pager
type ArticleReader struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewArticleReader creates a new reader
func NewArticleReader(program *tea.Program) *ArticleReader {
	return &ArticleReader{program: program}
}

// Show hands the terminal to ov until the user quits it
func (r *ArticleReader) Show(content string) error {
	if r.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := r.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = r.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write on exit, it would mess with our screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
