// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rmoreira/researchflow/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSectionsToShow is the default number of sections to display
	maxSectionsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGoal outputs the current research goal.
func (p *Printer) PrintGoal(goal types.ResearchGoal) {
	var sb strings.Builder
	topic := goal.Topic
	if topic == "" {
		topic = "(not set)"
	}
	sb.WriteString(fmt.Sprintf("Topic:       %s\n", topic))
	if goal.Description != "" {
		sb.WriteString(fmt.Sprintf("Description: %s\n", goal.Description))
	}
	p.printBox("RESEARCH GOAL", sb.String())
}

// PrintArticle outputs a human-readable summary of one processed article.
func (p *Printer) PrintArticle(article *types.ProcessedArticle) {
	if article == nil {
		return
	}

	var sb strings.Builder

	title := article.Title
	if title == "" {
		title = "(untitled)"
	}
	sb.WriteString(fmt.Sprintf("Title:   %s\n", title))
	sb.WriteString(fmt.Sprintf("Score:   %.0f/100\n", article.ImportanceScore))
	sb.WriteString(fmt.Sprintf("Source:  %s\n", article.SourceType))
	sb.WriteString(fmt.Sprintf("Goal:    %s\n", article.ResearchGoal))
	sb.WriteString(fmt.Sprintf("ID:      %s\n", article.ID))
	sb.WriteString("\n")

	if article.ImportanceReasoning != "" {
		sb.WriteString("Why it matters:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", article.ImportanceReasoning))
		sb.WriteString("\n")
	}

	if len(article.Sections) > 0 {
		sb.WriteString("Sections:\n")
		count := min(len(article.Sections), maxSectionsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, article.Sections[i].Title))
		}
		if len(article.Sections) > maxSectionsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(article.Sections)-maxSectionsToShow))
		}
	}

	p.printBox("PROCESSED ARTICLE", sb.String())
}

// PrintLibrary outputs a compact listing of the article library, newest first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintLibrary(articles []types.ProcessedArticle) {
	if len(articles) == 0 {
		fmt.Fprintln(p.out, "Library is empty. Set a research goal and process an article to get started.")
		return
	}

	fmt.Fprintf(p.out, "%d article(s), newest first:\n\n", len(articles))
	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = "(untitled)"
		}
		when := time.UnixMilli(a.ProcessedAt).Format("2006-01-02 15:04")
		fmt.Fprintf(p.out, "  %-36s  %3.0f/100  %-6s  %s  %s\n", a.ID, a.ImportanceScore, a.SourceType, when, title)
	}
}
