// Package gemini implements article analysis using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docsift"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Analyzer implements docsift.Analyzer at compile time.
var _ docsift.Analyzer = (*Analyzer)(nil)

// Analyzer implements docsift.Analyzer using Google Gemini.
type Analyzer struct {
	client *genai.Client
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze produces a readability and style report for a segmented article.
// Articles with sentinel titles or no body are still analyzable.
func (a *Analyzer) Analyze(ctx context.Context, article *docsift.Article) (string, error) {
	if article == nil {
		return "", docsift.Errorf(docsift.EINVALID, "article required")
	}
	if article.URL == "" {
		return "", docsift.Errorf(docsift.EINVALID, "article URL required")
	}

	prompt := BuildUserPrompt(article)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", docsift.Errorf(docsift.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a documentation quality reviewer. Given a help-center article broken into sections, report on readability, structure, and completeness. Note sections that are missing content, headings without text, and images lacking surrounding explanation. Base your report only on the article provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the article's sections.
func BuildUserPrompt(article *docsift.Article) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<source>%s</source>\n", article.URL)
	fmt.Fprintf(&sb, "<title>%s</title>\n", article.Title)
	for i, section := range article.Sections {
		sb.WriteString("<section>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<heading>%s</heading>\n", section.Heading)
		for _, block := range section.Blocks {
			switch block.Kind {
			case docsift.BlockText:
				fmt.Fprintf(&sb, "<text>%s</text>\n", block.Text)
			case docsift.BlockImage:
				fmt.Fprintf(&sb, "<image>%s</image>\n", block.Src)
			}
		}
		sb.WriteString("</section>\n")
	}
	sb.WriteString("</article>\n\n")
	sb.WriteString("Analyze this article and report on its readability, structure, and completeness.")
	return sb.String()
}
