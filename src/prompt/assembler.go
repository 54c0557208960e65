// Package prompt assembles invocation requests for the three call
// sites: single-agent execution, document analysis, and catalog
// recommendation. Assembly is a pure function of its inputs plus the
// per-site configuration constants.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentverse/agentverse/src/catalog"
	"github.com/agentverse/agentverse/src/models"
)

const (
	// DefaultModel is the one text/vision-capable model used by every call site.
	DefaultModel = "gpt-4o-mini"

	// AnalysisMaxTokens bounds agent-run and document-analysis output.
	AnalysisMaxTokens = 1500
	// RecommendMaxTokens bounds recommendation-chat output.
	RecommendMaxTokens = 500
)

const analysisSystemPrompt = "You are an expert HR assistant that analyzes resumes and job descriptions. Provide detailed analysis including skill matching, experience relevance, and hiring recommendations. If images are provided, analyze any text content visible in the images such as resumes, job postings, or documents."

const recommendSystemTemplate = `You are an AI assistant that helps users find the perfect AI agent for their needs. You have access to the following agents in the marketplace:

%s

Your job is to:
1. Understand what the user needs
2. Recommend the most suitable agent(s) from the list above
3. Explain why you recommend them
4. Provide a direct link using this format: [View AgentName →](/agent/ID)
5. Be helpful, friendly, and concise

Always recommend actual agents from the list above, not made-up ones.`

// RunAgent assembles the request for executing one cataloged agent
// against free-text input and zero or more uploaded image URLs.
func RunAgent(profile catalog.Profile, input string, imageURLs []string) models.Request {
	system := fmt.Sprintf("You are %s, %s. Your goal is to %s.",
		profile.Name, profile.Description, firstClause(profile.LongDescription))
	return assemble(system, input, imageURLs, AnalysisMaxTokens)
}

// AnalyzeDocuments assembles the document/resume analysis request.
func AnalyzeDocuments(input string, imageURLs []string) models.Request {
	return assemble(analysisSystemPrompt, input, imageURLs, AnalysisMaxTokens)
}

// Recommend assembles the agent-recommendation request. The variant is
// text-only: the upload surface does not exist at this call site.
func Recommend(profiles []catalog.Profile, input string) models.Request {
	system := fmt.Sprintf(recommendSystemTemplate, renderCatalog(profiles))
	return assemble(system, input, nil, RecommendMaxTokens)
}

// assemble builds the ordered message sequence: system first, then the
// user message — plain text when no images, otherwise one text part
// followed by one image part per URL in upload order.
func assemble(system, input string, imageURLs []string, maxTokens int) models.Request {
	messages := []models.Message{
		{Role: models.RoleSystem, Text: system},
	}

	user := models.Message{Role: models.RoleUser}
	if len(imageURLs) == 0 {
		user.Text = input
	} else {
		user.Parts = append(user.Parts, models.Part{Text: input})
		for _, url := range imageURLs {
			user.Parts = append(user.Parts, models.Part{ImageURL: url})
		}
	}
	messages = append(messages, user)

	return models.Request{
		Messages:        messages,
		Model:           DefaultModel,
		MaxOutputTokens: maxTokens,
	}
}

// firstClause returns the first sentence-clause of a description,
// lower-cased, for the synthesized agent goal.
func firstClause(s string) string {
	clause, _, _ := strings.Cut(s, ".")
	return strings.ToLower(clause)
}

// renderCatalog formats every catalog entry the way the recommendation
// instruction expects: "- Name: description (Tags: a, b) - price CUR".
func renderCatalog(profiles []catalog.Profile) string {
	lines := make([]string, 0, len(profiles))
	for _, p := range profiles {
		lines = append(lines, fmt.Sprintf("- %s: %s (Tags: %s) - %s %s",
			p.Name, p.Description, strings.Join(p.Tags, ", "), formatPrice(p.Price), p.Currency))
	}
	return strings.Join(lines, "\n")
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
