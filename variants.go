package agentverse

import (
	"github.com/agentverse/agentverse/src/catalog"
	"github.com/agentverse/agentverse/src/models"
	"github.com/agentverse/agentverse/src/notify"
	"github.com/agentverse/agentverse/src/prompt"
	"github.com/agentverse/agentverse/src/storage"
)

const (
	agentRunFallback = "Sorry, there was an error processing your request. Please try again later."
	analysisFallback = agentRunFallback + " Make sure you have configured your AI settings properly."

	recommendFallback = "I'm sorry, I'm having trouble processing your request right now. " +
		"Please try asking about specific types of agents like 'resume analysis', 'code review', or 'content creation'."
	recommendSeed = "Hi! I'm your AI assistant. I can help you find the perfect agent for your needs. " +
		"What are you looking to accomplish?"

	agentUploadPrefix = "agent-uploads/"
	chatUploadPrefix  = "chat-uploads/"
)

// NewAgentRunSession runs a single catalog agent against user input,
// with optional image attachments.
func NewAgentRunSession(profile catalog.Profile, gen models.Generator, up *storage.Uploader, n notify.Notifier) (*Session, error) {
	return NewSession(Options{
		Build: func(input string, urls []string) models.Request {
			return prompt.RunAgent(profile, input, urls)
		},
		Generator:    gen,
		Uploader:     up,
		UploadPrefix: agentUploadPrefix,
		Fallback:     agentRunFallback,
		SuccessToast: "Agent executed successfully!",
		ErrorToast:   "Failed to run agent. Please try again.",
		Notifier:     n,
	})
}

// NewDocumentAnalysisSession reviews uploaded documents and images as
// an HR assistant.
func NewDocumentAnalysisSession(gen models.Generator, up *storage.Uploader, n notify.Notifier) (*Session, error) {
	return NewSession(Options{
		Build: func(input string, urls []string) models.Request {
			return prompt.AnalyzeDocuments(input, urls)
		},
		Generator:    gen,
		Uploader:     up,
		UploadPrefix: chatUploadPrefix,
		Fallback:     analysisFallback,
		SuccessToast: "Analysis completed!",
		ErrorToast:   "Failed to process request. Please try again.",
		Notifier:     n,
	})
}

// NewRecommendationSession chats with the user to recommend agents from
// the given catalog profiles. Conversational; text-only.
func NewRecommendationSession(profiles []catalog.Profile, gen models.Generator, n notify.Notifier) (*Session, error) {
	return NewSession(Options{
		Build: func(input string, _ []string) models.Request {
			return prompt.Recommend(profiles, input)
		},
		Generator:      gen,
		Fallback:       recommendFallback,
		ErrorToast:     "Failed to get AI recommendation. Please try again.",
		Notifier:       n,
		Conversational: true,
		Seed:           recommendSeed,
	})
}
