package main

// Placeholder examples used when the dataset has no usable values.
const (
	placeholderClause   = "Clause 1"
	placeholderDocument = "Document 1"
	placeholderClient   = "Client 1"
)

// BuildIntro derives the welcome message from the dataset: the first
// non-empty clause name, document type and client type in payload order
// become the example values in the canned prompts. Pure function of the
// payload; nothing is mutated or fetched.
func BuildIntro(payload *FniPayload) IntroMessage {
	clauseExample := placeholderClause
	docExample := placeholderDocument
	clientExample := placeholderClient

	foundClause, foundDoc, foundClient := false, false, false
	if payload != nil {
		for _, group := range payload.Data.Result {
			if !foundClause && group.Name != "" {
				clauseExample = group.Name
				foundClause = true
			}
			if !foundDoc && group.DocumentTypeName != "" {
				docExample = group.DocumentTypeName
				foundDoc = true
			}
			if !foundClient && group.ClientTypeName != "" {
				clientExample = group.ClientTypeName
				foundClient = true
			}
			if foundClause && foundDoc && foundClient {
				break
			}
		}
	}

	return IntroMessage{
		Welcome: WelcomeBody{
			Title: "Hi, I'm LUAN, Infracredit's AI Bot.",
			Intro: "Ask me things like:",
			Examples: []string{
				"→ Show me negotiated issues about document type \"" + docExample + "\"",
				"→ Tell me about FNI for clause \"" + clauseExample + "\"",
				"→ List issues in client type \"" + clientExample + "\"",
				"→ What are the negotiated issues on \"" + docExample + "\"?",
				"→ Give me FNI for \"" + clauseExample + "\"",
			},
		},
	}
}
