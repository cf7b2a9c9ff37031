package main

// FniPayload is the full upstream response from the FNI listing endpoint.
// The payload nests the actual groups under data.result.
type FniPayload struct {
	Data FniData `json:"data"`
}

type FniData struct {
	Result []FaqGroup `json:"result"`
}

// FaqGroup is one clause/document grouping of FNI records.
type FaqGroup struct {
	Name             string      `json:"name"`
	DocumentTypeName string      `json:"documentTypeName"`
	ClientTypeName   string      `json:"clientTypeName"`
	FnIs             []FniRecord `json:"fnIs"`
}

// FniRecord is a single Frequently Negotiated Issue entry. ClauseName,
// DocumentTypeName and SubmittedByUserName may be empty upstream; defaults
// are resolved against the owning group at match time, never written back.
type FniRecord struct {
	Question            string `json:"question"`
	Response            string `json:"response"`
	ClauseName          string `json:"clauseName"`
	DocumentTypeName    string `json:"documentTypeName"`
	SubmittedByUserName string `json:"submittedByUserName"`
}

// MatchResult is the projection of an FniRecord returned to the caller.
// Clause and DocumentType are the lower-cased resolved values.
type MatchResult struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Clause       string `json:"clause"`
	DocumentType string `json:"documentType"`
	SubmittedBy  string `json:"submittedBy"`
}

// IntroMessage is the welcome payload shown on first open or greeting.
type IntroMessage struct {
	Welcome WelcomeBody `json:"welcome"`
}

type WelcomeBody struct {
	Title    string   `json:"title"`
	Intro    string   `json:"intro"`
	Examples []string `json:"examples"`
}

// Request/Response structures
type ChatRequest struct {
	Query string `json:"query" form:"query" query:"query"`
}

// ChatResponse carries either a list of matches or a guidance string in
// Response, depending on the outcome.
type ChatResponse struct {
	Response interface{} `json:"response"`
}
