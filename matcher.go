package main

import (
	"fmt"
	"strings"
)

// MatchPolicy selects how strictly query terms must match a record.
// The policies trade recall for precision: Substring is the loosest,
// AllTokens the strictest.
type MatchPolicy int

const (
	// PolicySubstring matches when the whole cleaned query string appears
	// in the record surface.
	PolicySubstring MatchPolicy = iota
	// PolicyAnyToken matches when at least one query token appears in the
	// record surface.
	PolicyAnyToken
	// PolicyAllTokens matches only when every query token appears in the
	// record surface.
	PolicyAllTokens
)

func (p MatchPolicy) String() string {
	switch p {
	case PolicySubstring:
		return "substring"
	case PolicyAnyToken:
		return "any"
	case PolicyAllTokens:
		return "all"
	default:
		return "unknown"
	}
}

// ParseMatchPolicy maps a config value to a policy. Defaults to AllTokens
// for an empty value.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "alltokens", "all_tokens":
		return PolicyAllTokens, nil
	case "any", "anytoken", "any_token":
		return PolicyAnyToken, nil
	case "substring":
		return PolicySubstring, nil
	default:
		return PolicyAllTokens, fmt.Errorf("unknown match policy: %q", s)
	}
}

// HasTerms reports whether the query carries anything to search for under
// the given policy.
func (q NormalizedQuery) HasTerms(policy MatchPolicy) bool {
	if policy == PolicySubstring {
		return strings.TrimSpace(q.Text) != ""
	}
	return len(q.Tokens) > 0
}

// Match scans every FNI record across every group, in payload order, and
// returns the records whose searchable surface satisfies the policy.
// Output preserves dataset order; no dedup, no ranking. An empty query
// returns nil without touching the payload, and so does a query that
// matches nothing: both are outcomes for the caller to phrase, not errors.
func Match(q NormalizedQuery, payload *FniPayload, policy MatchPolicy) []MatchResult {
	if payload == nil || !q.HasTerms(policy) {
		return nil
	}

	var results []MatchResult
	for _, group := range payload.Data.Result {
		groupClause := strings.ToLower(group.Name)
		groupDocType := strings.ToLower(group.DocumentTypeName)

		for _, record := range group.FnIs {
			question := strings.ToLower(record.Question)

			// Record fields fall back to the owning group's values.
			clause := groupClause
			if record.ClauseName != "" {
				clause = strings.ToLower(record.ClauseName)
			}
			docType := groupDocType
			if record.DocumentTypeName != "" {
				docType = strings.ToLower(record.DocumentTypeName)
			}
			submittedBy := record.SubmittedByUserName
			if submittedBy == "" {
				submittedBy = "Unknown User"
			}

			if !surfaceMatches(q, policy, question, clause, docType) {
				continue
			}

			results = append(results, MatchResult{
				Question:     record.Question,
				Answer:       record.Response,
				Clause:       clause,
				DocumentType: docType,
				SubmittedBy:  submittedBy,
			})
		}
	}

	return results
}

// surfaceMatches applies the policy to one record's searchable surface
// (question, resolved clause, resolved document type).
func surfaceMatches(q NormalizedQuery, policy MatchPolicy, question, clause, docType string) bool {
	contains := func(term string) bool {
		return strings.Contains(question, term) ||
			strings.Contains(clause, term) ||
			strings.Contains(docType, term)
	}

	switch policy {
	case PolicySubstring:
		return contains(strings.TrimSpace(q.Text))
	case PolicyAnyToken:
		for _, token := range q.Tokens {
			if contains(token) {
				return true
			}
		}
		return false
	case PolicyAllTokens:
		for _, token := range q.Tokens {
			if !contains(token) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
