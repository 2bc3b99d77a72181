package models

// AskRequest is the body of an ask-the-data call. Mode selects one of the
// predefined prompts and takes precedence over Question when set. Batches
// uses the same comma-separated contract as the tweets endpoint and scopes
// which tweets are flattened into the prompt.
type AskRequest struct {
	Question string `json:"question"`
	Mode     string `json:"mode,omitempty"`
	Batches  string `json:"batches,omitempty"`
}

// AskAnswer carries the completion both as raw markdown and rendered HTML.
type AskAnswer struct {
	RequestID  string `json:"requestId"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answerHtml"`
	Cached     bool   `json:"cached"`
}
