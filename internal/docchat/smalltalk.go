package docchat

import "strings"

// SmallTalk answers greetings and pleasantries without touching the LLM.
// Returns false when the query is not small talk.
func SmallTalk(query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	switch q {
	case "hi", "hello", "hey":
		return "Hello! I'm your document assistant. How can I help you today?", true
	case "bye", "goodbye", "see you", "exit":
		return "Goodbye! Have a great day.", true
	}

	switch {
	case strings.Contains(q, "thank"):
		return "You're welcome! Let me know if you need anything else.", true
	case strings.Contains(q, "who are you"):
		return "I'm a document assistant. Ingest some PDFs and ask me anything about them.", true
	case strings.Contains(q, "how are you"):
		return "Doing well and ready to help.", true
	}

	return "", false
}
