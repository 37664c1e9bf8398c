package i18n

// messagesEN holds the English strings.
var messagesEN = map[string]string{
	// Application
	"app.title":    "UniHelp - University Assistant",
	"app.subtitle": "Your assistant for official information and administrative writing",
	"app.footer":   "Powered by Groq + LLM + Simplified RAG",

	// Prompts and chrome
	"qa.prompt":      "Ask a question based on official documents:",
	"qa.placeholder": "Ex: What is the deadline to submit internship documentation?",
	"chat.welcome":   "Welcome! Ask your first university question...",
	"chat.goodbye":   "Goodbye!",

	// Email generation
	"email.type":          "Email type:",
	"email.opt.cert":      "Enrollment certificate",
	"email.opt.intern":    "Internship request",
	"email.opt.absence":   "Absence justification",
	"email.opt.complaint": "Complaint",
	"email.generating":    "Generating the email...",

	// History
	"history.chat":         "Question History",
	"history.email":        "Generated Emails",
	"history.none":         "No history yet.",
	"history.cleared":      "History cleared!",
	"history.deleted.conv": "Conversation %s deleted.",
	"history.deleted.mail": "Email deleted.",

	// Errors and outcomes
	"error.api":         "Missing or invalid Groq API key.",
	"error.docs":        "documents.txt file not found.",
	"error.no_question": "Please enter a question.",
	"error.invalid":     "Invalid question. Please rephrase and try again.",
	"error.backend":     "The service is temporarily unavailable. Please try again shortly.",
	"rate.limit":        "Rate limit reached. Please wait.",
	"not_found":         "This information is not available in the official documents.",
	"processing":        "Processing documents...",

	// Quick replies (no backend call)
	"quickreply.greeting": "Hi 👋 Welcome! I can help with university info. " +
		"Try: `I want to check my grades`, `how to enroll`, " +
		"`scholarship documents` 🙂",
	"quickreply.thanks": "You're welcome 😊 If you want, I can also help with enrollment, grades, scholarships, or internships.",

	// Export labels kept for the textual email rendering
	"export.subject": "Subject: ",
	"export.body":    "Message content:",
	"export.closing": "Signature:",
	"timestamp":      "Generated on",
}
