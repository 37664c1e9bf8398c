package chat

import (
	"fmt"
	"strings"

	"github.com/YanguiHadil/unihelp/internal/i18n"
)

// Supported administrative email types.
const (
	EmailCertificate = "cert"
	EmailInternship  = "intern"
	EmailAbsence     = "absence"
	EmailComplaint   = "complaint"
)

// EmailTypes returns the supported email type codes.
func EmailTypes() []string {
	return []string{EmailCertificate, EmailInternship, EmailAbsence, EmailComplaint}
}

// EmailTypeLabel returns the localized display label for an email type.
func EmailTypeLabel(lang, emailType string) string {
	return i18n.T(lang, "email.opt."+emailType)
}

// IsEmailType reports whether code is a known email type.
func IsEmailType(code string) bool {
	switch code {
	case EmailCertificate, EmailInternship, EmailAbsence, EmailComplaint:
		return true
	}
	return false
}

// qaPersona is the system prompt for document-grounded Q&A. The
// not-found sentinel is embedded verbatim so the model has an exact
// phrase to fall back on.
func qaPersona(lang string) string {
	notFound := i18n.T(lang, "not_found")
	switch lang {
	case i18n.LangEN:
		return "You are UniHelp, a university assistant. Answer ONLY from the " +
			"official context provided. Be concise and factual. If the context " +
			"does not contain the answer, reply exactly: " + notFound
	case i18n.LangTN:
		return "Enti UniHelp, assistant universitaire. Jaweb KAN mel contexte " +
			"officiel elli maatik. Jaweb bel tounsi, 9sir w wadhe7. Ken el " +
			"maaloma mch mawjouda fel contexte, jaweb exactement: " + notFound
	default:
		return "Tu es UniHelp, un assistant universitaire. Réponds UNIQUEMENT à " +
			"partir du contexte officiel fourni. Sois concis et factuel. Si le " +
			"contexte ne contient pas la réponse, réponds exactement: " + notFound
	}
}

// qaUserPrompt embeds the selected document context with the question.
func qaUserPrompt(contextText, question string) string {
	return fmt.Sprintf("Contexte universitaire:\n%s\n\nQuestion: %s", contextText, question)
}

// emailPersona is the system prompt for administrative email drafting.
func emailPersona(lang string) string {
	switch lang {
	case i18n.LangEN:
		return "You are UniHelp, a university assistant drafting formal " +
			"administrative emails for students. Write in polished formal English."
	case i18n.LangTN:
		return "Enti UniHelp, assistant universitaire. Ekteb emails " +
			"administratifs formels lel toleba. El email formel, bel français."
	default:
		return "Tu es UniHelp, un assistant universitaire qui rédige des emails " +
			"administratifs formels pour les étudiants. Écris en français soutenu."
	}
}

// emailUserPrompt asks for the strict three-part layout the renderer
// expects: subject, body, closing.
func emailUserPrompt(lang, emailType, details, contextText string) string {
	label := EmailTypeLabel(lang, emailType)

	var b strings.Builder
	if strings.TrimSpace(contextText) != "" {
		fmt.Fprintf(&b, "Contexte universitaire:\n%s\n\n", contextText)
	}
	fmt.Fprintf(&b, "Rédige un email administratif de type: %s.\n", label)
	if strings.TrimSpace(details) != "" {
		fmt.Fprintf(&b, "Détails fournis par l'étudiant: %s\n", details)
	}
	b.WriteString("\nStructure STRICTE de la réponse:\n")
	b.WriteString("Objet: <objet de l'email>\n")
	b.WriteString("<corps de l'email>\n")
	b.WriteString("<formule de politesse et signature>\n")
	b.WriteString("Ne renvoie rien d'autre que l'email.")
	return b.String()
}
