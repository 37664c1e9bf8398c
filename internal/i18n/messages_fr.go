package i18n

// messagesFR holds the French strings. French is the application
// default and the fallback for every other language.
var messagesFR = map[string]string{
	// Application
	"app.title":    "UniHelp - Assistant Universitaire",
	"app.subtitle": "Votre assistant pour les informations officielles et la rédaction administrative",
	"app.footer":   "Alimenté par Groq + LLM + RAG Simplifié",

	// Prompts and chrome
	"qa.prompt":      "Posez une question basée sur les documents officiels:",
	"qa.placeholder": "Ex: Quel est le délai pour soumettre la documentation de stage?",
	"chat.welcome":   "Bienvenue! Posez votre première question universitaire...",
	"chat.goodbye":   "Au revoir!",

	// Email generation
	"email.type":          "Type d'email:",
	"email.opt.cert":      "Certificat d'inscription",
	"email.opt.intern":    "Demande de stage",
	"email.opt.absence":   "Justification d'absence",
	"email.opt.complaint": "Plainte/Réclamation",
	"email.generating":    "Génération de l'email...",

	// History
	"history.chat":         "Historique des Questions",
	"history.email":        "Emails Générés",
	"history.none":         "Aucun historique pour le moment.",
	"history.cleared":      "Historique effacé!",
	"history.deleted.conv": "Conversation %s supprimée.",
	"history.deleted.mail": "Email supprimé.",

	// Errors and outcomes
	"error.api":         "Clé API Groq manquante ou invalide.",
	"error.docs":        "Fichier documents.txt introuvable.",
	"error.no_question": "Veuillez entrer une question.",
	"error.invalid":     "Question invalide. Reformulez votre question, s'il vous plaît.",
	"error.backend":     "Le service est momentanément indisponible. Réessayez dans un instant.",
	"rate.limit":        "Limite de requêtes atteinte. Veuillez patienter.",
	"not_found":         "Cette information n'est pas disponible dans les documents officiels.",
	"processing":        "Traitement des documents...",

	// Quick replies (no backend call)
	"quickreply.greeting": "Salut 👋 Je peux t’aider avec les infos universitaires. " +
		"Exemples: `je veux connaître mes notes`, `comment faire l'inscription`, " +
		"`documents pour la bourse` 🙂",
	"quickreply.thanks": "Avec plaisir 😊 Si tu veux, je peux aussi t’aider pour inscription, notes, bourse ou stage.",

	// Export labels kept for the textual email rendering
	"export.subject": "Objet: ",
	"export.body":    "Contenu du message:",
	"export.closing": "Signature:",
	"timestamp":      "Généré le",
}
