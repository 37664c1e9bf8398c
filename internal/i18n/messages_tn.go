package i18n

// messagesTN holds the Tunisian dialect strings (arabizi).
var messagesTN = map[string]string{
	// Application
	"app.title":    "UniHelp - Msa3dek el jami3i",
	"app.subtitle": "Msa3dek lel ma3lomet er-rasmiya w ketbet les emails l-idariya",
	"app.footer":   "Yekhdhem b Groq + LLM + RAG",

	// Prompts and chrome
	"qa.prompt":      "Is2el sou2elek 3al documents er-rasmiya:",
	"qa.placeholder": "Metthelen: chnowa el wa9t bech n9adam les documents mta3 el stage?",
	"chat.welcome":   "Mar7ba! Is2el awel sou2el jami3i...",
	"chat.goodbye":   "Besslema!",

	// Email generation
	"email.type":          "Nou3 el email:",
	"email.opt.cert":      "Certificat inscription",
	"email.opt.intern":    "Demande stage",
	"email.opt.absence":   "Tabrir el ghyab",
	"email.opt.complaint": "Chekwa",
	"email.generating":    "9a3ed njib el email...",

	// History
	"history.chat":         "Historique el As2ila",
	"history.email":        "Les Emails",
	"history.none":         "Mazelet mafemelch historique.",
	"history.cleared":      "El historique tfasa5!",
	"history.deleted.conv": "El conversation %s tfes5et.",
	"history.deleted.mail": "El email tfes5.",

	// Errors and outcomes
	"error.api":         "Clé API Groq mahouch mawjouda wala ghaltet.",
	"error.docs":        "Fichier documents.txt mahouch mawjoud.",
	"error.no_question": "Ekteb sou2elek ya5i.",
	"error.invalid":     "Sou2el mouch s7i7. 3awed ektbou b tari9a o5ra.",
	"error.backend":     "El service ta7t el siyena. 3awed ba3d chwaya.",
	"rate.limit":        "Estanna chwaya, wselt lel limite.",
	"not_found":         "Hedhi el ma3louma mawjoudech fel documents er-rasmiya.",
	"processing":        "9a3ed n3arej fel documents...",

	// Quick replies (no backend call)
	"quickreply.greeting": "Asslema 👋 Ahlan bik! Najem n3awnek fi les infos mta3 l-jam3a. " +
		"Exemples: `nheb na3ref noteti`, `kifech na3mel inscription`, " +
		"`chnowa documents mta3 bourse` 🙂",
	"quickreply.thanks": "3la rassi 😊 Ken theb, najem n3awnek zeda b inscription, notes, bourse, stage...",

	// Export labels kept for the textual email rendering
	"export.subject": "Sujet: ",
	"export.body":    "El contenu:",
	"export.closing": "Taw9i3:",
	"timestamp":      "Met3amel nhar",
}
