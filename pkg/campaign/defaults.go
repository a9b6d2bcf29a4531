package campaign

// StoreManagerMarker is the first-name value the French roster uses for
// shared store-manager mailboxes.
const StoreManagerMarker = "Responsable de magasin"

// DefaultTables returns the built-in notice announcing that the d.vinci URL
// change is postponed. Each call returns a fresh copy.
func DefaultTables() *Tables {
	return &Tables{
		Subjects: map[Language]string{
			German:  "Dringend: Aufschub der geplanten Änderung der URL für d.vinci",
			English: "Urgent: Postponement of the Planned URL Change for d.vinci",
			French:  "Urgent: Report de la modification prévue de l'URL pour d.vinci",
			Dutch:   "Dringend: Uitstel van de geplande URL-wijziging voor d.vinci",
		},
		Bodies: map[Language]string{
			German: "{{.Salutation}} {{.FirstName}},\n\n" +
				"ich möchte euch darüber informieren, dass die geplante Änderung der URL von [{{.Vars.old_host}}] zu " +
				"[{{.Vars.new_host}}], die für den {{.Vars.change_date}} angesetzt war, vorerst aufgeschoben wird. " +
				"Es wird keine Änderung geben, bis weitere Informationen bereitgestellt werden.\n\n" +
				"Bitte verwendet weiterhin die aktuelle URL {{.Vars.current_url}} für den Zugriff auf d.vinci. " +
				"Ich entschuldige mich für die Unannehmlichkeiten und danke euch für euer Verständnis und eure Flexibilität.\n\n" +
				"Für Rückfragen stehe ich euch gerne zur Verfügung.\n\n" +
				"Mit freundlichen Grüßen,\n{{.Vars.sender}}",
			English: "{{.Salutation}} {{.FirstName}},\n\n" +
				"I wish to inform you that the planned change of the URL from [{{.Vars.old_host}}] to [{{.Vars.new_host}}], " +
				"which was scheduled for {{.Vars.change_date}}, has been postponed until further notice. " +
				"Please continue to use the current URL {{.Vars.current_url}} to access d.vinci. " +
				"I apologize for any inconvenience and thank you for your understanding and flexibility.\n\n" +
				"Should you have any questions, please do not hesitate to contact me.\n\n" +
				"Kind regards,\n{{.Vars.sender}}",
			French: "{{.Salutation}} {{.FirstName}},\n\n" +
				"je tiens à vous informer que la modification prévue de l'URL de [{{.Vars.old_host}}] à [{{.Vars.new_host}}], " +
				"prévue pour le {{.Vars.change_date}}, est reportée jusqu'à nouvel ordre. " +
				"Veuillez donc continuer à utiliser l'URL actuelle {{.Vars.current_url}} pour accéder à d.vinci. " +
				"Je m'excuse pour les désagréments causés et vous remercie de votre compréhension et de votre flexibilité.\n\n" +
				"En cas de questions, n'hésitez pas à me contacter.\n\n" +
				"Cordialement,\n{{.Vars.sender}}",
			Dutch: "{{.Salutation}} {{.FirstName}},\n\n" +
				"Ik wil jullie informeren dat de geplande wijziging van de URL van [{{.Vars.old_host}}] naar [{{.Vars.new_host}}], " +
				"die gepland stond voor {{.Vars.change_date}}, voorlopig is uitgesteld. " +
				"Er worden geen wijzigingen aangebracht tot nadere informatie beschikbaar is.\n\n" +
				"Gelieve de huidige URL {{.Vars.current_url}} te blijven gebruiken om toegang te krijgen tot d.vinci. " +
				"Mijn excuses voor eventuele overlast en dank voor uw begrip en flexibiliteit.\n\n" +
				"Als u vragen heeft, neem dan gerust contact met mij op.\n\n" +
				"Met vriendelijke groet,\n{{.Vars.sender}}",
		},
		GroupBodies: map[Language]string{
			French: "Bonjour à tous,\n\n" +
				"Je tiens à vous informer que la modification prévue de l'URL de [{{.Vars.old_host}}] à [{{.Vars.new_host}}], " +
				"prévue pour le {{.Vars.change_date}}, est reportée jusqu'à nouvel ordre. " +
				"Aucune modification ne sera effectuée tant que de nouvelles informations n'auront pas été communiquées.\n\n" +
				"Veuillez continuer à utiliser l'URL actuelle {{.Vars.current_url}} pour accéder à d.vinci. " +
				"Je m'excuse pour les désagréments causés et vous remercie de votre compréhension et de votre flexibilité.\n\n" +
				"En cas de questions, n'hésitez pas à me contacter.\n\n" +
				"Cordialement,\n{{.Vars.sender}}",
		},
		Salutations: map[Salutation]map[Language]string{
			Mr:      {German: "Lieber", English: "Dear", French: "Cher", Dutch: "Beste"},
			Ms:      {German: "Liebe", English: "Dear", French: "Chère", Dutch: "Beste"},
			Neutral: {German: "Liebe(r)", English: "Dear", French: "Cher(e)", Dutch: "Beste"},
		},
		Fallback: Neutral,
		GroupMarkers: map[Language]string{
			French: StoreManagerMarker,
		},
		Vars: map[string]string{
			"old_host":    "job.takko.com",
			"new_host":    "application.takko.com",
			"current_url": ">>> job.takko.com <<<",
			"change_date": "08.03.2024",
			"sender":      "Hendrik Siemens",
		},
	}
}
