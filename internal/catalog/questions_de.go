package catalog

import "security-funnel-service/internal/domain"

var questionsDE = map[domain.QuestionID]domain.Question{
	// Level 1
	L1A: {
		ID:   L1A,
		Text: "1. Setzt du heute bereits eine VPN- oder Remote-Access-Lösung für Mitarbeitende ein?",
		Options: []domain.Option{
			{ID: "L1-A-1", Text: "Ja, für einen Großteil unserer Remote-Nutzer", Score: 2},
			{ID: "L1-A-2", Text: "Ja, aber nur für wenige ausgewählte Mitarbeitende", Score: 1},
			{ID: "L1-A-3", Text: "Nein, wir haben aktuell keine VPN/Remote-Access-Lösung im Einsatz", Score: 0},
			{ID: "L1-A-4", Text: "Ich weiß es nicht", Score: 0},
		},
	},
	L1B: {
		ID:      L1B,
		Text:    "2. Bildest du geschäftskritische Prozesse über eure Webseite oder Online-Plattformen ab?",
		Subtext: "(z. B. Kundenportal, Webshop, Terminbuchung, Service-Portal)",
		Options: []domain.Option{
			{ID: "L1-B-1", Text: "Ja, mehrere geschäftskritische Prozesse laufen online", Score: 2},
			{ID: "L1-B-2", Text: "Teilweise – einige Services laufen online, aber vieles noch klassisch/offline", Score: 1},
			{ID: "L1-B-3", Text: "Nein, unsere Webseite ist eher eine Visitenkarte", Score: 0},
			{ID: "L1-B-4", Text: "Ich bin mir nicht sicher", Score: 0},
		},
	},
	L1C: {
		ID:   L1C,
		Text: "3. Wie gut sind deine Mitarbeitende aktuell in Bezug auf Phishing, Social Engineering und IT-Sicherheit geschult?",
		Options: []domain.Option{
			{ID: "L1-C-1", Text: "Wir führen regelmäßig verpflichtende Awareness-Trainings & Phishing-Simulationen durch", Score: 2},
			{ID: "L1-C-2", Text: "Es gibt gelegentliche Schulungen, aber nicht strukturiert", Score: 1},
			{ID: "L1-C-3", Text: "Schulungen finden so gut wie nicht statt", Score: 0},
			{ID: "L1-C-4", Text: "Ich weiß es nicht", Score: 0},
		},
	},
	// Level 2
	L2A1: {
		ID:   L2A1,
		Text: "1. Welche Lösung setzt du aktuell für VPN oder Remote Access ein?",
		Options: []domain.Option{
			{ID: "L2-A1-1", Text: "Klassisches VPN (z. B. IPsec, OpenVPN, Firewall-VPN)", Score: 1},
			{ID: "L2-A1-2", Text: "Zero Trust / Cloud-basierter Zugang (z. B. Cloudflare Access o. ä.)", Score: 2},
			{ID: "L2-A1-3", Text: "SSL-VPN oder Remote-Desktop-Gateway", Score: 1},
			{ID: "L2-A1-4", Text: "Ich weiß es nicht / Sonstige Lösung", Score: 0},
		},
	},
	L2A2: {
		ID:   L2A2,
		Text: "... und wie viele Nutzer greifen typischerweise darüber zu?",
		Options: []domain.Option{
			{ID: "L2-A2-1", Text: "1–20 Nutzer", Score: 0},
			{ID: "L2-A2-2", Text: "21–100 Nutzer", Score: 1},
			{ID: "L2-A2-3", Text: "Über 100 Nutzer", Score: 2},
		},
	},
	L2B1: {
		ID:   L2B1,
		Text: "2. Wie werden eure geschäftskritischen Online-Dienste bereitgestellt?",
		Options: []domain.Option{
			{ID: "L2-B1-1", Text: "Wir hosten selbst in unserem Rechenzentrum / Serverraum", Score: 0},
			{ID: "L2-B1-2", Text: "Wir hosten bei einem Hoster / in der Cloud (z. B. IaaS, Managed Hosting)", Score: 1},
			{ID: "L2-B1-3", Text: "Hybrid (eigene Systeme + Cloud/Hosting)", Score: 1},
			{ID: "L2-B1-4", Text: "Ich weiß es nicht", Score: 0},
		},
	},
	L2B2: {
		ID:   L2B2,
		Text: "Setzt ihr bereits Schutzmechanismen wie Web Application Firewall (WAF), DDoS-Schutz oder CDN vor euren Online-Diensten ein?",
		Options: []domain.Option{
			{ID: "L2-B2-1", Text: "Ja, WAF und DDoS-Schutz sind aktiv", Score: 2},
			{ID: "L2-B2-2", Text: "Teilweise – z. B. nur CDN oder einfache Firewall-Regeln", Score: 1},
			{ID: "L2-B2-3", Text: "Nein, unsere Web-Dienste sind nicht speziell abgesichert", Score: 0},
			{ID: "L2-B2-4", Text: "Ich weiß es nicht", Score: 0},
		},
	},
	L2C1: {
		ID:      L2C1,
		Text:    "3. Hattet ihr in den letzten 24 Monaten bereits mindestens einen Cyber Security Vorfall?",
		Subtext: "(z. B. Ransomware, erfolgreiche Phishing-Attacke, kompromittierte Konten, Ausfall durch DDoS)",
		Options: []domain.Option{
			{ID: "L2-C1-1", Text: "Ja, mehrere", Score: 0},
			{ID: "L2-C1-2", Text: "Ja, ein einzelner Vorfall", Score: 1},
			{ID: "L2-C1-3", Text: "Nein, keine bekannten Vorfälle", Score: 2},
			{ID: "L2-C1-4", Text: "Wir wissen es nicht genau / könnte sein", Score: 0},
		},
	},
	// Level 3
	L3A1: {
		ID:   L3A1,
		Text: "1. Wie zufrieden bist du mit eurer aktuellen VPN-/Remote-Lösung hinsichtlich Performance, Sicherheit und Usability?",
		Options: []domain.Option{
			{ID: "L3-A1-1", Text: "Sehr zufrieden – läuft stabil, schnell und sicher", Score: 2},
			{ID: "L3-A1-2", Text: "Ganz okay, aber wir stoßen immer wieder an Grenzen", Score: 1},
			{ID: "L3-A1-3", Text: "Unzufrieden – Lösung ist langsam, unsicher oder schwer zu administrieren", Score: 0},
		},
	},
	L3A1Alt: {
		ID:   L3A1Alt,
		Text: "1. Wie greifen Remote-Mitarbeitende heute auf interne Systeme zu?",
		Options: []domain.Option{
			{ID: "L3-A1-ALT-1", Text: "Remote-Zugriff ist aktuell kaum möglich / nur über Workarounds", Score: 0},
			{ID: "L3-A1-ALT-2", Text: "Es gibt individuelle Lösungen (z. B. direkte RDP, Portfreigaben, TeamViewer etc.)", Score: 0},
			{ID: "L3-A1-ALT-3", Text: "Wir haben bewusst alles in sichere SaaS-Lösungen verlagert", Score: 1},
		},
	},
	L3B1: {
		ID:      L3B1,
		Text:    "2. Wie gut glaubst du ist eure Infrastruktur gegen Angriffe und Ausfälle geschützt?",
		Subtext: "(z. B. DDoS, Bots, Exploits, Ausfälle von Webshops/Kundenportalen)",
		Options: []domain.Option{
			{ID: "L3-B1-1", Text: "Sehr gut – wir haben mehrschichtige Schutzmechanismen (z. B. WAF, DDoS-Mitigation, Bot-Management) im Einsatz", Score: 2},
			{ID: "L3-B1-2", Text: "Solide, aber wir verlassen uns vor allem auf Standard-Firewalls & Provider-Schutz", Score: 1},
			{ID: "L3-B1-3", Text: "Eher schlecht, hier ist definitiv eine Lücke", Score: 0},
			{ID: "L3-B1-4", Text: "Ich weiß es nicht", Score: 0},
		},
	},
	L3C1: {
		ID:   L3C1,
		Text: "3. Ist deinem Unternehmen bereits finanzieller Schaden durch Cyberangriffe, Betrugsversuche oder Security-Vorfälle entstanden?",
		Options: []domain.Option{
			{ID: "L3-C1-1", Text: "Ja, im deutlich messbaren Bereich (z. B. Umsatzverlust, Lösegeldzahlungen, Ausfallzeiten)", Score: 0},
			{ID: "L3-C1-2", Text: "Einige kleinere Vorfälle / indirekte Kosten (Mehraufwand, interne Projekte)", Score: 1},
			{ID: "L3-C1-3", Text: "Nein, bislang noch keine bekannten Schäden", Score: 2},
			{ID: "L3-C1-4", Text: "Unklar / nicht bekannt", Score: 0},
		},
	},
}

var areaDetailsDE = map[string]AreaDetail{
	"areaA": {Title: "VPN / Remote Access", Description: "Sicherheit und Performance für deine Remote-Mitarbeitenden."},
	"areaB": {Title: "Web & Online-Prozesse", Description: "Schutz deiner Webseiten und geschäftskritischen Anwendungen."},
	"areaC": {Title: "Mitarbeiter-Sicherheit (Awareness)", Description: "Die menschliche Firewall deines Unternehmens stärken."},
}

var resultTextsDE = map[domain.MaturityLevel]string{
	domain.LevelLow:    "In diesem Bereich besteht ein erhöhtes Risiko. Angriffe oder Ausfälle könnten schnell geschäftskritische Auswirkungen haben.",
	domain.LevelMedium: "Du hast eine Basis geschaffen, profitierst aber deutlich von modernen Zero-Trust- und Cloud-Security-Ansätzen.",
	domain.LevelHigh:   "Hier bist du bereits weit fortgeschritten – wir können dir helfen, diesen Vorsprung effizient zu sichern und weiter auszubauen.",
}
