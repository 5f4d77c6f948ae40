package catalog

import "security-funnel-service/internal/domain"

// English catalog. Ids and scores must stay identical to the German
// tables; only display text differs.
var questionsEN = map[domain.QuestionID]domain.Question{
	// Level 1
	L1A: {
		ID:   L1A,
		Text: "1. Do you already use a VPN or remote-access solution for your employees?",
		Options: []domain.Option{
			{ID: "L1-A-1", Text: "Yes, for most of our remote users", Score: 2},
			{ID: "L1-A-2", Text: "Yes, but only for a few selected employees", Score: 1},
			{ID: "L1-A-3", Text: "No, we currently have no VPN/remote-access solution in place", Score: 0},
			{ID: "L1-A-4", Text: "I don't know", Score: 0},
		},
	},
	L1B: {
		ID:      L1B,
		Text:    "2. Do business-critical processes run through your website or online platforms?",
		Subtext: "(e.g. customer portal, web shop, appointment booking, service portal)",
		Options: []domain.Option{
			{ID: "L1-B-1", Text: "Yes, several business-critical processes run online", Score: 2},
			{ID: "L1-B-2", Text: "Partially – some services run online, but a lot is still handled offline", Score: 1},
			{ID: "L1-B-3", Text: "No, our website is more of a business card", Score: 0},
			{ID: "L1-B-4", Text: "I'm not sure", Score: 0},
		},
	},
	L1C: {
		ID:   L1C,
		Text: "3. How well are your employees currently trained on phishing, social engineering and IT security?",
		Options: []domain.Option{
			{ID: "L1-C-1", Text: "We run regular mandatory awareness trainings & phishing simulations", Score: 2},
			{ID: "L1-C-2", Text: "There are occasional trainings, but nothing structured", Score: 1},
			{ID: "L1-C-3", Text: "Trainings hardly ever take place", Score: 0},
			{ID: "L1-C-4", Text: "I don't know", Score: 0},
		},
	},
	// Level 2
	L2A1: {
		ID:   L2A1,
		Text: "1. Which solution do you currently use for VPN or remote access?",
		Options: []domain.Option{
			{ID: "L2-A1-1", Text: "Classic VPN (e.g. IPsec, OpenVPN, firewall VPN)", Score: 1},
			{ID: "L2-A1-2", Text: "Zero trust / cloud-based access (e.g. Cloudflare Access or similar)", Score: 2},
			{ID: "L2-A1-3", Text: "SSL VPN or remote desktop gateway", Score: 1},
			{ID: "L2-A1-4", Text: "I don't know / other solution", Score: 0},
		},
	},
	L2A2: {
		ID:   L2A2,
		Text: "... and how many users typically connect through it?",
		Options: []domain.Option{
			{ID: "L2-A2-1", Text: "1–20 users", Score: 0},
			{ID: "L2-A2-2", Text: "21–100 users", Score: 1},
			{ID: "L2-A2-3", Text: "More than 100 users", Score: 2},
		},
	},
	L2B1: {
		ID:   L2B1,
		Text: "2. How are your business-critical online services hosted?",
		Options: []domain.Option{
			{ID: "L2-B1-1", Text: "We host ourselves in our own data center / server room", Score: 0},
			{ID: "L2-B1-2", Text: "We host with a provider / in the cloud (e.g. IaaS, managed hosting)", Score: 1},
			{ID: "L2-B1-3", Text: "Hybrid (own systems + cloud/hosting)", Score: 1},
			{ID: "L2-B1-4", Text: "I don't know", Score: 0},
		},
	},
	L2B2: {
		ID:   L2B2,
		Text: "Do you already run protection such as a Web Application Firewall (WAF), DDoS protection or a CDN in front of your online services?",
		Options: []domain.Option{
			{ID: "L2-B2-1", Text: "Yes, WAF and DDoS protection are active", Score: 2},
			{ID: "L2-B2-2", Text: "Partially – e.g. only a CDN or simple firewall rules", Score: 1},
			{ID: "L2-B2-3", Text: "No, our web services are not specifically protected", Score: 0},
			{ID: "L2-B2-4", Text: "I don't know", Score: 0},
		},
	},
	L2C1: {
		ID:      L2C1,
		Text:    "3. Have you had at least one cyber security incident in the last 24 months?",
		Subtext: "(e.g. ransomware, successful phishing attack, compromised accounts, DDoS outage)",
		Options: []domain.Option{
			{ID: "L2-C1-1", Text: "Yes, several", Score: 0},
			{ID: "L2-C1-2", Text: "Yes, a single incident", Score: 1},
			{ID: "L2-C1-3", Text: "No, no known incidents", Score: 2},
			{ID: "L2-C1-4", Text: "We don't know for sure / possibly", Score: 0},
		},
	},
	// Level 3
	L3A1: {
		ID:   L3A1,
		Text: "1. How satisfied are you with your current VPN/remote solution regarding performance, security and usability?",
		Options: []domain.Option{
			{ID: "L3-A1-1", Text: "Very satisfied – runs stable, fast and secure", Score: 2},
			{ID: "L3-A1-2", Text: "It's okay, but we keep hitting limits", Score: 1},
			{ID: "L3-A1-3", Text: "Unsatisfied – the solution is slow, insecure or hard to administer", Score: 0},
		},
	},
	L3A1Alt: {
		ID:   L3A1Alt,
		Text: "1. How do remote employees access internal systems today?",
		Options: []domain.Option{
			{ID: "L3-A1-ALT-1", Text: "Remote access is barely possible today / only via workarounds", Score: 0},
			{ID: "L3-A1-ALT-2", Text: "There are individual solutions (e.g. direct RDP, port forwarding, TeamViewer etc.)", Score: 0},
			{ID: "L3-A1-ALT-3", Text: "We deliberately moved everything into secure SaaS solutions", Score: 1},
		},
	},
	L3B1: {
		ID:      L3B1,
		Text:    "2. How well do you think your infrastructure is protected against attacks and outages?",
		Subtext: "(e.g. DDoS, bots, exploits, outages of web shops/customer portals)",
		Options: []domain.Option{
			{ID: "L3-B1-1", Text: "Very well – we run layered protection (e.g. WAF, DDoS mitigation, bot management)", Score: 2},
			{ID: "L3-B1-2", Text: "Solid, but we mostly rely on standard firewalls & provider protection", Score: 1},
			{ID: "L3-B1-3", Text: "Rather poorly, this is definitely a gap", Score: 0},
			{ID: "L3-B1-4", Text: "I don't know", Score: 0},
		},
	},
	L3C1: {
		ID:   L3C1,
		Text: "3. Has your company already suffered financial damage from cyber attacks, fraud attempts or security incidents?",
		Options: []domain.Option{
			{ID: "L3-C1-1", Text: "Yes, clearly measurable (e.g. lost revenue, ransom payments, downtime)", Score: 0},
			{ID: "L3-C1-2", Text: "A few smaller incidents / indirect costs (extra effort, internal projects)", Score: 1},
			{ID: "L3-C1-3", Text: "No, no known damage so far", Score: 2},
			{ID: "L3-C1-4", Text: "Unclear / not known", Score: 0},
		},
	},
}

var areaDetailsEN = map[string]AreaDetail{
	"areaA": {Title: "VPN / Remote Access", Description: "Security and performance for your remote workforce."},
	"areaB": {Title: "Web & Online Processes", Description: "Protection of your websites and business-critical applications."},
	"areaC": {Title: "Employee Security (Awareness)", Description: "Strengthening the human firewall of your company."},
}

var resultTextsEN = map[domain.MaturityLevel]string{
	domain.LevelLow:    "There is an elevated risk in this area. Attacks or outages could quickly have business-critical impact.",
	domain.LevelMedium: "You have built a foundation, but would clearly benefit from modern zero-trust and cloud security approaches.",
	domain.LevelHigh:   "You are already well advanced here – we can help you secure and extend this lead efficiently.",
}
