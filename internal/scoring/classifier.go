package scoring

import (
	"security-funnel-service/internal/catalog"
	"security-funnel-service/internal/domain"
)

// Tier thresholds. The per-area ones bucket a discrete 0-6 score, the
// overall ones cut the continuous 0-6 average; both boundaries are
// product-defined and inclusive.
const (
	areaHighMin   = 5
	areaMediumMin = 3

	overallHighMin   = 4.5
	overallMediumMin = 2.5
)

// DeriveAreaLabel classifies a single area score (5-6 high, 3-4 medium,
// 0-2 low) and attaches the display metadata for that tier.
func DeriveAreaLabel(score int, lang string) domain.AreaLabel {
	texts := catalog.ResultTexts(lang)
	switch {
	case score >= areaHighMin:
		return domain.AreaLabel{
			Level:   domain.LevelHigh,
			Text:    texts[domain.LevelHigh],
			Color:   "text-green-700 dark:text-green-300",
			BgColor: "bg-green-100 dark:bg-green-900/50",
		}
	case score >= areaMediumMin:
		return domain.AreaLabel{
			Level:   domain.LevelMedium,
			Text:    texts[domain.LevelMedium],
			Color:   "text-yellow-700 dark:text-yellow-300",
			BgColor: "bg-yellow-100 dark:bg-yellow-900/50",
		}
	default:
		return domain.AreaLabel{
			Level:   domain.LevelLow,
			Text:    texts[domain.LevelLow],
			Color:   "text-red-700 dark:text-red-300",
			BgColor: "bg-red-100 dark:bg-red-900/50",
		}
	}
}

// DeriveOverallLabel classifies the average score into the overall tier
// with its long-form headline and summary. 4.5 is the inclusive lower
// bound of "high", 2.5 of "medium".
func DeriveOverallLabel(average float64, lang string) domain.OverallLabel {
	labels := overallLabelsDE
	if lang == catalog.LangEN {
		labels = overallLabelsEN
	}
	switch {
	case average >= overallHighMin:
		return labels[domain.LevelHigh]
	case average >= overallMediumMin:
		return labels[domain.LevelMedium]
	default:
		return labels[domain.LevelLow]
	}
}

var overallLabelsDE = map[domain.MaturityLevel]domain.OverallLabel{
	domain.LevelHigh: {
		Level:    domain.LevelHigh,
		Headline: "Dein Security-Check: Solide aufgestellt – jetzt optimieren",
		Summary:  "Dein Unternehmen ist in vielen Bereichen bereits gut aufgestellt. Nutze die Chance, um durch gezielte Optimierungen mit modernen Cloud-Technologien deinen Vorsprung weiter auszubauen und deine Resilienz zu maximieren.",
	},
	domain.LevelMedium: {
		Level:    domain.LevelMedium,
		Headline: "Dein Security-Check: Mittleres Risiko – gute Basis, Luft nach oben",
		Summary:  "Dein Unternehmen ist in einigen Bereichen bereits gut aufgestellt, in anderen gibt es deutlichen Nachholbedarf – insbesondere dort, wo Remote-Zugänge, geschäftskritische Web-Anwendungen oder Security Awareness noch nicht optimal abgesichert sind.",
	},
	domain.LevelLow: {
		Level:    domain.LevelLow,
		Headline: "Dein Security-Check: Hoher Handlungsbedarf",
		Summary:  "Unsere Analyse zeigt kritische Lücken in mehreren Bereichen deiner IT-Sicherheit. Es besteht akuter Handlungsbedarf, um dein Unternehmen wirksam gegen Cyberangriffe, Ausfälle und Datenverlust zu schützen.",
	},
}

var overallLabelsEN = map[domain.MaturityLevel]domain.OverallLabel{
	domain.LevelHigh: {
		Level:    domain.LevelHigh,
		Headline: "Your security check: solidly positioned – now optimize",
		Summary:  "Your company is already well positioned in many areas. Use the opportunity to extend your lead with targeted optimizations and modern cloud technologies, and to maximize your resilience.",
	},
	domain.LevelMedium: {
		Level:    domain.LevelMedium,
		Headline: "Your security check: medium risk – good foundation, room to grow",
		Summary:  "Your company is already well positioned in some areas, while others clearly need catching up – especially where remote access, business-critical web applications or security awareness are not yet optimally protected.",
	},
	domain.LevelLow: {
		Level:    domain.LevelLow,
		Headline: "Your security check: urgent need for action",
		Summary:  "Our analysis shows critical gaps in several areas of your IT security. There is an acute need for action to effectively protect your company against cyber attacks, outages and data loss.",
	},
}
