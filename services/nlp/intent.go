package nlp

import (
	"regexp"

	"arame/models"
)

const (
	baseConfidence   = 0.5
	confidencePerHit = 0.1
	maxConfidence    = 0.95
	followUpScore    = 0.4
	fallbackScore    = 0.3
	slotFillingScore = 0.8

	// MinHandlerConfidence is the floor above which a classified intent
	// is routed to its dedicated handler instead of the generative
	// responder.
	MinHandlerConfidence = 0.5
)

type intentPatterns struct {
	intent   models.Intent
	patterns []*regexp.Regexp
}

// intentTable is evaluated in order; on a tied hit count the earlier
// entry wins, so more specific intents sit above the catch-alls.
var intentTable = []intentPatterns{
	{models.IntentGreeting, compileAll(
		`(?i)\bhola\b`,
		`(?i)\bbuen(os|as)?\s+(d[ií]as|tardes|noches)\b`,
		`(?i)\bqu[eé] tal\b`,
		`(?i)\bsaludos\b`,
	)},
	{models.IntentFarewell, compileAll(
		`(?i)\badi[oó]s\b`,
		`(?i)\bhasta (luego|pronto|ma[ñn]ana)\b`,
		`(?i)\bchao\b`,
		`(?i)\bnos vemos\b`,
	)},
	{models.IntentThanks, compileAll(
		`(?i)\bgracias\b`,
		`(?i)\bmuy amable\b`,
		`(?i)\bte lo agradezco\b`,
	)},
	{models.IntentHelp, compileAll(
		`(?i)\bayuda\b`,
		`(?i)\bay[uú]dame\b`,
		`(?i)\bqu[eé] puedes hacer\b`,
		`(?i)\ben qu[eé] me puedes (ayudar|servir)\b`,
		`(?i)\bc[oó]mo funciona\b`,
	)},
	{models.IntentTransportation, compileAll(
		`(?i)\btaxi\b`,
		`(?i)\btransporte\b`,
		`(?i)\buber\b`,
		`(?i)\baeropuerto\b`,
		`(?i)\b(ll[eé]vame|llevarme|ll[eé]venme|me lleven|recogerme|rec[oó]geme)\b`,
		`(?i)\b(carro|veh[ií]culo|camioneta|van)\b`,
		`(?i)\bnecesito (ir|llegar|viajar)\b`,
		`(?i)\bc[oó]mo llego\b`,
	)},
	{models.IntentRoomService, compileAll(
		`(?i)servicio a la habitaci[oó]n`,
		`(?i)\broom service\b`,
		`(?i)\bmen[uú]\b`,
		`(?i)\b(pedir|ordenar)\b`,
		`(?i)\b(tengo hambre|tengo sed|antojo)\b`,
		`(?i)\b(comida|comer|desayuno|almuerzo|cena)\b`,
		`(?i)\b(tr[aá]eme|traigan|quisiera)\b`,
	)},
	{models.IntentRecommendation, compileAll(
		`(?i)\brecom(i[eé]nda(me)?|endaci[oó]n(es)?)\b`,
		`(?i)\b(lugares|sitios) (para|que)\b`,
		`(?i)\bd[oó]nde puedo\b`,
		`(?i)\bqu[eé] (hacer|visitar|conocer)\b`,
		`(?i)\b(restaurantes|bares|museos|parques|discotecas)\b`,
		`(?i)\bturismo\b`,
		`(?i)\bplanes?\b`,
	)},
	{models.IntentWeather, compileAll(
		`(?i)\bclima\b`,
		`(?i)\btiempo (hace|est[aá])\b`,
		`(?i)\b(va a )?llover\b`,
		`(?i)\blluvia\b`,
		`(?i)\btemperatura\b`,
		`(?i)\b(hace|hay) (fr[ií]o|calor|sol)\b`,
	)},
	{models.IntentFAQ, compileAll(
		`(?i)\bwifi\b`,
		`(?i)\bcontrase[ñn]a\b`,
		`(?i)\bclave\b`,
		`(?i)\bpiscina\b`,
		`(?i)\bgimnasio\b`,
		`(?i)\bspa\b`,
		`(?i)\bdesayuno incluido\b`,
		`(?i)\bcheck.?out\b`,
		`(?i)\bparqueadero\b`,
		`(?i)\ba qu[eé] hora\b`,
		`(?i)\bhorario\b`,
	)},
	{models.IntentQuestion, compileAll(
		`(?i)\b(qu[eé]|cu[aá]l|c[oó]mo|cu[aá]ndo|d[oó]nde|cu[aá]nto|por qu[eé]|qui[eé]n)\b`,
	)},
}

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(expr))
	}
	return compiled
}

// ClassifyIntent scores the message against every pattern table and
// returns the winning intent with a confidence in [0.3, 0.95].
//
// A conversation that is mid slot-fill for a transportation request
// short-circuits: as long as a required slot is still missing, the
// reply is treated as part of that flow.
func ClassifyIntent(message string, convCtx *models.ConversationContext) (models.Intent, float64) {
	if convCtx != nil && convCtx.CurrentIntent == models.IntentTransportation &&
		(convCtx.Awaiting != "" ||
			convCtx.Transportation.Destination == "" ||
			convCtx.Transportation.PickupTime == "") {
		return models.IntentTransportation, slotFillingScore
	}

	bestIntent := models.IntentFAQ
	bestHits := 0
	for _, entry := range intentTable {
		hits := 0
		for _, re := range entry.patterns {
			if re.MatchString(message) {
				hits++
			}
		}
		if convCtx != nil && convCtx.CurrentIntent == entry.intent && hits > 0 {
			hits++
		}
		if hits > bestHits {
			bestHits = hits
			bestIntent = entry.intent
		}
	}

	if bestHits == 0 {
		if convCtx != nil && convCtx.CurrentIntent != "" {
			return convCtx.CurrentIntent, followUpScore
		}
		return models.IntentFAQ, fallbackScore
	}

	confidence := baseConfidence + confidencePerHit*float64(bestHits)
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return bestIntent, confidence
}
