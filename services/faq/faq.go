package faq

import (
	"strings"

	"arame/config"
	"arame/utils"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// similarityThreshold is the minimum normalized edit-distance ratio for
// a fuzzy question match. Below it we fall back to keyword containment.
const similarityThreshold = 0.6

const defaultAnswer = "Con gusto le ayudo con esa consulta. Permítame comunicarle con la recepción " +
	"marcando el 0 desde su habitación, o puedo asistirle con recomendaciones, " +
	"servicio a la habitación o transporte."

type entry struct {
	questions []string
	keywords  []string
	answer    string
}

// FAQService answers common hotel questions from the facility catalog.
type FAQService interface {
	Answer(question string) (string, bool)
}

type DefaultFAQService struct {
	entries []entry
}

func NewFAQService() *DefaultFAQService {
	return &DefaultFAQService{entries: buildEntries()}
}

func buildEntries() []entry {
	f := config.Facilities
	return []entry{
		{
			questions: []string{
				"cual es la clave del wifi",
				"cual es la contraseña del wifi",
				"como me conecto al internet",
			},
			keywords: []string{"wifi", "internet", "contraseña", "clave", "red"},
			answer: "Nuestra red WiFi es \"" + f["wifi"].Location + "\". " + f["wifi"].Details,
		},
		{
			questions: []string{
				"a que hora es el desayuno",
				"donde es el desayuno",
				"el desayuno esta incluido",
			},
			keywords: []string{"desayuno", "buffet"},
			answer: "El desayuno se sirve de " + f["breakfast"].Hours + " en el " +
				strings.ToLower(f["breakfast"].Location) + ". " + f["breakfast"].Details,
		},
		{
			questions: []string{
				"a que hora abre la piscina",
				"donde queda la piscina",
				"tienen piscina",
			},
			keywords: []string{"piscina", "nadar"},
			answer: "La piscina está en la " + strings.ToLower(f["pool"].Location) +
				" y abre de " + f["pool"].Hours + ". " + f["pool"].Details,
		},
		{
			questions: []string{
				"tienen spa",
				"como reservo un masaje",
				"a que hora abre el spa",
			},
			keywords: []string{"spa", "masaje", "tratamiento"},
			answer: "El spa está en el " + strings.ToLower(f["spa"].Location) +
				", abierto de " + f["spa"].Hours + ". " + f["spa"].Details,
		},
		{
			questions: []string{
				"tienen gimnasio",
				"a que hora abre el gimnasio",
				"donde queda el gimnasio",
			},
			keywords: []string{"gimnasio", "gym", "ejercicio", "pesas"},
			answer: "El gimnasio está en el " + strings.ToLower(f["gym"].Location) +
				" y está abierto " + f["gym"].Hours + ". " + f["gym"].Details,
		},
		{
			questions: []string{
				"tienen centro de negocios",
				"donde puedo imprimir un documento",
				"tienen sala de reuniones",
			},
			keywords: []string{"negocios", "imprimir", "impresora", "reuniones", "computador"},
			answer: "El centro de negocios está en el " + strings.ToLower(f["business_center"].Location) +
				", disponible " + f["business_center"].Hours + ". " + f["business_center"].Details,
		},
		{
			questions: []string{
				"a que hora es el check out",
				"hasta que hora puedo salir de la habitacion",
				"puedo hacer late check out",
			},
			keywords: []string{"check-out", "check out", "checkout", "salida", "desocupar"},
			answer: "El check-out es a las " + f["checkout"].Hours + ". " + f["checkout"].Details,
		},
		{
			questions: []string{
				"tienen parqueadero",
				"donde puedo estacionar",
				"cuanto cuesta el parqueadero",
			},
			keywords: []string{"parqueadero", "parquear", "estacionar", "valet", "carro"},
			answer:   f["parking"].Details,
		},
		{
			questions: []string{
				"hasta que hora hay servicio a la habitacion",
				"puedo pedir comida a la habitacion",
			},
			keywords: []string{"servicio a la habitacion", "room service", "comida", "menu"},
			answer: "El servicio a la habitación está disponible " + f["room_service"].Hours +
				". " + f["room_service"].Details,
		},
	}
}

// Answer returns the best matching FAQ answer. The second return is
// false when nothing matched and the caller got the generic fallback.
func (s *DefaultFAQService) Answer(question string) (string, bool) {
	normalized := normalize(question)

	var bestAnswer string
	bestRatio := 0.0
	for _, e := range s.entries {
		for _, q := range e.questions {
			if ratio := similarity(normalized, q); ratio > bestRatio {
				bestRatio = ratio
				bestAnswer = e.answer
			}
		}
	}
	if bestRatio > similarityThreshold {
		utils.GetLogger().Debug("FAQ fuzzy match", zap.Float64("ratio", bestRatio))
		return bestAnswer, true
	}

	for _, e := range s.entries {
		for _, kw := range e.keywords {
			if strings.Contains(normalized, kw) {
				return e.answer, true
			}
		}
	}

	return defaultAnswer, false
}

// similarity is a normalized edit-distance ratio in [0, 1].
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
)

func normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	lowered = strings.Trim(lowered, "¿?¡!.")
	return accentReplacer.Replace(lowered)
}
