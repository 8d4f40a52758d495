package nlp

import (
	"regexp"
	"strconv"
	"strings"

	"arame/models"
)

// categoryClusters maps guest vocabulary to a recommendation category.
// Order matters: the first cluster with a hit wins.
var categoryClusters = []struct {
	category string
	keywords []string
}{
	{"restaurant", []string{"restaurante", "restaurantes", "comer afuera", "cena", "almuerzo", "almorzar", "cenar", "comida tipica", "comida típica"}},
	{"cafe", []string{"cafe", "café", "cafeteria", "cafetería", "brunch", "desayunar afuera"}},
	{"bar", []string{"bar", "bares", "cerveza", "cocteles", "cócteles", "trago", "tragos"}},
	{"nightlife", []string{"discoteca", "rumba", "fiesta", "bailar", "vida nocturna", "salir de noche"}},
	{"museum", []string{"museo", "museos", "arte", "cultura", "historia", "galeria", "galería"}},
	{"park", []string{"parque", "parques", "naturaleza", "caminar", "senderismo", "aire libre"}},
	{"shopping", []string{"compras", "centro comercial", "tiendas", "mercado", "artesanias", "artesanías"}},
	{"landmark", []string{"turismo", "turistico", "turístico", "sitios", "lugares", "atracciones", "conocer"}},
}

var timePeriods = []struct {
	period   string
	keywords []string
}{
	{"morning", []string{"mañana por la", "en la mañana", "de la mañana", "temprano", "madrugada"}},
	{"afternoon", []string{"tarde", "mediodia", "mediodía", "almuerzo"}},
	{"evening", []string{"noche", "esta noche", "anochecer"}},
}

// Room service item extraction only fires when the message carries an
// ordering trigger, otherwise food words in casual chat become orders.
var roomServiceTriggers = []string{
	"pedir", "ordenar", "quiero", "quisiera", "me gustaria", "me gustaría",
	"traeme", "tráeme", "traigan", "hambre", "servicio a la habitacion",
	"servicio a la habitación", "room service", "menu", "menú", "antojo",
}

var foodVocabulary = []string{
	"bandeja paisa", "sancocho", "arepa", "arepas", "empanadas", "empanada",
	"hamburguesa", "pizza", "pasta", "ensalada", "sandwich", "sánduche",
	"club sandwich", "pollo", "pescado", "carne", "arroz", "sopa",
	"patacones", "desayuno", "huevos", "fruta", "postre", "brownie",
	"tiramisu", "tiramisú", "helado", "cafe", "café", "jugo", "limonada",
	"agua", "gaseosa", "cerveza", "vino", "aguardiente", "whisky", "coctel", "cóctel",
}

var vehicleKeywords = []struct {
	vehicle  string
	keywords []string
}{
	{"luxury_car", []string{"carro de lujo", "auto de lujo", "lujo", "premium", "mercedes", "bmw"}},
	{"private_car", []string{"carro privado", "auto privado", "carro particular", "conductor privado", "uber"}},
	{"suv", []string{"camioneta", "suv", "4x4"}},
	{"van", []string{"van", "buseta", "grupo grande"}},
	{"taxi", []string{"taxi"}},
}

var (
	specialInstructionRe = regexp.MustCompile(`(?i)\b(?:con|sin|extra)\s+[a-záéíóúñü]+(?:\s+[a-záéíóúñü]+)?`)

	destinationRe = regexp.MustCompile(`(?i)(?:ir|viajar|llevarme|llevenme|llévame|voy|vamos|salir)\s+(?:a|al|hasta|hacia|para)\s+(?:el\s+|la\s+|los\s+|las\s+)?([a-záéíóúñü0-9]+(?:\s+[a-záéíóúñü0-9]+){0,3})`)

	clockTimeRe  = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm|a\.m\.|p\.m\.)?\b`)
	spokenTimeRe = regexp.MustCompile(`(?i)(?:a\s+las?\s+)?(\d{1,2})\s*(am|pm|a\.m\.|p\.m\.|de\s+la\s+mañana|de\s+la\s+tarde|de\s+la\s+noche)\b`)
	bareTimeRe   = regexp.MustCompile(`(?i)a\s+las?\s+(\d{1,2})(?::(\d{2}))?\b`)

	passengersRe = regexp.MustCompile(`(?i)(?:para\s+(\d{1,2})\s+personas?|(\d{1,2})\s+pasajeros?|somos\s+(\d{1,2}))`)
)

// destination captures cut off at these trailing words, which belong to
// the rest of the sentence rather than the place name.
var destinationStopWords = []string{
	"mañana", "hoy", "ahora", "por favor", "a las", "en la", "esta noche",
}

// ExtractEntities pulls structured fields out of a guest message. Fields
// with no evidence in the text stay at their zero value.
func ExtractEntities(message string) models.EntitySet {
	lowered := strings.ToLower(message)
	entities := models.EntitySet{Text: message}

	for _, cluster := range categoryClusters {
		if containsAny(lowered, cluster.keywords) {
			entities.Category = cluster.category
			break
		}
	}

	for _, tp := range timePeriods {
		if containsAny(lowered, tp.keywords) {
			entities.TimePeriod = tp.period
			break
		}
	}

	if containsAny(lowered, roomServiceTriggers) {
		for _, item := range foodVocabulary {
			if strings.Contains(lowered, item) {
				entities.OrderItems = append(entities.OrderItems, item)
			}
		}
	}

	if matches := specialInstructionRe.FindAllString(lowered, -1); len(matches) > 0 {
		entities.SpecialInstructions = strings.Join(matches, ", ")
	}

	if dest := matchGazetteer(message); dest != "" {
		entities.Destination = dest
	} else if m := destinationRe.FindStringSubmatch(lowered); m != nil {
		entities.Destination = trimDestination(m[1])
	}

	if t := ExtractTime(message); t != "" {
		entities.Time = t
		entities.PickupTime = t
	}

	for _, vk := range vehicleKeywords {
		if containsAny(lowered, vk.keywords) {
			entities.VehicleType = vk.vehicle
			break
		}
	}

	if m := passengersRe.FindStringSubmatch(lowered); m != nil {
		for _, group := range m[1:] {
			if group != "" {
				if n, err := strconv.Atoi(group); err == nil {
					entities.NumPassengers = n
				}
				break
			}
		}
	}

	return entities
}

// ExtractTime finds a clock time in the message and normalizes it to
// 24-hour "HH:MM". Returns the empty string when no time is present.
func ExtractTime(message string) string {
	if m := clockTimeRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return formatTime(adjustMeridiem(hour, m[3]), minute)
		}
	}
	if m := spokenTimeRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour <= 23 {
			return formatTime(adjustMeridiem(hour, m[2]), 0)
		}
	}
	if m := bareTimeRe.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		// Without an am/pm marker, small hours are read as afternoon:
		// guests asking for "a las 5" almost never mean dawn.
		if hour >= 1 && hour <= 7 {
			hour += 12
		}
		if hour <= 23 && minute <= 59 {
			return formatTime(hour, minute)
		}
	}
	return ""
}

func adjustMeridiem(hour int, marker string) int {
	marker = strings.ToLower(strings.TrimSpace(marker))
	switch {
	case marker == "pm" || marker == "p.m." ||
		strings.Contains(marker, "tarde") || strings.Contains(marker, "noche"):
		if hour < 12 {
			hour += 12
		}
	case marker == "am" || marker == "a.m." || strings.Contains(marker, "mañana"):
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func formatTime(hour, minute int) string {
	return pad2(hour) + ":" + pad2(minute)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func trimDestination(raw string) string {
	dest := strings.TrimSpace(raw)
	for _, stop := range destinationStopWords {
		if idx := strings.Index(dest, stop); idx > 0 {
			dest = strings.TrimSpace(dest[:idx])
		}
	}
	// Captures this short name no real place.
	if len([]rune(dest)) < 3 {
		return ""
	}
	return dest
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
