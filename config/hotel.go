package config

// Static hotel facts used by the concierge: FAQ answers, prompt context and
// recommendation/transport catalogs. These are fixed properties of the
// property itself, not deployment configuration, so they live in code.

const (
	HotelName    = "Hotel Aramé"
	HotelAddress = "Calle 10 #40-45, El Poblado, Medellín, Colombia"

	AssistantName = "Lina"

	WelcomeMessage = "Bienvenido al Hotel Aramé. Soy Lina, su concierge digital personal. " +
		"Estoy aquí para ayudarle con cualquier necesidad durante su estadía. Puedo asistirle con " +
		"recomendaciones locales, servicio a la habitación, transporte, información del hotel y mucho más. " +
		"¿En qué puedo ayudarle hoy?"
)

// HotelCoordinates locates the property in El Poblado, Medellín.
var HotelCoordinates = struct {
	Latitude  float64
	Longitude float64
}{
	Latitude:  6.2087,
	Longitude: -75.5698,
}

// RecommendationCategories maps internal category keys to their Spanish labels.
var RecommendationCategories = map[string]string{
	"restaurant":    "Restaurantes",
	"bar":           "Bares y vida nocturna",
	"cafe":          "Cafés",
	"attraction":    "Atracciones turísticas",
	"museum":        "Museos y cultura",
	"shopping":      "Compras",
	"entertainment": "Entretenimiento",
	"nature":        "Naturaleza y aire libre",
	"spa":           "Bienestar y spa",
}

// TransportationOptions are the vehicle types the front desk can arrange.
var TransportationOptions = map[string]string{
	"taxi":        "Taxi estándar",
	"private_car": "Vehículo privado",
	"luxury_car":  "Automóvil de lujo",
	"suv":         "SUV",
	"van":         "Van (hasta 8 pasajeros)",
}

// Facility describes a hotel amenity with its schedule and details, used to
// assemble FAQ answers.
type Facility struct {
	Hours    string
	Location string
	Details  string
}

// Facilities holds the amenity facts referenced by the FAQ catalog.
var Facilities = map[string]Facility{
	"breakfast": {
		Hours:    "6:30 AM - 10:30 AM",
		Location: "Restaurante principal, primer piso",
		Details:  "Desayuno buffet completo incluido en su tarifa. Opciones vegetarianas y veganas disponibles.",
	},
	"wifi": {
		Location: "Arame_Guest",
		Details:  "Disponible en todas las áreas del hotel sin costo adicional. La contraseña se encuentra en su tarjeta de bienvenida.",
	},
	"pool": {
		Hours:    "6:00 AM - 10:00 PM",
		Location: "Terraza, piso 10",
		Details:  "Piscina climatizada con vistas a la ciudad. Toallas disponibles en el área de la piscina.",
	},
	"spa": {
		Hours:    "9:00 AM - 9:00 PM",
		Location: "Piso 9",
		Details:  "Reserve su tratamiento con 2 horas de anticipación. Amplia variedad de masajes y tratamientos disponibles.",
	},
	"gym": {
		Hours:    "24 horas",
		Location: "Piso 8",
		Details:  "Equipamiento completo de cardio y pesas. Instructor disponible de 7:00 AM a 8:00 PM.",
	},
	"business_center": {
		Hours:    "24 horas",
		Location: "Lobby, primer piso",
		Details:  "Computadoras, impresora y sala de reuniones disponibles. Reserve la sala de reuniones con anticipación.",
	},
	"checkout": {
		Hours:   "12:00 PM",
		Details: "Late check-out disponible hasta las 4:00 PM con cargo adicional del 50% de la tarifa por noche, sujeto a disponibilidad.",
	},
	"parking": {
		Details: "Servicio de valet parking disponible sin costo adicional para huéspedes.",
	},
	"room_service": {
		Hours:   "24 horas",
		Details: "Menú completo disponible las 24 horas. Tiempo estimado de entrega: 30 minutos.",
	},
}
