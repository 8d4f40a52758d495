package nlp

import "strings"

// destinationGazetteer maps surface forms guests actually type to the
// canonical destination name used downstream. Checked before the
// pattern-based destination capture so known places win over free text.
var destinationGazetteer = []struct {
	aliases   []string
	canonical string
}{
	{[]string{"aeropuerto", "jose maria cordova", "josé maría córdova", "el dorado"}, "aeropuerto"},
	{[]string{"terminal del norte", "terminal norte"}, "terminal del norte"},
	{[]string{"terminal del sur", "terminal sur"}, "terminal del sur"},
	{[]string{"el poblado", "poblado"}, "el poblado"},
	{[]string{"parque lleras", "lleras"}, "parque lleras"},
	{[]string{"laureles"}, "laureles"},
	{[]string{"envigado"}, "envigado"},
	{[]string{"comuna 13", "comuna trece", "graffitour"}, "comuna 13"},
	{[]string{"pueblito paisa"}, "pueblito paisa"},
	{[]string{"jardin botanico", "jardín botánico"}, "jardín botánico"},
	{[]string{"parque arvi", "parque arví", "arvi"}, "parque arví"},
	{[]string{"plaza botero", "museo de antioquia"}, "plaza botero"},
	{[]string{"guatape", "guatapé", "piedra del peñol", "el peñol"}, "guatapé"},
	{[]string{"centro comercial santafe", "santafé", "santafe"}, "centro comercial santafé"},
	{[]string{"estadio atanasio girardot", "estadio"}, "estadio atanasio girardot"},
	{[]string{"centro", "la candelaria"}, "centro"},
}

// matchGazetteer returns the canonical destination mentioned in the
// message, or the empty string when no known place appears.
func matchGazetteer(message string) string {
	lowered := strings.ToLower(message)
	for _, entry := range destinationGazetteer {
		for _, alias := range entry.aliases {
			if strings.Contains(lowered, alias) {
				return entry.canonical
			}
		}
	}
	return ""
}
