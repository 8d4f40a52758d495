package roomservice

import (
	"encoding/json"
	"os"
	"strings"
	"sync"

	"arame/models"
	"arame/utils"

	"go.uber.org/zap"
)

var (
	menuOnce sync.Once
	menu     []models.MenuItem
)

// defaultMenu is the built-in catalog, prices in COP. A deployment can
// override it by pointing MENU_FILE at a JSON array of menu items.
var defaultMenu = []models.MenuItem{
	{Name: "Bandeja Paisa", Price: 48000, Description: "Plato típico antioqueño: frijoles, chicharrón, carne molida, chorizo, arepa, aguacate y huevo"},
	{Name: "Sancocho Antioqueño", Price: 38000, Description: "Sopa tradicional con pollo, plátano, yuca y mazorca"},
	{Name: "Hamburguesa Aramé", Price: 42000, Description: "Carne angus 200g, queso campesino, tocineta y papas rústicas"},
	{Name: "Club Sandwich", Price: 36000, Description: "Pollo, tocineta, queso, lechuga y tomate en pan artesanal"},
	{Name: "Pizza Margarita", Price: 34000, Description: "Salsa pomodoro, mozzarella fresca y albahaca"},
	{Name: "Pasta Alfredo con Pollo", Price: 39000, Description: "Fettuccine en salsa cremosa con pollo a la parrilla"},
	{Name: "Ensalada César", Price: 28000, Description: "Lechuga romana, crutones, parmesano y aderezo césar, pollo opcional"},
	{Name: "Salmón a la Plancha", Price: 58000, Description: "Con puré de papa criolla y vegetales salteados"},
	{Name: "Arepas con Queso", Price: 18000, Description: "Tres arepas de maíz con queso campesino fundido"},
	{Name: "Empanadas Antioqueñas", Price: 16000, Description: "Cinco empanadas de carne con ají casero"},
	{Name: "Patacones con Hogao", Price: 22000, Description: "Plátano verde frito con salsa criolla"},
	{Name: "Desayuno Americano", Price: 32000, Description: "Huevos al gusto, tocineta, tostadas, jugo y café"},
	{Name: "Brownie con Helado", Price: 19000, Description: "Brownie de chocolate caliente con helado de vainilla"},
	{Name: "Tiramisú", Price: 21000, Description: "Receta clásica italiana"},
	{Name: "Jugo Natural", Price: 12000, Description: "Mango, lulo, maracuyá, mora o guanábana"},
	{Name: "Limonada de Coco", Price: 14000, Description: "Especialidad de la casa"},
	{Name: "Café de Origen", Price: 9000, Description: "Café antioqueño de finca, prensa francesa"},
	{Name: "Cerveza Nacional", Price: 11000, Description: "Águila, Club Colombia o Pilsen"},
	{Name: "Copa de Vino", Price: 26000, Description: "Tinto o blanco de la selección del sommelier"},
	{Name: "Agua con Gas", Price: 8000, Description: "Botella 500ml"},
}

// Menu returns the room service catalog, loading any configured
// override file exactly once.
func Menu() []models.MenuItem {
	menuOnce.Do(func() {
		menu = defaultMenu
		path := os.Getenv("MENU_FILE")
		if path == "" {
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			utils.GetLogger().Warn("Could not read menu file, using built-in menu",
				zap.String("path", path), zap.Error(err))
			return
		}
		var loaded []models.MenuItem
		if err := json.Unmarshal(data, &loaded); err != nil || len(loaded) == 0 {
			utils.GetLogger().Warn("Invalid menu file, using built-in menu",
				zap.String("path", path), zap.Error(err))
			return
		}
		menu = loaded
	})
	return menu
}

// FindMenuItem fuzzy-matches a requested dish against the catalog by
// substring in either direction. Unknown requests come back as an item
// with zero price so the order can still be taken and priced by staff.
func FindMenuItem(requested string) models.MenuItem {
	wanted := strings.ToLower(strings.TrimSpace(requested))
	for _, item := range Menu() {
		name := strings.ToLower(item.Name)
		if strings.Contains(name, wanted) || strings.Contains(wanted, name) {
			return item
		}
	}
	utils.GetLogger().Warn("Requested item not on menu, taking as custom order",
		zap.String("item", requested))
	return models.MenuItem{Name: requested, Price: 0}
}
