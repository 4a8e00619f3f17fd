package entity

// Claves de configuración de la tienda usadas por el resto del sistema.
const (
	SettingShopName          = "shop_name"
	SettingCurrency          = "currency"
	SettingLowStockThreshold = "low_stock_threshold"
)

// DefaultSettings valores sembrados en la primera apertura de la base de datos.
// GetSetting regresa estos valores cuando la clave no existe o fue borrada.
var DefaultSettings = map[string]string{
	SettingShopName:          "My Shop",
	SettingCurrency:          "₹",
	SettingLowStockThreshold: "5",
}

// Setting representa un par clave-valor de configuración persistida.
type Setting struct {
	Key   string
	Value string
}
