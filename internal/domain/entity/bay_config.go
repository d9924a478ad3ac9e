package entity

// BayConfig describe la estructura de una bahía en el modo de configuración por bahía.
// Shelves es la cantidad de niveles y Bins la cantidad de ubicaciones por nivel.
type BayConfig struct {
	Aisle   int `mapstructure:"aisle" json:"aisle"`
	Bay     int `mapstructure:"bay" json:"bay"`
	Shelves int `mapstructure:"shelves" json:"shelves"`
	Bins    int `mapstructure:"bins" json:"bins"`
}
