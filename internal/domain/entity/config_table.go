package entity

// ConfigTable es la tabla de configuración tal como llega del colaborador que la leyó
// (CSV, XLSX, Google Sheets o filas JSON), antes de validar columnas y tipos.
type ConfigTable struct {
	Columns []string
	Rows    [][]string
}
