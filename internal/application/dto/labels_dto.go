package dto

// UniformRequest parámetros del modo uniforme (todos >= 1).
type UniformRequest struct {
	Aisles        int `json:"aisles" query:"aisles" form:"aisles"`
	BaysPerAisle  int `json:"bays_per_aisle" query:"bays_per_aisle" form:"bays_per_aisle"`
	ShelvesPerBay int `json:"shelves_per_bay" query:"shelves_per_bay" form:"shelves_per_bay"`
	BinsPerShelf  int `json:"bins_per_shelf" query:"bins_per_shelf" form:"bins_per_shelf"`
}

// ConfigRowsRequest configuración por bahía enviada como JSON.
// Cada fila es un objeto con al menos aisle, bay, shelves y bins (sin distinguir mayúsculas).
type ConfigRowsRequest struct {
	Rows []map[string]any `json:"rows"`
}

// SheetRequest rango de Google Sheets con la configuración por bahía (ej. "Bahias!A1:D200").
type SheetRequest struct {
	Range string `json:"range"`
}

// BinRecordResponse una ubicación generada.
type BinRecordResponse struct {
	Aisle int    `json:"aisle"`
	Bay   int    `json:"bay"`
	Shelf string `json:"shelf"`
	Bin   int    `json:"bin"`
	Label string `json:"label"`
}

// LabelsResponse tabla paginada de ubicaciones generadas.
type LabelsResponse struct {
	BatchID  string              `json:"batch_id"`
	Mode     string              `json:"mode"`
	FileName string              `json:"file_name"`
	Items    []BinRecordResponse `json:"items"`
	Page     PageResponse        `json:"page"`
}
