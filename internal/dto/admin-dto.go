package dto

type UpdateDatabaseDTO struct {
	DatabaseURL string `json:"databaseUrl" validate:"required"`
}

type DatabaseInfoDTO struct {
	DatabaseURL string `json:"databaseUrl"`
	Connected   bool   `json:"connected"`
	Provider    string `json:"provider"`
}

type ConnectSheetsDTO struct {
	SheetsURL string `json:"sheetsUrl" validate:"required"`
}

type SheetsStatusDTO struct {
	Connected bool    `json:"connected"`
	SheetID   *string `json:"sheetId"`
	LastSync  *string `json:"lastSync"`
	Message   string  `json:"message"`
}
