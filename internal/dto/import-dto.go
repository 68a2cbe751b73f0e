package dto

// ImportResultDTO reports a partial-success import: rows that failed
// validation are accumulated as messages, the batch never aborts.
type ImportResultDTO struct {
	Success int      `json:"success"`
	Total   int      `json:"total"`
	Errors  []string `json:"errors"`
}
