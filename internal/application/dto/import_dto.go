package dto

// ImportCounters contadores añadidos/actualizados/fallidos de una categoría.
type ImportCounters struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
	Failed  int `json:"failed"`
}

// ImportResponse resultado estructurado de una importación del feed Supir.
// Severity: "ok" (sin mensajes), "warnings" (éxito con avisos) o "failed".
type ImportResponse struct {
	RunID          string         `json:"run_id"`
	OverallSuccess bool           `json:"overall_success"`
	Severity       string         `json:"severity"`
	Suppliers      ImportCounters `json:"suppliers"`
	Items          ImportCounters `json:"items"`
	Messages       []string       `json:"messages"`
	Summary        string         `json:"summary"`
}
