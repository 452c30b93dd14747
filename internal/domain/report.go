package domain

// Report descreve o resultado de uma execução completa do pipeline
type Report struct {
	SourcePath   string             `json:"source_path"`
	RecordCount  int                `json:"record_count"`
	SkippedLines []SkippedLine      `json:"skipped_lines,omitempty"`
	Aggregates   []MonthlyAggregate `json:"aggregates"`
	ChartPath    string             `json:"chart_path"`
	DocumentPath string             `json:"document_path"`
}
