package domain

import (
	"encoding/json"
	"math"
	"time"
)

// ReportFile describes a generated chart or export on disk
type ReportFile struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Report file kinds
const (
	ReportKindChart  = "chart"
	ReportKindExport = "export"
)

// Number is a float that encodes NaN and infinities as JSON null
type Number float64

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// TestResult is the outcome of a significance test as shown in reports
type TestResult struct {
	Name        string `json:"name"`
	Statistic   Number `json:"statistic"`
	PValue      Number `json:"p_value"`
	DF          Number `json:"df"`
	Significant bool   `json:"significant"`
}
