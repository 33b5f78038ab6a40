package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"labelscan/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"ID",
	"Source",
	"Detected Language",
	"OCR Confidence",
	"Health Score",
	"Ingredient Count",
	"Database Matches",
	"Researched",
	"Unknown",
	"Warning Count",
	"Summary",
	"Ingredients",
	"Created At",
}

// Writer wraps csv.Writer for exporting analyses as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteAnalyses converts a batch of analyses to CSV rows and writes them.
func (w *Writer) WriteAnalyses(analyses []domain.Analysis) error {
	for i := range analyses {
		row := analysisToRow(&analyses[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error reports any error from a previous write or flush.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func analysisToRow(a *domain.Analysis) []string {
	var result domain.AnalysisResult
	// A record with an undecodable result still exports its stored fields.
	_ = json.Unmarshal(a.Result, &result)

	byProvenance := map[domain.Provenance]int{}
	names := make([]string, 0, len(result.Ingredients))
	for i := range result.Ingredients {
		byProvenance[result.Ingredients[i].Provenance]++
		names = append(names, result.Ingredients[i].Name())
	}

	ocrConfidence := ""
	if a.OCRConfidence != nil {
		ocrConfidence = fmt.Sprintf("%.2f", *a.OCRConfidence)
	}

	return []string{
		a.ID.String(),
		string(a.Source),
		a.DetectedLanguage,
		ocrConfidence,
		strconv.Itoa(a.HealthScore),
		strconv.Itoa(len(result.Ingredients)),
		strconv.Itoa(byProvenance[domain.ProvenanceDatabase]),
		strconv.Itoa(byProvenance[domain.ProvenanceResearched]),
		strconv.Itoa(byProvenance[domain.ProvenanceUnknown]),
		strconv.Itoa(len(result.Warnings)),
		result.Summary,
		strings.Join(names, "; "),
		a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}
