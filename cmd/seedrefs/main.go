// Command seedrefs converts an ingredient reference Excel file into a SQL
// seed file for the ingredient_refs table. Without an Excel file it falls
// back to the built-in reference set.
// Usage: go run ./cmd/seedrefs [ingredients.xlsx]
// Output: db/seeds/ingredient_refs.sql
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"labelscan/internal/domain"
	"labelscan/internal/refdata"
)

const batchSize = 500

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outPath := "db/seeds/ingredient_refs.sql"

	var records []domain.IngredientRecord
	var origin string

	if len(os.Args) > 1 {
		parsed, err := parseExcel(os.Args[1])
		if err != nil {
			return fmt.Errorf("parse Excel file: %w", err)
		}
		records = parsed
		origin = os.Args[1]
	} else {
		records = refdata.Builtin()
		origin = "built-in reference set"
	}
	log.Printf("seeding %d ingredient records from %s", len(records), origin)

	if err := os.MkdirAll("db/seeds", 0o755); err != nil {
		return fmt.Errorf("create seeds directory: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		fmt.Sprintf("-- Ingredient reference seed data generated from %s.", origin),
		fmt.Sprintf("-- %d records in batches of %d.", len(records), batchSize),
		"-- Run: make seed-refs",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := writeBatch(out, records[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d records (%d batches) in %s",
		len(records), (len(records)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseExcel reads ingredient records from the first sheet.
// Columns: A=canonical_name, B=aliases (semicolon separated), C=category,
// D=safety_level, E=allergen_tags (semicolon separated), F=natural (yes/no),
// G=description. Row 0 is the header.
func parseExcel(path string) ([]domain.IngredientRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var records []domain.IngredientRecord
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		name := strings.ToLower(strings.TrimSpace(cellVal(row, 0)))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		records = append(records, domain.IngredientRecord{
			CanonicalName: name,
			Aliases:       splitList(cellVal(row, 1)),
			Category:      strings.TrimSpace(cellVal(row, 2)),
			Safety:        domain.ParseSafetyLevel(strings.ToLower(strings.TrimSpace(cellVal(row, 3)))),
			AllergenTags:  splitList(cellVal(row, 4)),
			Natural:       isTruthy(cellVal(row, 5)),
			Description:   strings.TrimSpace(cellVal(row, 6)),
		})
	}
	return records, nil
}

func writeBatch(out *os.File, batch []domain.IngredientRecord) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ingredient_refs (canonical_name, aliases, category, safety_level, allergen_tags, is_natural, description) VALUES\n")

	for i := range batch {
		rec := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}

		fmt.Fprintf(&b, "  ('%s', '%s'::jsonb, '%s', '%s', '%s'::jsonb, %t, '%s')",
			escapeSQL(rec.CanonicalName),
			escapeSQL(jsonArray(rec.Aliases)),
			escapeSQL(rec.Category),
			rec.Safety,
			escapeSQL(jsonArray(rec.AllergenTags)),
			rec.Natural,
			escapeSQL(rec.Description))
	}

	b.WriteString("\nON CONFLICT (canonical_name) DO UPDATE SET\n")
	b.WriteString("  aliases = EXCLUDED.aliases,\n")
	b.WriteString("  category = EXCLUDED.category,\n")
	b.WriteString("  safety_level = EXCLUDED.safety_level,\n")
	b.WriteString("  allergen_tags = EXCLUDED.allergen_tags,\n")
	b.WriteString("  is_natural = EXCLUDED.is_natural,\n")
	b.WriteString("  description = EXCLUDED.description;\n")

	_, err := out.WriteString(b.String())
	return err
}

// jsonArray renders a string slice as a JSON array literal, never null.
func jsonArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "y":
		return true
	}
	return false
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
