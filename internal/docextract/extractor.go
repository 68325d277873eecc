// internal/docextract/extractor.go

// Package docextract turns an uploaded document image into structured form
// fields via Amazon Textract and exposes the one field the loan flow needs:
// the wage amount.
package docextract

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/textract"
)

// WageFieldKey is the fixed form label the wage amount is read from.
const WageFieldKey = "Social security wages"

// ErrFieldNotFound is returned when no form field matches the wage label.
// Callers treat it as a terminal domain failure, not a system error.
var ErrFieldNotFound = errors.New("wage field not found in document")

// Analyzer is the narrow Textract surface the extractor depends on.
type Analyzer interface {
	AnalyzeDocumentForms(ctx context.Context, documentBytes []byte) (*textract.AnalyzeDocumentOutput, error)
}

// Extractor resolves the wage amount from raw document bytes.
type Extractor struct {
	analyzer Analyzer
}

func NewExtractor(analyzer Analyzer) *Extractor {
	return &Extractor{analyzer: analyzer}
}

// WageAmount analyzes the document and returns the wage figure as an integer.
// Thousands separators are stripped and any decimal fraction truncated.
func (e *Extractor) WageAmount(ctx context.Context, documentBytes []byte) (int, error) {
	out, err := e.analyzer.AnalyzeDocumentForms(ctx, documentBytes)
	if err != nil {
		return 0, fmt.Errorf("analyze document: %w", err)
	}

	fields := ParseFormFields(out.Blocks)
	value, ok := findFieldByKey(fields, WageFieldKey)
	if !ok {
		return 0, ErrFieldNotFound
	}

	return parseAmount(value)
}

func findFieldByKey(fields []FormField, key string) (string, bool) {
	want := normalizeKey(key)
	for _, f := range fields {
		if strings.HasPrefix(normalizeKey(f.Key), want) {
			return f.Value, true
		}
	}
	return "", false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func parseAmount(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse wage value %q: %w", raw, err)
	}
	return int(f), nil
}
