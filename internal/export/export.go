// Package export writes generated repayment plans to CSV files. All parts of
// the application use this package for CSV output so the column set and
// formatting stay consistent.
package export

import (
	"encoding/csv"
	"fmt"

	"github.com/gocarina/gocsv"

	"fjacquet/paydown/internal/currencyutils"
	"fjacquet/paydown/internal/fileutils"
	"fjacquet/paydown/internal/logging"
	"fjacquet/paydown/internal/models"
	"fjacquet/paydown/internal/plannererror"
)

// PlanRow is the CSV shape of a single month/account line of a plan.
type PlanRow struct {
	Month           int    `csv:"Month"`
	LenderName      string `csv:"Lender"`
	Payment         string `csv:"Payment"`
	InterestCharged string `csv:"Interest Charged"`
	EndingBalance   string `csv:"Ending Balance"`
}

// Exporter writes plans to disk.
type Exporter struct {
	logger    logging.Logger
	delimiter rune
}

// New creates an Exporter using a comma delimiter.
func New(logger logging.Logger) *Exporter {
	return NewWithDelimiter(logger, ',')
}

// NewWithDelimiter creates an Exporter with a custom CSV delimiter.
func NewWithDelimiter(logger logging.Logger, delimiter rune) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Exporter{logger: logger, delimiter: delimiter}
}

// PlanToRows converts a plan's monthly results into CSV rows with
// two-decimal amount strings.
func PlanToRows(plan *models.PlanResult) []PlanRow {
	rows := make([]PlanRow, 0, len(plan.Results))
	for _, r := range plan.Results {
		rows = append(rows, PlanRow{
			Month:           r.Month,
			LenderName:      r.LenderName,
			Payment:         currencyutils.FormatCents(r.PaymentCents),
			InterestCharged: currencyutils.FormatCents(r.InterestChargedCents),
			EndingBalance:   currencyutils.FormatCents(r.EndingBalanceCents),
		})
	}
	return rows
}

// WritePlanToCSV writes the month-by-month schedule of a plan to csvFile,
// creating parent directories as needed.
func (e *Exporter) WritePlanToCSV(plan *models.PlanResult, csvFile string) error {
	if plan == nil {
		return &plannererror.ExportError{FilePath: csvFile, Err: fmt.Errorf("cannot write nil plan to CSV")}
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(plan.Results)},
	).Info("Writing plan to CSV file")

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		e.logger.WithError(err).Error("Failed to create CSV file")
		return &plannererror.ExportError{FilePath: csvFile, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			e.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = e.delimiter

	if err := gocsv.MarshalCSV(PlanToRows(plan), gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		e.logger.WithError(err).Error("Failed to marshal plan to CSV")
		return &plannererror.ExportError{FilePath: csvFile, Err: err}
	}

	e.logger.WithField(logging.FieldOutputFile, csvFile).Info("Successfully wrote plan to CSV file")
	return nil
}
