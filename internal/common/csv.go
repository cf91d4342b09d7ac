// Package common provides CSV import and export of transactions.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fjacquet/finboard/internal/fileutils"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/models"

	"github.com/gocarina/gocsv"
)

// ExportRow is the CSV layout of an exported transaction.
type ExportRow struct {
	ID       string `csv:"ID"`
	Merchant string `csv:"Merchant"`
	Account  string `csv:"Account"`
	Category string `csv:"Category"`
	Date     string `csv:"Date"`
	Amount   string `csv:"Amount"`
}

// NewExportRow formats tx for export. Amounts keep two decimals.
func NewExportRow(tx models.Transaction) ExportRow {
	return ExportRow{
		ID:       tx.ID,
		Merchant: tx.Merchant,
		Account:  tx.Account,
		Category: tx.Category,
		Date:     tx.DateString(),
		Amount:   tx.Amount.StringFixed(2),
	}
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	logger.Info("Reading CSV file", logging.Field{Key: logging.FieldFile, Value: filePath})

	file, err := os.Open(filePath) // #nosec G304 -- path supplied by the user on the command line
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadCSV[TCSVRow](file, delimiter)
	if err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, err
	}

	logger.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// ReadCSV parses CSV rows from r.
func ReadCSV[TCSVRow any](r io.Reader, delimiter rune) ([]TCSVRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return rows, nil
}

// ReadRecords reads transaction records from a CSV file with the export layout,
// optionally followed by a Type column.
func ReadRecords(filePath string, delimiter rune, logger logging.Logger) ([]models.Record, error) {
	return ReadCSVFile[models.Record](filePath, delimiter, logger)
}

// WriteTransactions writes transactions to w in the export layout.
func WriteTransactions(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	rows := make([]ExportRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, NewExportRow(tx))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteTransactionsToCSV writes transactions to a CSV file, creating its
// directory when needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	logger.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	if err := fileutils.EnsureParentDirectory(csvFile); err != nil {
		logger.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(csvFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, models.PermissionExportFile) // #nosec G304 -- path supplied by the user on the command line
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteTransactions(file, transactions, delimiter); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}

	logger.Info("Successfully wrote transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
