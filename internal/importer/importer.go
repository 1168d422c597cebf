// Package importer bootstraps a tenant's ledger from a CSV export of an
// existing paper book. Rows go through the same record path as the API so
// customer creation and display-name disambiguation apply.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"bahikhata/internal/domain"
	ledgersvc "bahikhata/internal/service/ledger"
)

// Recorder records one ledger transaction for a tenant.
type Recorder interface {
	Record(ctx context.Context, ownerID string, in ledgersvc.RecordInput) (*domain.Transaction, *domain.Customer, error)
}

// CSVImporter reads rows of name,phone,type,amount,notes and records them in
// order for one store owner.
type CSVImporter struct {
	reader  *csv.Reader
	ledger  Recorder
	ownerID string
}

func NewCSVImporter(r io.Reader, ledger Recorder, ownerID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:  csvr,
		ledger:  ledger,
		ownerID: ownerID,
	}
}

// Run parses CSV rows and records transactions. Repeated names within one
// import reuse the customer created by the first row, so a customer's history
// stays on a single account.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	seen := map[string]string{} // raw name -> customer id created this run
	imported := 0

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		name := pick(record, index, "name")
		kind := pick(record, index, "type")
		amountStr := pick(record, index, "amount")
		if name == "" && kind == "" && amountStr == "" {
			continue
		}
		if name == "" {
			return imported, fmt.Errorf("row %d: name required", imported+2)
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return imported, fmt.Errorf("row %d: invalid amount %q", imported+2, amountStr)
		}

		in := ledgersvc.RecordInput{
			Amount: amount,
			Kind:   domain.TransactionKind(kind),
			Notes:  pick(record, index, "notes"),
		}
		if id, ok := seen[name]; ok {
			in.CustomerID = id
		} else {
			in.CustomerName = name
			in.Phone = pick(record, index, "phone")
		}

		_, customer, err := i.ledger.Record(ctx, i.ownerID, in)
		if err != nil {
			return imported, fmt.Errorf("row %d: record %q: %w", imported+2, name, err)
		}
		seen[name] = customer.ID
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
