package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"ecommerce-backend/internal/domain"
	"github.com/google/uuid"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads product rows and inserts or updates them in the catalog.
//
// Expected headers: id,image,name,rating.stars,rating.count,priceCents,keywords.
// keywords are separated by ';'. A blank id gets a generated UUID.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
	logger      *log.Logger
	newID       func() string
}

func NewCSVImporter(r io.Reader, repo ProductWriter, logger *log.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// Result counts what happened to the data rows.
type Result struct {
	Imported int
	Skipped  int
}

// Run parses every row and upserts it. Invalid rows and rows the store
// rejects are logged and skipped; only read errors abort the run.
func (i *CSVImporter) Run(ctx context.Context) (Result, error) {
	var res Result
	headers, err := i.reader.Read()
	if err != nil {
		return res, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"name", "priceCents"} {
		if _, ok := index[required]; !ok {
			return res, fmt.Errorf("missing required column %q", required)
		}
	}

	line := 1
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return res, fmt.Errorf("read row %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		p, err := i.parseRow(record, index)
		if err != nil {
			i.logger.Printf("importer: row %d skipped: %v", line, err)
			res.Skipped++
			continue
		}
		if _, err := i.productRepo.Upsert(ctx, *p); err != nil {
			i.logger.Printf("importer: row %d id=%s skipped: %v", line, p.ID, err)
			res.Skipped++
			continue
		}
		res.Imported++
	}

	return res, nil
}

func (i *CSVImporter) parseRow(record []string, index map[string]int) (*domain.Product, error) {
	name := pick(record, index, "name")
	if name == "" {
		return nil, errors.New("name required")
	}
	cents, err := strconv.ParseInt(pick(record, index, "priceCents"), 10, 64)
	if err != nil || cents < 0 {
		return nil, fmt.Errorf("invalid priceCents for %q", name)
	}

	var rating domain.Rating
	if v := pick(record, index, "rating.stars"); v != "" {
		stars, err := strconv.ParseFloat(v, 64)
		if err != nil || stars < 0 || stars > 5 {
			return nil, fmt.Errorf("invalid rating.stars for %q", name)
		}
		rating.Stars = stars
	}
	if v := pick(record, index, "rating.count"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil || count < 0 {
			return nil, fmt.Errorf("invalid rating.count for %q", name)
		}
		rating.Count = count
	}

	id := pick(record, index, "id")
	if id == "" {
		id = i.newID()
	}

	return &domain.Product{
		ID:         id,
		Image:      pick(record, index, "image"),
		Name:       name,
		Rating:     rating,
		PriceCents: cents,
		Keywords:   splitKeywords(pick(record, index, "keywords")),
	}, nil
}

func splitKeywords(v string) []string {
	out := []string{}
	for _, k := range strings.Split(v, ";") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
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
