package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ecommerce-backend/internal/domain"
)

type stubProductRepo struct {
	items  []domain.Product
	failID string
}

func (s *stubProductRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == s.failID {
		return nil, errors.New("constraint violation")
	}
	s.items = append(s.items, p)
	return &p, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,image,name,rating.stars,rating.count,priceCents,keywords
p-1,images/products/socks.jpg,Cotton Socks,4.5,87,1090,socks; sports ;apparel
,images/products/web-shooters.jpg,Web Shooters,4.5,42,2999,accessories;gadgets
p-3,,Broken Price,4,1,abc,
,,,,,,
p-4,,Bad Stars,7,1,100,
p-5,,Rejected,3,1,100,`

	repo := &stubProductRepo{failID: "p-5"}
	imp := NewCSVImporter(strings.NewReader(csvData), repo, nil)
	imp.newID = func() string { return "generated-id" }

	res, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 3 {
		t.Fatalf("expected 2 imported and 3 skipped, got %+v", res)
	}

	first := repo.items[0]
	if first.ID != "p-1" || first.PriceCents != 1090 || first.Rating.Stars != 4.5 || first.Rating.Count != 87 {
		t.Fatalf("unexpected product data: %+v", first)
	}
	if len(first.Keywords) != 3 || first.Keywords[1] != "sports" {
		t.Fatalf("expected trimmed keywords, got %v", first.Keywords)
	}
	if repo.items[1].ID != "generated-id" || repo.items[1].Image != "images/products/web-shooters.jpg" {
		t.Fatalf("expected generated id, got %+v", repo.items[1])
	}
}

func TestCSVImporter_MissingColumns(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("id,image\n1,x.jpg\n"), &stubProductRepo{}, nil)
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}
