package catalog

import (
	"testing"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestListFiltersByCategory(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	all := svc.List("")
	if len(all) == 0 {
		t.Fatal("expected seeded catalog")
	}

	electronics := svc.List("electrónicos")
	if len(electronics) == 0 {
		t.Fatal("expected electronics entries")
	}
	for _, p := range electronics {
		if p.Category != "electrónicos" {
			t.Fatalf("unexpected category %q in filtered list", p.Category)
		}
	}

	if got := svc.List("todos"); len(got) != len(all) {
		t.Fatalf("expected %d products for 'todos', got %d", len(all), len(got))
	}

	if got := svc.List("no-such-category"); len(got) != 0 {
		t.Fatalf("expected empty list, got %d products", len(got))
	}
}

func TestGetByID(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	p, err := svc.GetByID("1")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if !p.AvailableForRent {
		t.Fatal("expected product 1 to be rentable")
	}
	if !p.Price.Equal(decimal.NewFromInt(11500000)) {
		t.Fatalf("unexpected price %s", p.Price)
	}

	_, err = svc.GetByID("unknown")
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestSaleOnlyProductsAreNotRentable(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	for _, id := range []string{"6", "7"} {
		p, err := svc.GetByID(id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if p.AvailableForRent {
			t.Fatalf("expected product %s to be sale only", id)
		}
		if !p.AvailableForSale {
			t.Fatalf("expected product %s to be sellable", id)
		}
	}
}

func TestNewServiceRejectsBadSeed(t *testing.T) {
	bad := []Product{{
		ID:        "x",
		Name:      "Broken",
		Price:     decimal.NewFromInt(-1),
		Category:  "hogar",
		Condition: enums.ProductConditionNew,
	}}
	if _, err := newService(bad); err == nil {
		t.Fatal("expected error for negative price")
	}

	dup := seedProducts()
	dup = append(dup, dup[0])
	if _, err := newService(dup); err == nil {
		t.Fatal("expected error for duplicate id")
	}
}
