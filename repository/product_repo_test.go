package repository

import (
	"errors"
	"testing"

	"ai_ecommerce_assistant/models"
)

func TestProductSaveAndGet(t *testing.T) {
	r := NewProductRepo()
	r.Save(models.Product{ID: "p1", Name: "Coffee Maker", Price: 99, Stock: 10})

	p, err := r.Get("p1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Coffee Maker" {
		t.Errorf("Name = %q", p.Name)
	}

	if _, err := r.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProductListByCategory(t *testing.T) {
	r := NewProductRepo()
	r.Save(models.Product{ID: "p1", Category: "kitchen"})
	r.Save(models.Product{ID: "p2", Category: "kitchen"})
	r.Save(models.Product{ID: "p3", Category: "furniture"})

	if got := r.ListByCategory("kitchen"); len(got) != 2 {
		t.Errorf("kitchen = %d, want 2", len(got))
	}
	// 空品类返回全部
	if got := r.ListByCategory(""); len(got) != 3 {
		t.Errorf("全部 = %d, want 3", len(got))
	}
	if got := r.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
}

func TestProductUpdateStock(t *testing.T) {
	r := NewProductRepo()
	r.Save(models.Product{ID: "p1", Stock: 10})

	if err := r.UpdateStock("p1", 3); err != nil {
		t.Fatal(err)
	}
	p, _ := r.Get("p1")
	if p.Stock != 3 {
		t.Errorf("Stock = %d, want 3", p.Stock)
	}

	if err := r.UpdateStock("missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestPurchaseRepo(t *testing.T) {
	r := NewPurchaseRepo()
	r.Add("u1", models.PurchaseRecord{ProductID: "p1", Quantity: 1})
	r.Add("u1", models.PurchaseRecord{ProductID: "p2", Quantity: 2})
	r.Add("u2", models.PurchaseRecord{ProductID: "p1", Quantity: 1})

	if got := r.ListByUser("u1"); len(got) != 2 {
		t.Errorf("u1购买记录 = %d, want 2", len(got))
	}
	if !r.HasPurchased("u1", "p1") {
		t.Error("HasPurchased(u1, p1)应为true")
	}
	if r.HasPurchased("u1", "p3") {
		t.Error("HasPurchased(u1, p3)应为false")
	}
	if got := r.ListUsers(); len(got) != 2 {
		t.Errorf("用户数 = %d, want 2", len(got))
	}
}
