package models

import "testing"

func TestTotalPayment_SumsEachMenuOnce(t *testing.T) {
	menus := []Menu{{ID: 1, Price: 2.50}, {ID: 2, Price: 12.50}}

	for _, typ := range OrderTypes() {
		if got := TotalPayment(typ, menus); got != 15.00 {
			t.Fatalf("%s: total = %v, want 15.00", typ, got)
		}
	}
}

func TestTotalPayment_RoundsToCents(t *testing.T) {
	menus := []Menu{{Price: 0.1}, {Price: 0.2}}
	if got := TotalPayment(OrderTakeAway, menus); got != 0.3 {
		t.Fatalf("total = %v, want 0.3", got)
	}
}

func TestTotalPayment_UnknownType(t *testing.T) {
	if got := TotalPayment(OrderType("drive-thru"), []Menu{{Price: 5}}); got != 0 {
		t.Fatalf("total = %v, want 0", got)
	}
}

func TestOrder_CalculateTotalPaymentIsExplicit(t *testing.T) {
	o := &Order{Type: OrderShipping, Menus: []Menu{{Price: 4}}}
	o.CalculateTotalPayment()
	if o.TotalPayment != 4 {
		t.Fatalf("total = %v, want 4", o.TotalPayment)
	}

	o.Menus = append(o.Menus, Menu{Price: 6})
	if o.TotalPayment != 4 {
		t.Fatalf("total changed without recompute: %v", o.TotalPayment)
	}
	o.CalculateTotalPayment()
	if o.TotalPayment != 10 {
		t.Fatalf("total = %v, want 10", o.TotalPayment)
	}
}

func TestVariantOf(t *testing.T) {
	v, err := VariantOf(OrderEatIn)
	if err != nil {
		t.Fatalf("VariantOf: %v", err)
	}
	if !v.HasTables || !v.HasCustomer {
		t.Fatalf("eat-in variant = %+v, want tables and customer", v)
	}
	if len(v.Associations) != 3 {
		t.Fatalf("associations = %v, want 3", v.Associations)
	}

	v, _ = VariantOf(OrderTakeAway)
	if v.HasCustomer || v.HasTables {
		t.Fatalf("takeaway variant = %+v, want no extras", v)
	}

	if _, err := VariantOf("drive-thru"); err != ErrUnknownOrderType {
		t.Fatalf("err = %v, want ErrUnknownOrderType", err)
	}
}
