package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"pick-route-service/internal/api/dto"
)

func TestOrderGenerate(t *testing.T) {
	h := &OrderHandler{Layout: testLayout(t)}

	rec := postJSON(t, h.Generate, `{"count":5,"seed":42}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ListOrdersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(res.Orders) != 5 {
		t.Fatalf("orders = %d, want 5", len(res.Orders))
	}
	if res.Stats.TotalOrders != 5 {
		t.Fatalf("stats total = %d, want 5", res.Stats.TotalOrders)
	}

	for _, o := range res.Orders {
		if o.NumItems == 0 || o.NumItems != len(o.PickList) {
			t.Fatalf("order %s has inconsistent item count", o.OrderID)
		}
		for _, shelf := range o.PickList {
			if shelf == "start" {
				t.Fatalf("order %s picks from the depot", o.OrderID)
			}
			if shelf != "A1" && shelf != "B1" {
				t.Fatalf("order %s picks unknown shelf %q", o.OrderID, shelf)
			}
		}
	}
}

func TestOrderGenerateSeedIsReproducible(t *testing.T) {
	h := &OrderHandler{Layout: testLayout(t)}

	first := postJSON(t, h.Generate, `{"count":20,"seed":7}`)
	second := postJSON(t, h.Generate, `{"count":20,"seed":7}`)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("statuses = %d, %d", first.Code, second.Code)
	}

	var a, b dto.ListOrdersResponse
	if err := json.Unmarshal(first.Body.Bytes(), &a); err != nil {
		t.Fatalf("decode first: %v", err)
	}
	if err := json.Unmarshal(second.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode second: %v", err)
	}

	for i := range a.Orders {
		if len(a.Orders[i].PickList) != len(b.Orders[i].PickList) {
			t.Fatalf("order %d sizes differ", i)
		}
		for j := range a.Orders[i].PickList {
			if a.Orders[i].PickList[j] != b.Orders[i].PickList[j] {
				t.Fatalf("order %d item %d differs", i, j)
			}
		}
	}
}

func TestOrderGenerateDefaultsAndLimits(t *testing.T) {
	h := &OrderHandler{Layout: testLayout(t)}

	rec := postJSON(t, h.Generate, `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty request status = %d, want 200 with default count", rec.Code)
	}
	var res dto.ListOrdersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Orders) != 10 {
		t.Fatalf("default count = %d, want 10", len(res.Orders))
	}

	cases := []struct {
		name string
		body string
	}{
		{"count too large", `{"count":1001}`},
		{"negative count", `{"count":-1}`},
		{"zero mean", `{"mean_items":0}`},
		{"negative std", `{"std_items":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postJSON(t, h.Generate, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
