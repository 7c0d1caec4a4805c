package orders_test

import (
	"errors"
	"testing"
	"time"

	"github.com/tomypizza/orderdesk/orders"
)

func TestDraftValidate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	valid := orders.Draft{
		Name:     "Margherita",
		Due:      now.Add(time.Hour),
		Priority: orders.PriorityMedium,
	}

	tests := []struct {
		name      string
		mutate    func(*orders.Draft)
		wantField string
	}{
		{"valid draft", func(d *orders.Draft) {}, ""},
		{"empty name", func(d *orders.Draft) { d.Name = "" }, "name"},
		{"zero due", func(d *orders.Draft) { d.Due = time.Time{} }, "due"},
		{"due in the past", func(d *orders.Draft) { d.Due = now.Add(-time.Minute) }, "due"},
		{"due exactly now", func(d *orders.Draft) { d.Due = now }, "due"},
		{"unknown priority", func(d *orders.Draft) { d.Priority = "urgent" }, "priority"},
		{"empty priority is allowed", func(d *orders.Draft) { d.Priority = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate(now)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected valid draft, got %v", err)
				}
				return
			}
			var verr *orders.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, verr.Field)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if orders.PriorityHigh.Rank() <= orders.PriorityMedium.Rank() {
		t.Error("high should outrank medium")
	}
	if orders.PriorityMedium.Rank() <= orders.PriorityLow.Rank() {
		t.Error("medium should outrank low")
	}
	if orders.Priority("bogus").Rank() >= orders.PriorityLow.Rank() {
		t.Error("unknown priority should rank below low")
	}
}

func TestOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	grace := 60 * time.Minute

	o := orders.Order{Status: orders.StatusPending, Due: now.Add(-90 * time.Minute)}
	if !o.Overdue(now, grace) {
		t.Error("pending order 90 minutes past due should be overdue with a 60 minute grace")
	}

	o.Due = now.Add(-30 * time.Minute)
	if o.Overdue(now, grace) {
		t.Error("order within the grace period should not be overdue")
	}

	o.Due = now.Add(-90 * time.Minute)
	o.Status = orders.StatusCompleted
	if o.Overdue(now, grace) {
		t.Error("completed order should never be overdue")
	}
}
