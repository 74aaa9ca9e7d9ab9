package condition

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestEvaluateRules(t *testing.T) {
	record := map[string]interface{}{
		"name":                  "Maria Lopez",
		"engagement_score":      "high",
		"donor_stage":           "Major Donor",
		"total_lifetime_giving": 25000.0,
		"email_opt_in":          true,
		"do_not_email":          false,
	}

	e := NewEvaluator()

	tests := []struct {
		name    string
		group   *RuleGroup
		want    bool
		wantErr bool
	}{
		{
			name:  "nil group matches everything",
			group: nil,
			want:  true,
		},
		{
			name:  "empty group matches everything",
			group: &RuleGroup{Operator: "AND"},
			want:  true,
		},
		{
			name: "eq match",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "engagement_score", Operator: "eq", Value: "high"},
			}},
			want: true,
		},
		{
			name: "eq mismatch",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "engagement_score", Operator: "eq", Value: "low"},
			}},
			want: false,
		},
		{
			name: "numeric comparison",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "total_lifetime_giving", Operator: "gt", Value: 10000},
			}},
			want: true,
		},
		{
			name: "and requires all",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "engagement_score", Operator: "eq", Value: "high"},
				{Field: "do_not_email", Operator: "eq", Value: true},
			}},
			want: false,
		},
		{
			name: "or requires one",
			group: &RuleGroup{Operator: "OR", Rules: []Rule{
				{Field: "engagement_score", Operator: "eq", Value: "low"},
				{Field: "donor_stage", Operator: "contains", Value: "major"},
			}},
			want: true,
		},
		{
			name: "nested groups",
			group: &RuleGroup{
				Operator: "AND",
				Rules: []Rule{
					{Field: "email_opt_in", Operator: "eq", Value: true},
				},
				Groups: []RuleGroup{
					{Operator: "OR", Rules: []Rule{
						{Field: "total_lifetime_giving", Operator: "gte", Value: 25000},
						{Field: "engagement_score", Operator: "eq", Value: "medium"},
					}},
				},
			},
			want: true,
		},
		{
			name: "in list",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "engagement_score", Operator: "in", Value: []interface{}{"medium", "high"}},
			}},
			want: true,
		},
		{
			name: "starts_with is case insensitive",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "name", Operator: "starts_with", Value: "maria"},
			}},
			want: true,
		},
		{
			name: "missing field fails positive operator",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "city", Operator: "eq", Value: "Portland"},
			}},
			want: false,
		},
		{
			name: "missing field satisfies ne",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "city", Operator: "ne", Value: "Portland"},
			}},
			want: true,
		},
		{
			name: "unknown operator errors",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "name", Operator: "regex", Value: ".*"},
			}},
			wantErr: true,
		},
		{
			name: "non-numeric comparison errors",
			group: &RuleGroup{Operator: "AND", Rules: []Rule{
				{Field: "name", Operator: "gt", Value: 5},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Evaluate(tt.group, record)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Evaluate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Rule groups are persisted in Mongo; decoding turns list values into
// primitive.A and numbers into int32/int64, so evaluation must keep working on
// a group that has been through a BSON round trip.
func TestEvaluateAfterBSONRoundTrip(t *testing.T) {
	record := map[string]interface{}{
		"engagement_score":      "high",
		"total_lifetime_giving": 25000.0,
	}

	group := RuleGroup{
		Operator: "AND",
		Rules: []Rule{
			{Field: "engagement_score", Operator: "in", Value: []interface{}{"medium", "high"}},
			{Field: "total_lifetime_giving", Operator: "gte", Value: 10000},
		},
	}

	raw, err := bson.Marshal(group)
	if err != nil {
		t.Fatalf("bson.Marshal error = %v", err)
	}

	var loaded RuleGroup
	if err := bson.Unmarshal(raw, &loaded); err != nil {
		t.Fatalf("bson.Unmarshal error = %v", err)
	}

	got, err := NewEvaluator().Evaluate(&loaded, record)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !got {
		t.Error("Evaluate() = false, want true for a matching decoded filter")
	}

	miss, err := NewEvaluator().Evaluate(&loaded, map[string]interface{}{
		"engagement_score":      "low",
		"total_lifetime_giving": 25000.0,
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if miss {
		t.Error("Evaluate() = true, want false when the decoded in-list does not match")
	}
}
