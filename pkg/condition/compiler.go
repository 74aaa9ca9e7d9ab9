package condition

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Rule is a single field comparison.
type Rule struct {
	Field    string      `json:"field" bson:"field"`
	Operator string      `json:"operator" bson:"operator"`
	Value    interface{} `json:"value" bson:"value"`
}

// RuleGroup nests rules with an AND/OR operator.
type RuleGroup struct {
	Operator string      `json:"operator" bson:"operator"` // "AND" | "OR"
	Rules    []Rule      `json:"rules,omitempty" bson:"rules,omitempty"`
	Groups   []RuleGroup `json:"groups,omitempty" bson:"groups,omitempty"`
}

// Evaluator checks rule groups against a record's field map.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns whether the record satisfies the group. A nil or empty group
// matches everything.
func (e *Evaluator) Evaluate(group *RuleGroup, record map[string]interface{}) (bool, error) {
	if group == nil {
		return true, nil
	}

	results := make([]bool, 0, len(group.Rules)+len(group.Groups))

	for _, rule := range group.Rules {
		ok, err := e.evalRule(rule, record)
		if err != nil {
			return false, err
		}
		results = append(results, ok)
	}

	for i := range group.Groups {
		ok, err := e.Evaluate(&group.Groups[i], record)
		if err != nil {
			return false, err
		}
		results = append(results, ok)
	}

	if len(results) == 0 {
		return true, nil
	}

	if strings.ToUpper(group.Operator) == "OR" {
		for _, r := range results {
			if r {
				return true, nil
			}
		}
		return false, nil
	}

	for _, r := range results {
		if !r {
			return false, nil
		}
	}
	return true, nil
}

func (e *Evaluator) evalRule(rule Rule, record map[string]interface{}) (bool, error) {
	val, ok := record[rule.Field]
	if !ok {
		// Missing fields never match positive operators but do satisfy "ne".
		return rule.Operator == "ne", nil
	}

	switch rule.Operator {
	case "eq":
		return equalValues(val, rule.Value), nil
	case "ne":
		return !equalValues(val, rule.Value), nil
	case "gt", "lt", "gte", "lte":
		return compareValues(rule.Operator, val, rule.Value)
	case "in":
		// Accept any slice kind, not just []interface{}: a filter loaded from
		// Mongo decodes its list as primitive.A.
		list := reflect.ValueOf(rule.Value)
		if !list.IsValid() || list.Kind() != reflect.Slice {
			return false, fmt.Errorf("in operator requires list value")
		}
		for i := 0; i < list.Len(); i++ {
			if equalValues(val, list.Index(i).Interface()) {
				return true, nil
			}
		}
		return false, nil
	case "contains":
		s, sub, err := stringPair(val, rule.Value)
		if err != nil {
			return false, err
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(sub)), nil
	case "starts_with", "startsWith":
		s, prefix, err := stringPair(val, rule.Value)
		if err != nil {
			return false, err
		}
		return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix)), nil
	case "ends_with", "endsWith":
		s, suffix, err := stringPair(val, rule.Value)
		if err != nil {
			return false, err
		}
		return strings.HasSuffix(strings.ToLower(s), strings.ToLower(suffix)), nil
	default:
		return false, fmt.Errorf("unknown operator: %s", rule.Operator)
	}
}

func equalValues(a, b interface{}) bool {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func compareValues(op string, a, b interface{}) (bool, error) {
	if at, aok := a.(time.Time); aok {
		bt, bok := b.(time.Time)
		if !bok {
			return false, fmt.Errorf("%s operator requires comparable values", op)
		}
		return compareFloats(op, float64(at.UnixNano()), float64(bt.UnixNano())), nil
	}

	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return false, fmt.Errorf("%s operator requires numeric values", op)
	}
	return compareFloats(op, af, bf), nil
}

func compareFloats(op string, a, b float64) bool {
	switch op {
	case "gt":
		return a > b
	case "lt":
		return a < b
	case "gte":
		return a >= b
	case "lte":
		return a <= b
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func stringPair(a, b interface{}) (string, string, error) {
	as, aok := a.(string)
	bs, bok := b.(string)
	if !aok || !bok {
		return "", "", fmt.Errorf("string operator requires string values")
	}
	return as, bs, nil
}
