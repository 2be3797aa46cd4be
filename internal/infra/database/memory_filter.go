package database

import (
	"encoding/json"
	"fmt"

	"github.com/xavierca1/evangelism-crm/internal/entity"
)

type matcher func(fields map[string]any) bool

// compileFilter turns a filter into a predicate over decoded JSON. Condition values
// go through the same JSON encoding as the documents, so typed strings and ints
// compare equal to their stored form.
func compileFilter(filter entity.Filter) (matcher, error) {
	preds := make([]matcher, 0, len(filter))
	for _, cond := range filter {
		pred, err := compileCondition(cond)
		if err != nil {
			return nil, err
		}
		preds = append(preds, pred)
	}
	return func(fields map[string]any) bool {
		for _, p := range preds {
			if !p(fields) {
				return false
			}
		}
		return true
	}, nil
}

func compileCondition(cond entity.Condition) (matcher, error) {
	switch cond.Op {
	case entity.OpEq:
		want, err := normalize(cond.Value)
		if err != nil {
			return nil, err
		}
		return func(fields map[string]any) bool { return fields[cond.Field] == want }, nil

	case entity.OpLt, entity.OpGt:
		want, err := normalize(cond.Value)
		if err != nil {
			return nil, err
		}
		sign := -1
		if cond.Op == entity.OpGt {
			sign = 1
		}
		return func(fields map[string]any) bool {
			c, ok := compare(fields[cond.Field], want)
			return ok && c == sign
		}, nil

	case entity.OpIn:
		values, ok := cond.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("in filter on %s needs a list", cond.Field)
		}
		set := make([]any, 0, len(values))
		for _, v := range values {
			n, err := normalize(v)
			if err != nil {
				return nil, err
			}
			set = append(set, n)
		}
		return func(fields map[string]any) bool {
			got := fields[cond.Field]
			for _, v := range set {
				if got == v {
					return true
				}
			}
			return false
		}, nil
	}
	return nil, fmt.Errorf("unsupported operator %q", cond.Op)
}

func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// compare orders two numbers or two strings. ok is false for anything else.
func compare(a, b any) (int, bool) {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		if !ok {
			return 0, false
		}
		return cmp(x < y, x > y), true
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		return cmp(x < y, x > y), true
	}
	return 0, false
}

func cmp(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}
