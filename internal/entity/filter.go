package entity

type Operator string

const (
	OpEq Operator = "eq"
	OpLt Operator = "lt"
	OpGt Operator = "gt"
	OpIn Operator = "in"
)

// Condition matches a top-level document field by its JSON name.
type Condition struct {
	Field string
	Op    Operator
	Value any
}

// Filter is a conjunction of conditions. An empty filter matches everything.
type Filter []Condition

func Where(conds ...Condition) Filter { return Filter(conds) }

func Eq(field string, value any) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

func Lt(field string, value any) Condition {
	return Condition{Field: field, Op: OpLt, Value: value}
}

func Gt(field string, value any) Condition {
	return Condition{Field: field, Op: OpGt, Value: value}
}

func In(field string, values ...any) Condition {
	return Condition{Field: field, Op: OpIn, Value: values}
}

// ByClient scopes a filter to one tenant.
func ByClient(clientID string, conds ...Condition) Filter {
	return append(Filter{Eq("client_id", clientID)}, conds...)
}
