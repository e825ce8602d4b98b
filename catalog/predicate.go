package catalog

// Comparison operators understood by the compiler. Anything else in a
// filter is dropped, the same way unknown fields are.
const (
	OpEquals = "equals"
	OpLt     = "lt"
	OpLte    = "lte"
	OpGt     = "gt"
	OpGte    = "gte"
)

// Condition is one field comparison inside a predicate.
type Condition struct {
	Field    string
	Operator string
	Value    interface{}
}

// Predicate is the compiled, store-agnostic selection over products.
// Product conditions apply to product columns directly. Variant conditions
// are a conjunction that some single variant of the product must satisfy
// in full. CategoryName, when set, is an equality on the joined category's
// name. The three parts are ANDed together.
type Predicate struct {
	Product      []Condition
	Variant      []Condition
	CategoryName string
}

// Empty reports whether the predicate selects everything.
func (p Predicate) Empty() bool {
	return len(p.Product) == 0 && len(p.Variant) == 0 && p.CategoryName == ""
}

var productFields = map[string]bool{
	"rating":       true,
	"title":        true,
	"manufacturer": true,
}

var variantFields = map[string]bool{
	"price":   true,
	"inStock": true,
}

var knownOperators = map[string]bool{
	OpEquals: true,
	OpLt:     true,
	OpLte:    true,
	OpGt:     true,
	OpGte:    true,
}

// Compile partitions the parsed filters by the entity each field belongs
// to. Filters on fields or operators neither entity recognizes are dropped
// without error.
func Compile(filters []Filter) Predicate {
	var p Predicate

	for _, f := range filters {
		if f.Field == fieldCategory {
			if f.Operator == OpEquals {
				if name, ok := f.Value.(string); ok {
					p.CategoryName = name
				}
			}
			continue
		}

		if !knownOperators[f.Operator] {
			continue
		}

		c := Condition{Field: f.Field, Operator: f.Operator, Value: f.Value}
		switch {
		case productFields[f.Field]:
			p.Product = append(p.Product, c)
		case variantFields[f.Field]:
			p.Variant = append(p.Variant, c)
		}
	}

	return p
}
