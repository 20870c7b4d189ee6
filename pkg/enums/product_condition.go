package enums

import "fmt"

// ProductCondition describes the physical state a listing advertises.
type ProductCondition string

const (
	ProductConditionNew       ProductCondition = "new"
	ProductConditionExcellent ProductCondition = "excellent"
	ProductConditionGood      ProductCondition = "good"
	ProductConditionFair      ProductCondition = "fair"
)

var validProductConditions = []ProductCondition{
	ProductConditionNew,
	ProductConditionExcellent,
	ProductConditionGood,
	ProductConditionFair,
}

// String implements fmt.Stringer.
func (c ProductCondition) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCondition.
func (c ProductCondition) IsValid() bool {
	for _, candidate := range validProductConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCondition converts raw input into a ProductCondition.
func ParseProductCondition(value string) (ProductCondition, error) {
	for _, candidate := range validProductConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product condition %q", value)
}
