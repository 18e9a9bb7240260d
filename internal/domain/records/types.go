package records

import "strings"

// Type es el conjunto cerrado de tipos de registro.
// @Enum vaccination, deworming, weight, diet
type Type string

const (
	TypeVaccination Type = "vaccination"
	TypeDeworming   Type = "deworming"
	TypeWeight      Type = "weight"
	TypeDiet        Type = "diet"
)

// Grafías que todavía mandan clientes viejos.
var typeAliases = map[string]Type{
	"vaccine": TypeVaccination,
	"deworm":  TypeDeworming,
}

var AllTypes = []Type{TypeVaccination, TypeDeworming, TypeWeight, TypeDiet}

// ParseType normaliza s (minúsculas, alias). ok=false si no es un tipo conocido.
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if t, ok := typeAliases[s]; ok {
		return t, true
	}
	for _, t := range AllTypes {
		if string(t) == s {
			return t, true
		}
	}
	return Type(s), false
}

// Sub-tipos válidos por tipo. Un tipo sin entrada acepta texto libre.
var subTypes = map[Type][]string{
	TypeDeworming: {"internal", "external", "both"},
	TypeDiet:      {"dry", "wet", "snack", "homemade"},
}

func validSubType(t Type, sub string) bool {
	allowed, ok := subTypes[t]
	if !ok || sub == "" {
		return true
	}
	for _, a := range allowed {
		if a == sub {
			return true
		}
	}
	return false
}
