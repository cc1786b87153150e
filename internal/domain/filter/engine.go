package filter

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/albrtaraya/facturas-api/internal/domain/entity"
)

// Apply aplica el Spec sobre la colección y devuelve el subconjunto que
// cumple todos los predicados (conjunción), preservando el orden relativo.
// Nunca muta la entrada; con Default() devuelve los mismos elementos.
//
// Una cota de monto ilegible (sin prefijo numérico) excluye todas las
// facturas: la comparación contra una cota no numérica falla siempre
// (fail-closed, ver DESIGN.md).
func Apply(invoices []*entity.Invoice, spec Spec) []*entity.Invoice {
	var (
		minBound, maxBound decimal.Decimal
		minOK, maxOK       bool
	)
	hasMin := spec.MinAmount != ""
	hasMax := spec.MaxAmount != ""
	if hasMin {
		minBound, minOK = parseLeadingDecimal(spec.MinAmount)
	}
	if hasMax {
		maxBound, maxOK = parseLeadingDecimal(spec.MaxAmount)
	}

	out := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if active(KeyStatus, spec.Status) && inv.Status != spec.Status {
			continue
		}
		if hasMin && (!minOK || inv.Amount.LessThan(minBound)) {
			continue
		}
		if hasMax && (!maxOK || inv.Amount.GreaterThan(maxBound)) {
			continue
		}
		if spec.StartDate != "" && inv.DueDate < spec.StartDate {
			continue
		}
		if spec.EndDate != "" && inv.DueDate > spec.EndDate {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// parseLeadingDecimal parsea el prefijo numérico más largo del string,
// con la gramática de parseFloat: espacios iniciales, signo opcional,
// dígitos con punto decimal y exponente opcionales ("100abc" → 100,
// "1e3x" → 1000). Devuelve ok=false si no hay ningún dígito.
func parseLeadingDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return decimal.Decimal{}, false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := false
		for j < n && s[j] >= '0' && s[j] <= '9' {
			j++
			expDigits = true
		}
		if expDigits {
			i = j
		}
	}
	prefix := normalizeNumericPrefix(s[:i])
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// normalizeNumericPrefix adapta formas válidas para parseFloat que
// decimal.NewFromString no acepta: ".5" → "0.5", "5." → "5", "5.e2" → "5e2".
func normalizeNumericPrefix(p string) string {
	p = strings.TrimSuffix(p, ".")
	p = strings.Replace(p, ".e", "e", 1)
	p = strings.Replace(p, ".E", "E", 1)
	switch {
	case strings.HasPrefix(p, "."):
		p = "0" + p
	case strings.HasPrefix(p, "+."), strings.HasPrefix(p, "-."):
		p = p[:1] + "0" + p[1:]
	}
	return p
}
