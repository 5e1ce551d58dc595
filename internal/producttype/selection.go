package producttype

import "printworks/internal/domain"

type ProductType string

const (
	Print   ProductType = "PRINT"
	Press   ProductType = "PRESS"
	Cutting ProductType = "CUTTING"
	DTF     ProductType = "DTF"
	Sewing  ProductType = "SEWING"
)

// All lists the product types in display order.
var All = []ProductType{Print, Press, Cutting, DTF, Sewing}

func Parse(s string) (ProductType, bool) {
	for _, t := range All {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Selection is the set of product types chosen for an order. DTF excludes
// every other type.
type Selection struct {
	Print   bool `json:"PRINT,omitempty"`
	Press   bool `json:"PRESS,omitempty"`
	Cutting bool `json:"CUTTING,omitempty"`
	DTF     bool `json:"DTF,omitempty"`
	Sewing  bool `json:"SEWING,omitempty"`
}

func (s Selection) Has(t ProductType) bool {
	switch t {
	case Print:
		return s.Print
	case Press:
		return s.Press
	case Cutting:
		return s.Cutting
	case DTF:
		return s.DTF
	case Sewing:
		return s.Sewing
	}
	return false
}

func (s Selection) raw(t ProductType, on bool) Selection {
	switch t {
	case Print:
		s.Print = on
	case Press:
		s.Press = on
	case Cutting:
		s.Cutting = on
	case DTF:
		s.DTF = on
	case Sewing:
		s.Sewing = on
	}
	return s
}

// Set turns a type on or off. Turning DTF on clears every other type and
// turning any other type on clears DTF.
func (s Selection) Set(t ProductType, on bool) Selection {
	if !on {
		return s.raw(t, false)
	}
	if t == DTF {
		return Selection{DTF: true}
	}
	s.DTF = false
	return s.raw(t, true)
}

func (s Selection) Toggle(t ProductType) Selection {
	return s.Set(t, !s.Has(t))
}

// Selected returns the active types in display order.
func (s Selection) Selected() []ProductType {
	var out []ProductType
	for _, t := range All {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

func (s Selection) IsEmpty() bool {
	return len(s.Selected()) == 0
}

// FromTypes builds a selection by applying Set in order, so the exclusion
// rule holds for any input.
func FromTypes(types ...ProductType) Selection {
	var s Selection
	for _, t := range types {
		s = s.Set(t, true)
	}
	return s
}

// Pass is only meaningful while DTF is selected.
func EffectivePass(s Selection, pass domain.DtfPass) domain.DtfPass {
	if !s.DTF {
		return domain.DtfPassNone
	}
	return pass
}
