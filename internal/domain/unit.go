package domain

type Unit string

const (
	UnitMeter Unit = "meter"
	UnitYard  Unit = "yard"
	UnitPiece Unit = "piece"
)

func (u Unit) Valid() bool {
	switch u {
	case UnitMeter, UnitYard, UnitPiece:
		return true
	}
	return false
}

type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

func (d DiscountType) Valid() bool {
	switch d {
	case DiscountNone, DiscountFixed, DiscountPercentage:
		return true
	}
	return false
}

type DtfPass string

const (
	DtfPassNone DtfPass = ""
	DtfPass4    DtfPass = "4 PASS"
	DtfPass6    DtfPass = "6 PASS"
)

func (p DtfPass) Valid() bool {
	switch p {
	case DtfPassNone, DtfPass4, DtfPass6:
		return true
	}
	return false
}
