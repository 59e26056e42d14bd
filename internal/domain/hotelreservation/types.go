package hotelreservation

import "hotel-block-service/internal/pkg/errs"

// Variant tags what kind of holder a row was created for. All variants share the same columns.
type Variant string

const (
	VariantHotelReservation Variant = "hotel_reservation"
	VariantTeamBlock        Variant = "team_block"
	VariantIndividualBlock  Variant = "individual_block"
)

func (v Variant) String() string {
	return string(v)
}

func (v Variant) IsValid() bool {
	switch v {
	case VariantHotelReservation, VariantTeamBlock, VariantIndividualBlock:
		return true
	default:
		return false
	}
}

// ParseVariant maps an empty string to the default variant.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantHotelReservation, nil
	}
	v := Variant(s)
	if !v.IsValid() {
		return "", errs.Wrap(ErrValidation, "unknown variant "+s)
	}
	return v, nil
}
